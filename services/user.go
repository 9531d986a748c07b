package services

import (
	"Gin_postgres_redis_share_it/apperr"
	"Gin_postgres_redis_share_it/models"
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

type UserCreateInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserPatch carries a partial update; nil fields are left unchanged.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (s *UserService) Create(ctx context.Context, in UserCreateInput) (*UserView, error) {
	if in.Name == nil || in.Email == nil {
		return nil, apperr.Validation("some required fields are missing")
	}
	if strings.TrimSpace(*in.Name) == "" || strings.TrimSpace(*in.Email) == "" {
		return nil, apperr.Validation("name and email must not be blank")
	}

	u := &models.User{Name: *in.Name, Email: *in.Email}
	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation("email is already in use")
		}
		return nil, err
	}
	log.Printf("user %d, %q registered", u.ID, u.Name)

	view := toUserView(*u)
	return &view, nil
}

func (s *UserService) Update(ctx context.Context, userID int64, patch UserPatch) (*UserView, error) {
	u, err := findUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperr.Validation("name must not be blank")
		}
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		if strings.TrimSpace(*patch.Email) == "" {
			return nil, apperr.Validation("email must not be blank")
		}
		u.Email = *patch.Email
	}
	if err := s.users.SaveUser(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation("email is already in use")
		}
		return nil, err
	}
	log.Printf("user %d, %q updated", u.ID, u.Name)

	view := toUserView(*u)
	return &view, nil
}

func (s *UserService) GetByID(ctx context.Context, userID int64) (*UserView, error) {
	u, err := findUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	view := toUserView(*u)
	return &view, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]UserView, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return toUserViews(users), nil
}

func (s *UserService) Delete(ctx context.Context, userID int64) error {
	u, err := findUser(ctx, s.users, userID)
	if err != nil {
		return err
	}
	if err := s.users.DeleteUserByID(ctx, u.ID); err != nil {
		return err
	}
	log.Printf("user %d deleted", u.ID)
	return nil
}
