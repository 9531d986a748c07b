package services_test

import (
	"context"
	"testing"

	"Gin_postgres_redis_share_it/apperr"
	"Gin_postgres_redis_share_it/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_UserCreate(t *testing.T) {
	f := newFakeStore()
	s := services.NewUserService(f)
	ctx := context.Background()

	t.Run("missing_fields", func(t *testing.T) {
		for _, in := range []services.UserCreateInput{
			{},
			{Name: strPtr("anna")},
			{Email: strPtr("anna@example.com")},
		} {
			_, err := s.Create(ctx, in)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		}
	})

	t.Run("registered", func(t *testing.T) {
		view, err := s.Create(ctx, services.UserCreateInput{Name: strPtr("anna"), Email: strPtr("anna@example.com")})
		require.NoError(t, err)
		assert.NotZero(t, view.ID)
		assert.Equal(t, "anna", view.Name)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		_, err := s.Create(ctx, services.UserCreateInput{Name: strPtr("anna2"), Email: strPtr("anna@example.com")})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func Test_UserUpdate_PartialMerge(t *testing.T) {
	f := newFakeStore()
	u := f.addUser("anna", "anna@example.com")
	s := services.NewUserService(f)
	ctx := context.Background()

	view, err := s.Update(ctx, u.ID, services.UserPatch{Name: strPtr("anya")})
	require.NoError(t, err)
	assert.Equal(t, "anya", view.Name)
	assert.Equal(t, "anna@example.com", view.Email)

	view, err = s.Update(ctx, u.ID, services.UserPatch{Email: strPtr("anya@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "anya", view.Name)
	assert.Equal(t, "anya@example.com", view.Email)
}

func Test_UserGetDelete(t *testing.T) {
	f := newFakeStore()
	u := f.addUser("anna", "anna@example.com")
	s := services.NewUserService(f)
	ctx := context.Background()

	view, err := s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, view.ID)

	_, err = s.GetByID(ctx, 9999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, s.Delete(ctx, u.ID))
	_, err = s.GetByID(ctx, u.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
