package services

import (
	"Gin_postgres_redis_share_it/apperr"
	"Gin_postgres_redis_share_it/models"
	"context"
	"log"
	"strings"
	"time"
)

// RequestService owns the request board: open asks for items nobody has
// listed yet, annotated at read time with the items that fulfill them.
type RequestService struct {
	requests RequestStore
	users    UserStore
	items    ItemStore

	Now func() time.Time
}

func NewRequestService(requests RequestStore, users UserStore, items ItemStore) *RequestService {
	return &RequestService{requests: requests, users: users, items: items, Now: time.Now}
}

type RequestCreateInput struct {
	Description string `json:"description"`
}

func (s *RequestService) Create(ctx context.Context, callerID int64, in RequestCreateInput) (*RequestView, error) {
	requester, err := findUser(ctx, s.users, callerID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, apperr.Validation("request description must not be blank")
	}

	req := &models.ItemRequest{
		Description: in.Description,
		RequesterID: requester.ID,
		CreatedAt:   s.Now(),
	}
	if err := s.requests.CreateRequest(ctx, req); err != nil {
		return nil, err
	}
	log.Printf("request %d registered for user %d", req.ID, requester.ID)

	view := toRequestView(*req, nil)
	return &view, nil
}

// GetByRequester lists the caller's own requests, newest first.
func (s *RequestService) GetByRequester(ctx context.Context, callerID int64) ([]RequestView, error) {
	requester, err := findUser(ctx, s.users, callerID)
	if err != nil {
		return nil, err
	}
	reqs, err := s.requests.ListRequestsByRequester(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, reqs)
}

// GetAll pages through everyone else's requests, newest first.
func (s *RequestService) GetAll(ctx context.Context, callerID int64, from, size int) ([]RequestView, error) {
	caller, err := findUser(ctx, s.users, callerID)
	if err != nil {
		return nil, err
	}
	offset, limit, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}
	reqs, err := s.requests.ListRequestsOfOthers(ctx, caller.ID, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, reqs)
}

// GetByID has no visibility restriction: any known user may inspect any
// request, items included.
func (s *RequestService) GetByID(ctx context.Context, callerID, requestID int64) (*RequestView, error) {
	if _, err := findUser(ctx, s.users, callerID); err != nil {
		return nil, err
	}
	req, err := findRequest(ctx, s.requests, requestID)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListItemsByRequestIDs(ctx, []int64{req.ID})
	if err != nil {
		return nil, err
	}

	view := toRequestView(*req, items)
	return &view, nil
}

// annotate attaches fulfilling items to each request in one batched lookup.
func (s *RequestService) annotate(ctx context.Context, reqs []models.ItemRequest) ([]RequestView, error) {
	ids := make([]int64, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.ID)
	}
	items, err := s.items.ListItemsByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]RequestView, 0, len(reqs))
	for _, req := range reqs {
		var fulfilling []models.Item
		for _, it := range items {
			if it.RequestID != nil && *it.RequestID == req.ID {
				fulfilling = append(fulfilling, it)
			}
		}
		views = append(views, toRequestView(req, fulfilling))
	}
	return views, nil
}

func toRequestView(req models.ItemRequest, items []models.Item) RequestView {
	view := RequestView{
		ID:          req.ID,
		Description: req.Description,
		Created:     models.NewLocalTime(req.CreatedAt),
		Items:       []ItemRefView{},
	}
	for _, it := range items {
		view.Items = append(view.Items, toItemRefView(it))
	}
	return view
}
