package services

import (
	"Gin_postgres_redis_share_it/apperr"
	"Gin_postgres_redis_share_it/models"
	"context"
	"log"
	"strings"
	"time"
)

// ItemService owns the item catalog: owner-gated registration and patching,
// availability-filtered search, and read-path enrichment with booking
// annotations and comments.
type ItemService struct {
	items    ItemStore
	users    UserStore
	bookings BookingStore
	comments CommentStore
	requests RequestStore

	Now func() time.Time
}

func NewItemService(items ItemStore, users UserStore, bookings BookingStore, comments CommentStore, requests RequestStore) *ItemService {
	return &ItemService{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		requests: requests,
		Now:      time.Now,
	}
}

type ItemCreateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *int64  `json:"requestId"`
}

// ItemPatch carries a partial update; nil fields are left unchanged.
type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *int64  `json:"requestId"`
}

type CommentInput struct {
	Text string `json:"text"`
}

func (s *ItemService) Register(ctx context.Context, callerID int64, in ItemCreateInput) (*ItemView, error) {
	owner, err := findUser(ctx, s.users, callerID)
	if err != nil {
		return nil, err
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, apperr.Validation("item name must not be blank")
	}
	if in.Description == nil {
		return nil, apperr.Validation("item description is required")
	}
	if in.Available == nil {
		return nil, apperr.Validation("item availability is required")
	}

	it := &models.Item{
		Name:        *in.Name,
		Description: *in.Description,
		Available:   *in.Available,
		OwnerID:     owner.ID,
	}
	if in.RequestID != nil {
		req, err := findRequest(ctx, s.requests, *in.RequestID)
		if err != nil {
			return nil, err
		}
		it.RequestID = &req.ID
	}
	if err := s.items.CreateItem(ctx, it); err != nil {
		return nil, err
	}
	log.Printf("item %q with ID %d created", it.Name, it.ID)

	return s.enrichOne(ctx, owner.ID, *it)
}

func (s *ItemService) Update(ctx context.Context, callerID, itemID int64, patch ItemPatch) (*ItemView, error) {
	caller, err := findUser(ctx, s.users, callerID)
	if err != nil {
		return nil, err
	}
	it, err := findItem(ctx, s.items, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != caller.ID {
		return nil, apperr.Forbidden("user is not the owner of the item")
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, apperr.Validation("item name must not be blank")
		}
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Available != nil {
		it.Available = *patch.Available
	}
	if patch.RequestID != nil {
		req, err := findRequest(ctx, s.requests, *patch.RequestID)
		if err != nil {
			return nil, err
		}
		it.RequestID = &req.ID
	}
	if err := s.items.SaveItem(ctx, it); err != nil {
		return nil, err
	}
	log.Printf("item %q with ID %d updated", it.Name, it.ID)

	return s.enrichOne(ctx, caller.ID, *it)
}

func (s *ItemService) GetByID(ctx context.Context, callerID, itemID int64) (*ItemView, error) {
	caller, err := findUser(ctx, s.users, callerID)
	if err != nil {
		return nil, err
	}
	it, err := findItem(ctx, s.items, itemID)
	if err != nil {
		return nil, err
	}
	return s.enrichOne(ctx, caller.ID, *it)
}

// ListForOwner returns the user's items ascending by id, each carrying its
// booking annotations and comments.
func (s *ItemService) ListForOwner(ctx context.Context, ownerID int64, from, size int) ([]ItemView, error) {
	if _, err := findUser(ctx, s.users, ownerID); err != nil {
		return nil, err
	}
	offset, limit, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListItemsByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return s.enrichMany(ctx, ownerID, items)
}

// Search matches available items by case-insensitive substring on name or
// description. A blank query short-circuits to an empty result without
// touching storage.
func (s *ItemService) Search(ctx context.Context, callerID int64, text string, from, size int) ([]ItemView, error) {
	if _, err := findUser(ctx, s.users, callerID); err != nil {
		return nil, err
	}
	offset, limit, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []ItemView{}, nil
	}
	items, err := s.items.SearchAvailableItems(ctx, text, offset, limit)
	if err != nil {
		return nil, err
	}
	log.Printf("found %d items matching %q", len(items), text)
	return s.enrichMany(ctx, callerID, items)
}

// AddComment is gated on proof of use: the author must have a booking on the
// item that already ended.
func (s *ItemService) AddComment(ctx context.Context, callerID, itemID int64, in CommentInput) (*CommentView, error) {
	author, err := findUser(ctx, s.users, callerID)
	if err != nil {
		return nil, err
	}
	it, err := findItem(ctx, s.items, itemID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, apperr.Validation("comment text must not be blank")
	}

	booked, err := s.bookings.HasFinishedBooking(ctx, author.ID, it.ID, s.Now())
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, apperr.Validation("user never booked this item")
	}

	c := &models.Comment{Text: in.Text, ItemID: it.ID, AuthorID: author.ID}
	if err := s.comments.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	c.Author = *author
	log.Printf("comment %d added to item %d", c.ID, it.ID)

	view := toCommentView(*c)
	return &view, nil
}

func (s *ItemService) enrichOne(ctx context.Context, viewerID int64, it models.Item) (*ItemView, error) {
	comments, err := s.comments.ListCommentsByItemIDs(ctx, []int64{it.ID})
	if err != nil {
		return nil, err
	}
	view, err := s.view(ctx, viewerID, it, comments)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *ItemService) enrichMany(ctx context.Context, viewerID int64, items []models.Item) ([]ItemView, error) {
	itemIDs := make([]int64, 0, len(items))
	for _, it := range items {
		itemIDs = append(itemIDs, it.ID)
	}
	comments, err := s.comments.ListCommentsByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	views := make([]ItemView, 0, len(items))
	for _, it := range items {
		view, err := s.view(ctx, viewerID, it, comments)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// view builds the enriched projection. Booking annotations are only visible
// to the item's owner; comments to everyone.
func (s *ItemService) view(ctx context.Context, viewerID int64, it models.Item, comments []models.Comment) (ItemView, error) {
	view := ItemView{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
		Comments:    []CommentView{},
	}

	if viewerID == it.OwnerID {
		now := s.Now()
		next, err := s.bookings.NextBookingForItem(ctx, it.ID, now)
		if err != nil {
			return ItemView{}, err
		}
		last, err := s.bookings.LastBookingForItem(ctx, it.ID, now)
		if err != nil {
			return ItemView{}, err
		}
		view.NextBooking = toBookingRef(next)
		view.LastBooking = toBookingRef(last)
	}

	for _, c := range comments {
		if c.ItemID == it.ID {
			view.Comments = append(view.Comments, toCommentView(c))
		}
	}
	return view, nil
}
