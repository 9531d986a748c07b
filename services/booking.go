package services

import (
	"Gin_postgres_redis_share_it/apperr"
	"Gin_postgres_redis_share_it/db"
	"Gin_postgres_redis_share_it/models"
	"context"
	"errors"
	"log"
	"time"
)

// BookingService owns the booking lifecycle: creation against an available
// item, the one-shot owner approval, party-restricted reads and the
// state-filtered listings.
type BookingService struct {
	bookings BookingStore
	users    UserStore
	items    ItemStore

	// Now is the clock used for temporal classification; tests pin it.
	Now func() time.Time
}

func NewBookingService(bookings BookingStore, users UserStore, items ItemStore) *BookingService {
	return &BookingService{bookings: bookings, users: users, items: items, Now: time.Now}
}

type BookingCreateInput struct {
	Start  *models.LocalTime `json:"start"`
	End    *models.LocalTime `json:"end"`
	ItemID int64             `json:"itemId"`
}

func (s *BookingService) Create(ctx context.Context, callerID int64, in BookingCreateInput) (*BookingView, error) {
	now := s.Now()
	if in.Start == nil || in.End == nil {
		return nil, apperr.Validation("start and end are required")
	}
	start, end := in.Start.Time, in.End.Time
	if !start.After(now) || !end.After(now) {
		return nil, apperr.Validation("start and end must be in the future")
	}
	if !end.After(start) {
		return nil, apperr.Validation("end must be after start")
	}

	booker, err := findUser(ctx, s.users, callerID)
	if err != nil {
		return nil, err
	}
	item, err := findItem(ctx, s.items, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID == booker.ID {
		return nil, apperr.Forbidden("trying to book user's own item")
	}
	if !item.Available {
		return nil, apperr.Validation("item is unavailable")
	}

	b := &models.Booking{
		StartAt:  start,
		EndAt:    end,
		ItemID:   item.ID,
		BookerID: booker.ID,
		Status:   models.StatusWaiting,
	}
	if err := s.bookings.CreateBooking(ctx, b); err != nil {
		if errors.Is(err, db.ErrItemUnavailable) {
			return nil, apperr.Validation("item is unavailable")
		}
		return nil, err
	}
	b.Item = *item
	b.Booker = *booker
	log.Printf("booking %d for item %q created", b.ID, item.Name)

	view := toBookingView(*b)
	return &view, nil
}

// Approve decides a WAITING booking. The status check comes before the
// ownership check, so a decided booking answers 400 even to a non-owner.
func (s *BookingService) Approve(ctx context.Context, callerID, bookingID int64, isApproved bool) (*BookingView, error) {
	owner, err := findUser(ctx, s.users, callerID)
	if err != nil {
		return nil, err
	}
	b, err := findBooking(ctx, s.bookings, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != models.StatusWaiting {
		return nil, apperr.Validation("booking status must be WAITING to approve")
	}
	if b.Item.OwnerID != owner.ID {
		return nil, apperr.Forbidden("trying to approve a booking on a not owned item")
	}

	updated, err := s.bookings.DecideBooking(ctx, bookingID, isApproved)
	if err != nil {
		if errors.Is(err, db.ErrBookingDecided) {
			return nil, apperr.Validation("booking status must be WAITING to approve")
		}
		return nil, err
	}
	log.Printf("booking %d is %s", updated.ID, updated.Status)

	view := toBookingView(*updated)
	return &view, nil
}

// GetByID returns the booking only to its booker or the booked item's owner.
func (s *BookingService) GetByID(ctx context.Context, callerID, bookingID int64) (*BookingView, error) {
	caller, err := findUser(ctx, s.users, callerID)
	if err != nil {
		return nil, err
	}
	b, err := findBooking(ctx, s.bookings, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BookerID != caller.ID && b.Item.OwnerID != caller.ID {
		return nil, apperr.Forbidden("user is not the item's owner or the booking's booker")
	}

	view := toBookingView(*b)
	return &view, nil
}

func (s *BookingService) GetByBookerID(ctx context.Context, bookerID int64, state string, from, size int) ([]BookingView, error) {
	if _, err := findUser(ctx, s.users, bookerID); err != nil {
		return nil, err
	}
	filter, err := ParseBookingState(state)
	if err != nil {
		return nil, err
	}
	offset, limit, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}

	bs, err := s.bookings.ListBookingsByBooker(ctx, bookerID, filter, s.Now(), offset, limit)
	if err != nil {
		return nil, err
	}
	return toBookingViews(bs), nil
}

func (s *BookingService) GetByOwnerID(ctx context.Context, ownerID int64, state string, from, size int) ([]BookingView, error) {
	if _, err := findUser(ctx, s.users, ownerID); err != nil {
		return nil, err
	}
	filter, err := ParseBookingState(state)
	if err != nil {
		return nil, err
	}
	offset, limit, err := pageWindow(from, size)
	if err != nil {
		return nil, err
	}

	bs, err := s.bookings.ListBookingsByOwner(ctx, ownerID, filter, s.Now(), offset, limit)
	if err != nil {
		return nil, err
	}
	return toBookingViews(bs), nil
}
