package services

import (
	"Gin_postgres_redis_share_it/apperr"
	"Gin_postgres_redis_share_it/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

// Lookup helpers shared by the services: a missing row becomes a NotFound,
// everything else passes through untouched.

func findUser(ctx context.Context, store UserStore, id int64) (*models.User, error) {
	u, err := store.FindUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user with ID %d is not found", id)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func findItem(ctx context.Context, store ItemStore, id int64) (*models.Item, error) {
	it, err := store.FindItemByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("item with ID %d is not found", id)
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func findBooking(ctx context.Context, store BookingStore, id int64) (*models.Booking, error) {
	b, err := store.FindBookingByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("booking with ID %d is not found", id)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func findRequest(ctx context.Context, store RequestStore, id int64) (*models.ItemRequest, error) {
	req, err := store.FindRequestByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("request with ID %d is not found", id)
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}
