package services

import (
	"Gin_postgres_redis_share_it/db"
	"Gin_postgres_redis_share_it/models"
	"context"
	"time"
)

// Store interfaces the services depend on. *db.Repo satisfies all of them;
// tests substitute fakes.

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SaveUser(ctx context.Context, u *models.User) error
	DeleteUserByID(ctx context.Context, id int64) error
}

type ItemStore interface {
	CreateItem(ctx context.Context, it *models.Item) error
	SaveItem(ctx context.Context, it *models.Item) error
	FindItemByID(ctx context.Context, id int64) (*models.Item, error)
	ListItemsByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, error)
	SearchAvailableItems(ctx context.Context, text string, offset, limit int) ([]models.Item, error)
	ListItemsByRequestIDs(ctx context.Context, requestIDs []int64) ([]models.Item, error)
}

type CommentStore interface {
	CreateComment(ctx context.Context, c *models.Comment) error
	ListCommentsByItemIDs(ctx context.Context, itemIDs []int64) ([]models.Comment, error)
}

type BookingStore interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
	FindBookingByID(ctx context.Context, id int64) (*models.Booking, error)
	DecideBooking(ctx context.Context, bookingID int64, approved bool) (*models.Booking, error)
	ListBookingsByBooker(ctx context.Context, bookerID int64, filter db.BookingListFilter, now time.Time, offset, limit int) ([]models.Booking, error)
	ListBookingsByOwner(ctx context.Context, ownerID int64, filter db.BookingListFilter, now time.Time, offset, limit int) ([]models.Booking, error)
	NextBookingForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error)
	LastBookingForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error)
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type RequestStore interface {
	CreateRequest(ctx context.Context, req *models.ItemRequest) error
	FindRequestByID(ctx context.Context, id int64) (*models.ItemRequest, error)
	ListRequestsByRequester(ctx context.Context, requesterID int64) ([]models.ItemRequest, error)
	ListRequestsOfOthers(ctx context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error)
}
