package db

import (
	"Gin_postgres_redis_share_it/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrItemUnavailable is returned when the availability re-check under the
	// row lock fails, i.e. the item was flipped between the caller's read and
	// the insert.
	ErrItemUnavailable = errors.New("item is unavailable")
	// ErrBookingDecided is returned when a booking is no longer WAITING by the
	// time the approval transaction takes its lock.
	ErrBookingDecided = errors.New("booking already decided")
)

// BookingListFilter selects which temporal/status slice of a user's bookings
// a listing returns.
type BookingListFilter int

const (
	FilterAll BookingListFilter = iota
	FilterCurrent
	FilterFuture
	FilterPast
	FilterWaiting
	FilterRejected
)

// CreateBooking inserts the booking after re-checking availability under a
// row lock on the item, so a concurrent availability flip cannot slip a
// booking onto an unavailable item.
func (r *Repo) CreateBooking(ctx context.Context, b *models.Booking) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it models.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&it, "id = ?", b.ItemID).Error; err != nil {
			return err
		}
		if !it.Available {
			return ErrItemUnavailable
		}
		return tx.Create(b).Error
	})
}

func (r *Repo) FindBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	var b models.Booking
	if err := r.DB.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// DecideBooking transitions a WAITING booking to APPROVED or REJECTED. The
// status is re-checked under a row lock inside the transaction; of two racing
// approvals exactly one wins, the other gets ErrBookingDecided.
func (r *Repo) DecideBooking(ctx context.Context, bookingID int64, approved bool) (*models.Booking, error) {
	var b models.Booking
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&b, "id = ?", bookingID).Error; err != nil {
			return err
		}
		if b.Status != models.StatusWaiting {
			return ErrBookingDecided
		}
		if approved {
			b.Status = models.StatusApproved
		} else {
			b.Status = models.StatusRejected
		}
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindBookingByID(ctx, b.ID)
}

// ListBookingsByBooker returns the booker's bookings for the given filter,
// start descending.
func (r *Repo) ListBookingsByBooker(ctx context.Context, bookerID int64, filter BookingListFilter, now time.Time, offset, limit int) ([]models.Booking, error) {
	q := r.DB.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("booker_id = ?", bookerID)
	q = applyBookingFilter(q, filter, now)

	var bs []models.Booking
	err := q.Order("start_at DESC").Offset(offset).Limit(limit).Find(&bs).Error
	return bs, err
}

// ListBookingsByOwner is the owner-side counterpart; ownership is resolved by
// joining through the booked item rather than a column on the booking.
func (r *Repo) ListBookingsByOwner(ctx context.Context, ownerID int64, filter BookingListFilter, now time.Time, offset, limit int) ([]models.Booking, error) {
	q := r.DB.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Joins(fmt.Sprintf("JOIN %s ON %s.id = %s.item_id", models.ItemTable, models.ItemTable, models.BookingTable)).
		Where(fmt.Sprintf("%s.owner_id = ?", models.ItemTable), ownerID)
	q = applyBookingFilter(q, filter, now)

	var bs []models.Booking
	err := q.Order("start_at DESC").Offset(offset).Limit(limit).Find(&bs).Error
	return bs, err
}

func applyBookingFilter(q *gorm.DB, filter BookingListFilter, now time.Time) *gorm.DB {
	table := models.BookingTable
	switch filter {
	case FilterAll:
	case FilterCurrent:
		q = q.Where(table+".start_at < ? AND "+table+".end_at > ?", now, now)
	case FilterFuture:
		q = q.Where(table+".start_at > ?", now)
	case FilterPast:
		q = q.Where(table+".end_at < ?", now)
	case FilterWaiting:
		q = q.Where(table+".status = ?", models.StatusWaiting)
	case FilterRejected:
		q = q.Where(table+".status = ?", models.StatusRejected)
	}
	return q
}

// NextBookingForItem is the approved booking with the earliest start after
// now, or nil if there is none.
func (r *Repo) NextBookingForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	var b models.Booking
	err := r.DB.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_at > ?", itemID, models.StatusApproved, now).
		Order("start_at ASC").
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// LastBookingForItem is the approved booking with the latest end before now,
// or nil if there is none.
func (r *Repo) LastBookingForItem(ctx context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	var b models.Booking
	err := r.DB.WithContext(ctx).
		Where("item_id = ? AND status = ? AND end_at < ?", itemID, models.StatusApproved, now).
		Order("end_at DESC").
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// HasFinishedBooking reports whether the user has any booking on the item
// whose end is already in the past. Gates comment creation.
func (r *Repo) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("booker_id = ? AND item_id = ? AND end_at < ?", bookerID, itemID, now).
		Count(&n).Error
	return n > 0, err
}
