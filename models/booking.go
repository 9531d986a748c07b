package models

import "time"

const BookingTable = "share_bookings"

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID       int64         `gorm:"primaryKey" json:"id"`
	StartAt  time.Time     `gorm:"index;not null" json:"startAt"`
	EndAt    time.Time     `gorm:"not null" json:"endAt"`
	ItemID   int64         `gorm:"index;not null" json:"itemId"`
	Item     Item          `gorm:"foreignKey:ItemID" json:"-"`
	BookerID int64         `gorm:"index;not null" json:"bookerId"`
	Booker   User          `gorm:"foreignKey:BookerID" json:"-"`
	Status   BookingStatus `gorm:"size:16;not null;default:'WAITING'" json:"status"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Booking) TableName() string { return BookingTable }
