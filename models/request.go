package models

import "time"

const RequestTable = "share_requests"

// ItemRequest is an open ask for an item nobody has listed yet. Items created
// later may point back at it via Item.RequestID.
type ItemRequest struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"size:2000;not null" json:"description"`
	RequesterID int64     `gorm:"index;not null" json:"requesterId"`
	Requester   User      `gorm:"foreignKey:RequesterID" json:"-"`
	CreatedAt   time.Time `gorm:"index;not null" json:"created"`
}

func (ItemRequest) TableName() string { return RequestTable }
