package models

import "time"

const ItemTable = "share_items"

type Item struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"size:2000;not null" json:"description"`
	Available   bool   `gorm:"not null" json:"available"`
	OwnerID     int64  `gorm:"index;not null" json:"ownerId"`
	Owner       User   `gorm:"foreignKey:OwnerID" json:"-"`
	// RequestID links an item to the request it fulfills, if any.
	RequestID *int64    `gorm:"index" json:"requestId,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Item) TableName() string { return ItemTable }
