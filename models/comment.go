package models

import "time"

const CommentTable = "share_comments"

type Comment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"size:2000;not null" json:"text"`
	ItemID    int64     `gorm:"index;not null" json:"itemId"`
	Item      Item      `gorm:"foreignKey:ItemID" json:"-"`
	AuthorID  int64     `gorm:"not null" json:"authorId"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt time.Time `json:"created"`
}

func (Comment) TableName() string { return CommentTable }
