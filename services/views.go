package services

import (
	"Gin_postgres_redis_share_it/models"
)

// Response shapes. Timestamps go out as models.LocalTime so the wire format
// stays local date-time at second precision.

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingItemView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingView struct {
	ID     int64                `json:"id"`
	Start  models.LocalTime     `json:"start"`
	End    models.LocalTime     `json:"end"`
	Status models.BookingStatus `json:"status"`
	Booker UserView             `json:"booker"`
	Item   BookingItemView      `json:"item"`
}

// BookingRefView is the short projection attached to items as
// nextBooking/lastBooking.
type BookingRefView struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type CommentView struct {
	ID         int64            `json:"id"`
	Text       string           `json:"text"`
	AuthorName string           `json:"authorName"`
	Created    models.LocalTime `json:"created"`
}

type ItemView struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Available   bool            `json:"available"`
	RequestID   *int64          `json:"requestId,omitempty"`
	LastBooking *BookingRefView `json:"lastBooking"`
	NextBooking *BookingRefView `json:"nextBooking"`
	Comments    []CommentView   `json:"comments"`
}

// ItemRefView is the short item projection listed on a fulfilled request.
type ItemRefView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type RequestView struct {
	ID          int64            `json:"id"`
	Description string           `json:"description"`
	Created     models.LocalTime `json:"created"`
	Items       []ItemRefView    `json:"items"`
}

func toUserView(u models.User) UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toUserViews(users []models.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	return views
}

// toBookingView expects b.Item and b.Booker to be populated.
func toBookingView(b models.Booking) BookingView {
	return BookingView{
		ID:     b.ID,
		Start:  models.NewLocalTime(b.StartAt),
		End:    models.NewLocalTime(b.EndAt),
		Status: b.Status,
		Booker: toUserView(b.Booker),
		Item:   BookingItemView{ID: b.Item.ID, Name: b.Item.Name},
	}
}

func toBookingViews(bs []models.Booking) []BookingView {
	views := make([]BookingView, 0, len(bs))
	for _, b := range bs {
		views = append(views, toBookingView(b))
	}
	return views
}

func toBookingRef(b *models.Booking) *BookingRefView {
	if b == nil {
		return nil
	}
	return &BookingRefView{ID: b.ID, BookerID: b.BookerID}
}

// toCommentView expects c.Author to be populated.
func toCommentView(c models.Comment) CommentView {
	return CommentView{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.Author.Name,
		Created:    models.NewLocalTime(c.CreatedAt),
	}
}

func toItemRefView(it models.Item) ItemRefView {
	return ItemRefView{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}
