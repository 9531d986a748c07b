package services_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"Gin_postgres_redis_share_it/db"
	"Gin_postgres_redis_share_it/models"

	"gorm.io/gorm"
)

// fakeStore is an in-memory test double for the store interfaces. It mirrors
// the repo's query semantics (ordering, paging, the row-lock re-checks) close
// enough for the services to be exercised without a database.
type fakeStore struct {
	users    map[int64]models.User
	items    map[int64]models.Item
	bookings map[int64]models.Booking
	requests map[int64]models.ItemRequest
	comments map[int64]models.Comment

	searchCalls int
	nextID      int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[int64]models.User{},
		items:    map[int64]models.Item{},
		bookings: map[int64]models.Booking{},
		requests: map[int64]models.ItemRequest{},
		comments: map[int64]models.Comment{},
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

// seeding helpers

func (f *fakeStore) addUser(name, email string) models.User {
	u := models.User{ID: f.id(), Name: name, Email: email}
	f.users[u.ID] = u
	return u
}

func (f *fakeStore) addItem(ownerID int64, name string, available bool) models.Item {
	it := models.Item{ID: f.id(), Name: name, Description: name + " description", Available: available, OwnerID: ownerID}
	f.items[it.ID] = it
	return it
}

func (f *fakeStore) addBooking(bookerID, itemID int64, start, end time.Time, status models.BookingStatus) models.Booking {
	b := models.Booking{ID: f.id(), StartAt: start, EndAt: end, ItemID: itemID, BookerID: bookerID, Status: status}
	f.bookings[b.ID] = b
	return b
}

// UserStore

func (f *fakeStore) CreateUser(_ context.Context, u *models.User) error {
	for _, other := range f.users {
		if other.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	u.ID = f.id()
	f.users[u.ID] = *u
	return nil
}

func (f *fakeStore) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeStore) ListUsers(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeStore) SaveUser(_ context.Context, u *models.User) error {
	for _, other := range f.users {
		if other.ID != u.ID && other.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeStore) DeleteUserByID(_ context.Context, id int64) error {
	delete(f.users, id)
	return nil
}

// ItemStore

func (f *fakeStore) CreateItem(_ context.Context, it *models.Item) error {
	it.ID = f.id()
	f.items[it.ID] = *it
	return nil
}

func (f *fakeStore) SaveItem(_ context.Context, it *models.Item) error {
	f.items[it.ID] = *it
	return nil
}

func (f *fakeStore) FindItemByID(_ context.Context, id int64) (*models.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &it, nil
}

func (f *fakeStore) ListItemsByOwner(_ context.Context, ownerID int64, offset, limit int) ([]models.Item, error) {
	var items []models.Item
	for _, it := range f.items {
		if it.OwnerID == ownerID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return window(items, offset, limit), nil
}

func (f *fakeStore) SearchAvailableItems(_ context.Context, text string, offset, limit int) ([]models.Item, error) {
	f.searchCalls++
	needle := strings.ToLower(text)
	var items []models.Item
	for _, it := range f.items {
		if !it.Available {
			continue
		}
		if strings.Contains(strings.ToLower(it.Name), needle) ||
			strings.Contains(strings.ToLower(it.Description), needle) {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return window(items, offset, limit), nil
}

func (f *fakeStore) ListItemsByRequestIDs(_ context.Context, requestIDs []int64) ([]models.Item, error) {
	var items []models.Item
	for _, it := range f.items {
		if it.RequestID == nil {
			continue
		}
		for _, id := range requestIDs {
			if *it.RequestID == id {
				items = append(items, it)
				break
			}
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// CommentStore

func (f *fakeStore) CreateComment(_ context.Context, c *models.Comment) error {
	c.ID = f.id()
	c.CreatedAt = time.Now()
	f.comments[c.ID] = *c
	return nil
}

func (f *fakeStore) ListCommentsByItemIDs(_ context.Context, itemIDs []int64) ([]models.Comment, error) {
	var cs []models.Comment
	for _, c := range f.comments {
		for _, id := range itemIDs {
			if c.ItemID == id {
				c.Author = f.users[c.AuthorID]
				cs = append(cs, c)
				break
			}
		}
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
	return cs, nil
}

// BookingStore

func (f *fakeStore) CreateBooking(_ context.Context, b *models.Booking) error {
	it, ok := f.items[b.ItemID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if !it.Available {
		return db.ErrItemUnavailable
	}
	b.ID = f.id()
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeStore) FindBookingByID(_ context.Context, id int64) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	f.join(&b)
	return &b, nil
}

func (f *fakeStore) DecideBooking(_ context.Context, bookingID int64, approved bool) (*models.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if b.Status != models.StatusWaiting {
		return nil, db.ErrBookingDecided
	}
	if approved {
		b.Status = models.StatusApproved
	} else {
		b.Status = models.StatusRejected
	}
	f.bookings[b.ID] = b
	f.join(&b)
	return &b, nil
}

func (f *fakeStore) ListBookingsByBooker(_ context.Context, bookerID int64, filter db.BookingListFilter, now time.Time, offset, limit int) ([]models.Booking, error) {
	return f.listBookings(func(b models.Booking) bool { return b.BookerID == bookerID }, filter, now, offset, limit), nil
}

func (f *fakeStore) ListBookingsByOwner(_ context.Context, ownerID int64, filter db.BookingListFilter, now time.Time, offset, limit int) ([]models.Booking, error) {
	return f.listBookings(func(b models.Booking) bool { return f.items[b.ItemID].OwnerID == ownerID }, filter, now, offset, limit), nil
}

func (f *fakeStore) listBookings(match func(models.Booking) bool, filter db.BookingListFilter, now time.Time, offset, limit int) []models.Booking {
	var bs []models.Booking
	for _, b := range f.bookings {
		if !match(b) {
			continue
		}
		keep := false
		switch filter {
		case db.FilterAll:
			keep = true
		case db.FilterCurrent:
			keep = b.StartAt.Before(now) && b.EndAt.After(now)
		case db.FilterFuture:
			keep = b.StartAt.After(now)
		case db.FilterPast:
			keep = b.EndAt.Before(now)
		case db.FilterWaiting:
			keep = b.Status == models.StatusWaiting
		case db.FilterRejected:
			keep = b.Status == models.StatusRejected
		}
		if keep {
			f.join(&b)
			bs = append(bs, b)
		}
	}
	sort.Slice(bs, func(i, j int) bool { return bs[i].StartAt.After(bs[j].StartAt) })
	return window(bs, offset, limit)
}

func (f *fakeStore) NextBookingForItem(_ context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	var next *models.Booking
	for _, b := range f.bookings {
		if b.ItemID != itemID || b.Status != models.StatusApproved || !b.StartAt.After(now) {
			continue
		}
		if next == nil || b.StartAt.Before(next.StartAt) {
			b := b
			next = &b
		}
	}
	return next, nil
}

func (f *fakeStore) LastBookingForItem(_ context.Context, itemID int64, now time.Time) (*models.Booking, error) {
	var last *models.Booking
	for _, b := range f.bookings {
		if b.ItemID != itemID || b.Status != models.StatusApproved || !b.EndAt.Before(now) {
			continue
		}
		if last == nil || b.EndAt.After(last.EndAt) {
			b := b
			last = &b
		}
	}
	return last, nil
}

func (f *fakeStore) HasFinishedBooking(_ context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	for _, b := range f.bookings {
		if b.BookerID == bookerID && b.ItemID == itemID && b.EndAt.Before(now) {
			return true, nil
		}
	}
	return false, nil
}

// RequestStore

func (f *fakeStore) CreateRequest(_ context.Context, req *models.ItemRequest) error {
	req.ID = f.id()
	f.requests[req.ID] = *req
	return nil
}

func (f *fakeStore) FindRequestByID(_ context.Context, id int64) (*models.ItemRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &req, nil
}

func (f *fakeStore) ListRequestsByRequester(_ context.Context, requesterID int64) ([]models.ItemRequest, error) {
	var reqs []models.ItemRequest
	for _, req := range f.requests {
		if req.RequesterID == requesterID {
			reqs = append(reqs, req)
		}
	}
	sortRequestsNewestFirst(reqs)
	return reqs, nil
}

func (f *fakeStore) ListRequestsOfOthers(_ context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error) {
	var reqs []models.ItemRequest
	for _, req := range f.requests {
		if req.RequesterID != requesterID {
			reqs = append(reqs, req)
		}
	}
	sortRequestsNewestFirst(reqs)
	return window(reqs, offset, limit), nil
}

func (f *fakeStore) join(b *models.Booking) {
	b.Item = f.items[b.ItemID]
	b.Booker = f.users[b.BookerID]
}

func sortRequestsNewestFirst(reqs []models.ItemRequest) {
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].CreatedAt.After(reqs[j].CreatedAt) })
}

func window[T any](rows []T, offset, limit int) []T {
	if offset >= len(rows) {
		return nil
	}
	rows = rows[offset:]
	if limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
