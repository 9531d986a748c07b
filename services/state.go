package services

import (
	"Gin_postgres_redis_share_it/apperr"
	"Gin_postgres_redis_share_it/db"
)

// ParseBookingState maps a state filter string from the query layer onto the
// booking listing filter. The set is closed: anything outside the six known
// states is a validation failure, never a silent ALL.
func ParseBookingState(state string) (db.BookingListFilter, error) {
	switch state {
	case "ALL":
		return db.FilterAll, nil
	case "CURRENT":
		return db.FilterCurrent, nil
	case "FUTURE":
		return db.FilterFuture, nil
	case "PAST":
		return db.FilterPast, nil
	case "WAITING":
		return db.FilterWaiting, nil
	case "REJECTED":
		return db.FilterRejected, nil
	}
	return 0, apperr.Validation("Unknown state: %s", state)
}
