// Package apperr carries the error kinds the services raise and the boundary
// maps to HTTP statuses. Kinds, not concrete types, so callers match with
// KindOf instead of type switches.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindInternal is anything unclassified; surfaced as a 500.
	KindInternal Kind = iota
	// KindNotFound means a referenced entity does not exist.
	KindNotFound
	// KindForbidden means the entity exists but the caller has no rights over
	// it. The boundary collapses it to the same status as KindNotFound so the
	// wire does not reveal whether the entity exists.
	KindForbidden
	// KindValidation is a business-rule or input-shape violation.
	KindValidation
	// KindInvalidArgument is a malformed paging window.
	KindInvalidArgument
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) error {
	return &Error{Kind: KindForbidden, Msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

// KindOf classifies any error; anything that is not an *Error is KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
