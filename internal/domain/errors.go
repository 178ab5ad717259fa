package domain

import "errors"

// Error kinds. Every coded domain error unwraps to one of them.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Error is a domain error carrying a stable code used for message lookup.
type Error struct {
	Code string
	Kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, code, msg string) *Error {
	return &Error{Code: code, Kind: kind, msg: msg}
}

// Domain errors.
var (
	ErrEmptyTitle    = newError(ErrValidation, "empty_title", "event title is required")
	ErrInvertedRange = newError(ErrValidation, "inverted_range", "event end must not precede its start")
	ErrInvalidClock  = newError(ErrValidation, "invalid_clock", "time must use the 24-hour HH:mm format")
	ErrInvalidDate   = newError(ErrValidation, "invalid_date", "date must use the YYYY-MM-DD format")
	ErrUnknownZone   = newError(ErrValidation, "unknown_zone", "unrecognized time zone")
	ErrEventNotFound = newError(ErrNotFound, "event_not_found", "event not found")
)

// Code returns the code of the first domain error in err's chain, or "".
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
