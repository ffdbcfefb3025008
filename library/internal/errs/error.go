package errs

import (
	"errors"
)

// Kind sentinels. Operations wrap one of these together with the
// patron-facing reason, callers classify with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrUnavailable   = errors.New("not available")
	ErrLimitExceeded = errors.New("limit exceeded")
	ErrPersistence   = errors.New("persistence failure")
	ErrGateway       = errors.New("payment gateway failure")
	ErrDeclined      = errors.New("payment declined")
)

type Error struct {
	kind   error
	reason string
}

// New ties a human-readable reason to a kind sentinel. Error() renders
// the reason as is, so handlers can hand it to the client verbatim.
func New(kind error, reason string) *Error {
	return &Error{kind: kind, reason: reason}
}

func (e *Error) Error() string { return e.reason }

func (e *Error) Unwrap() error { return e.kind }
