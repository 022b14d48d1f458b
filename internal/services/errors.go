package services

import (
	"errors"
)

// Error kinds returned by the data-access operations. Callers match with
// errors.Is; the detail behind an ErrUnavailable goes to the operator log,
// never to the caller.
var (
	// ErrNoSession means the operation requires an authenticated session.
	ErrNoSession = errors.New("no active session")
	// ErrInvalidInput covers values rejected before the store is contacted,
	// such as an out-of-enumeration reaction or role.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicate means the user name or email is already registered.
	ErrDuplicate = errors.New("user name or email already taken")
	// ErrNotFound covers both a missing row and a row the caller does not
	// own; the two are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthorized means the caller lacks the admin role.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrUnavailable is any store-level failure after rollback.
	ErrUnavailable = errors.New("store unavailable")
)
