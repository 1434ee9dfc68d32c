package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation references an id that is
	// absent from the collection.
	ErrNotFound = errors.New("not found")

	// ErrUnknownCategory is returned when a habit references a category
	// that is not registered.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrDuplicateEmail is returned by registration when the email is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned by login when no user matches the
	// given email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthenticated is returned when an operation requires an active
	// session and there is none.
	ErrNotAuthenticated = errors.New("not logged in")
)

// ValidationError rejects invalid input to create/edit operations. The
// operation performs no state change when it is returned.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// StorageError wraps a persistence read/write failure. A failed write is
// fatal to that operation only; in-memory state stays consistent.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
