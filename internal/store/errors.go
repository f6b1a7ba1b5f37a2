package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets a session id that does
// not exist (or, for InsertStop, did not update any row).
var ErrNotFound = errors.New("session not found")

// StoreError wraps a failure of the underlying database. It is reported to
// the user as a distinct category from logic errors; the program continues.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError returns true if err (or any wrapped error) is a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

func wrap(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
