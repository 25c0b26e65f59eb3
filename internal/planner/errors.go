package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrGuestNotFound is returned when removing a guest that does not exist.
	ErrGuestNotFound = errors.New("guest not found")

	// ErrItemNotFound is returned when removing a goody bag item that does not exist.
	ErrItemNotFound = errors.New("goody bag item not found")

	// ErrInvalidPosition is returned when a list position is out of range.
	ErrInvalidPosition = errors.New("invalid position")
)

// PersistError reports that a change was applied in memory but could not be
// written to the provider. The in-memory change is kept.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: change kept in memory but not saved: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
