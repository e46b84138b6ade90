package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is the sentinel behind InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrEmptyOrder is returned when an order without items would be approved.
	ErrEmptyOrder = errors.New("order has no items")
)

// InvalidTransitionError names the current and the requested status of a
// transition that is not in the table.
type InvalidTransitionError struct {
	Current   Status
	Requested Status
}

func NewInvalidTransitionError(current, requested Status) *InvalidTransitionError {
	return &InvalidTransitionError{
		Current:   current,
		Requested: requested,
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.Current, e.Requested)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
