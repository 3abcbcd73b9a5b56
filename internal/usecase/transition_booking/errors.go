package transition_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("transition_booking: booking not found")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("transition_booking: internal error")
)
