package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist or is
	// outside the caller's visibility scope.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput is returned on bad filter values.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
