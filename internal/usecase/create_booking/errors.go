package create_booking

import "errors"

var (
	// ErrVenueNotFound is returned when the venue does not exist.
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrVenueNotActive is returned when the venue does not accept bookings.
	ErrVenueNotActive = errors.New("create_booking: venue is not active")

	// ErrBookingConflict is returned when the window overlaps an existing
	// pending or confirmed booking.
	ErrBookingConflict = errors.New("create_booking: time slot conflicts with an existing booking")

	// ErrUnavailabilityConflict is returned when the window overlaps an
	// owner-blocked period of the venue.
	ErrUnavailabilityConflict = errors.New("create_booking: time slot falls within a venue unavailability")

	// ErrInvalidInput is returned on validation failures.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrVenueServiceUnavailable is returned when venues-ms cannot answer.
	ErrVenueServiceUnavailable = errors.New("create_booking: venue service unavailable")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("create_booking: internal error")
)
