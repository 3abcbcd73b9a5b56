package venueservice

import "errors"

var (
	// ErrVenueNotFound is returned when the venue does not exist.
	ErrVenueNotFound = errors.New("venue not found")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("venueservice client: internal error")

	// ErrServiceUnavailable is returned when venues-ms answers with an
	// unexpected status or cannot be reached.
	ErrServiceUnavailable = errors.New("venueservice unavailable")
)
