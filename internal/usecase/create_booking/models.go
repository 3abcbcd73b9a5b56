package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request carries the booking window the customer asked for.
type Request struct {
	VenueID       uuid.UUID
	StartDatetime time.Time
	EndDatetime   time.Time
	Notes         *string
}
