package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	createBooking "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/usecase/create_booking"
)

// CreateBookingRequest is the HTTP request model. Datetimes carry a timezone
// offset (RFC 3339) and are normalized to UTC downstream.
type CreateBookingRequest struct {
	VenueID       string  `json:"venue_id"`
	StartDatetime string  `json:"start_datetime"`
	EndDatetime   string  `json:"end_datetime"`
	Notes         *string `json:"notes,omitempty"`
}

// ToUseCaseRequest parses identifiers and datetimes.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	venueID, err := uuid.Parse(r.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue_id: %w", err)
	}
	start, err := time.Parse(time.RFC3339, r.StartDatetime)
	if err != nil {
		return nil, fmt.Errorf("invalid start_datetime: %w", err)
	}
	end, err := time.Parse(time.RFC3339, r.EndDatetime)
	if err != nil {
		return nil, fmt.Errorf("invalid end_datetime: %w", err)
	}

	return &createBooking.Request{
		VenueID:       venueID,
		StartDatetime: start,
		EndDatetime:   end,
		Notes:         r.Notes,
	}, nil
}
