package create_booking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

// validateRequest checks the window shape and normalizes it to UTC.
func validateRequest(req *Request) error {
	if req.StartDatetime.IsZero() || req.EndDatetime.IsZero() {
		return fmt.Errorf("%w: start and end datetimes are required", ErrInvalidInput)
	}

	req.StartDatetime = req.StartDatetime.UTC()
	req.EndDatetime = req.EndDatetime.UTC()

	if !req.EndDatetime.After(req.StartDatetime) {
		return fmt.Errorf("%w: end datetime must be after start datetime", ErrInvalidInput)
	}
	if req.EndDatetime.Sub(req.StartDatetime) < domain.MinBookingDuration {
		return fmt.Errorf("%w: booking must last at least %s", ErrInvalidInput, formatDuration(domain.MinBookingDuration))
	}
	// The database column caps notes at MaxNotesLength characters, not bytes.
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

func formatDuration(d time.Duration) string {
	if d == time.Hour {
		return "1 hour"
	}
	return d.String()
}
