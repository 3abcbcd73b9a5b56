package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

// parseFilter reads the optional venue_id, status, page, and page_size query
// parameters.
func parseFilter(query url.Values) (domain.ListFilter, error) {
	filter := domain.ListFilter{
		Page:     1,
		PageSize: domain.DefaultPageSize,
	}

	if raw := query.Get("venue_id"); raw != "" {
		venueID, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid venue_id: %w", err)
		}
		filter.VenueID = &venueID
	}

	if raw := query.Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		if !status.Valid() {
			return filter, fmt.Errorf("invalid status %q", raw)
		}
		filter.Status = &status
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return filter, fmt.Errorf("invalid page %q", raw)
		}
		filter.Page = page
	}

	if raw := query.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > domain.MaxPageSize {
			return filter, fmt.Errorf("invalid page_size %q", raw)
		}
		filter.PageSize = size
	}

	return filter, nil
}
