package venueservice

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Venue is the venues-ms representation a booking snapshots from.
type Venue struct {
	ID           uuid.UUID       `json:"id"`
	OwnerID      uuid.UUID       `json:"owner_id"`
	Name         string          `json:"name"`
	Status       string          `json:"status"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	Currency     string          `json:"currency"`
}

// Active reports whether the venue accepts bookings.
func (v *Venue) Active() bool {
	return v.Status == "active"
}

// VenueListItem is the trimmed shape of the batch lookup endpoint.
type VenueListItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
