package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"   // just created, awaiting venue owner confirmation
	StatusConfirmed BookingStatus = "confirmed" // venue owner accepted
	StatusCompleted BookingStatus = "completed" // booking period elapsed, marked done
	StatusCancelled BookingStatus = "cancelled" // cancelled by customer, venue owner or admin
	StatusNoShow    BookingStatus = "no_show"   // customer didn't show up
)

// ActiveStatuses are the statuses that occupy the venue's calendar.
// Only these participate in conflict detection and the occupied-slots view.
var ActiveStatuses = []BookingStatus{StatusPending, StatusConfirmed}

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Terminal reports whether s has no outgoing transitions.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// Booking represents a time-window reservation of a venue by a customer.
// Price and venue owner are snapshots taken at creation time and are never
// re-read from the venue service.
type Booking struct {
	ID uuid.UUID

	VenueID      uuid.UUID
	VenueOwnerID uuid.UUID // denormalized snapshot from venues-ms
	UserID       uuid.UUID // the customer who made the booking

	StartDatetime time.Time // always UTC
	EndDatetime   time.Time // always UTC

	Status BookingStatus

	PricePerHour decimal.Decimal // snapshot at booking time
	TotalPrice   decimal.Decimal // computed once at creation
	Currency     string          // 3-letter code

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking occupies the venue's calendar.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// TotalPrice computes the booking total: rate × duration in hours, rounded
// to 2 decimal places, half up.
func TotalPrice(pricePerHour decimal.Decimal, start, end time.Time) decimal.Decimal {
	hours := decimal.NewFromFloat(end.Sub(start).Hours())
	return pricePerHour.Mul(hours).Round(2)
}

// ListFilter narrows a bookings listing. Pagination is 1-indexed.
type ListFilter struct {
	VenueID  *uuid.UUID
	Status   *BookingStatus
	Page     int
	PageSize int
}

// ScopeFilter restricts visibility of bookings to a customer or a venue
// owner. At most one of the fields is set; both nil means unscoped
// (admin) access.
type ScopeFilter struct {
	UserID       *uuid.UUID
	VenueOwnerID *uuid.UUID
}

// Unscoped reports whether no ownership restriction applies.
func (f ScopeFilter) Unscoped() bool {
	return f.UserID == nil && f.VenueOwnerID == nil
}
