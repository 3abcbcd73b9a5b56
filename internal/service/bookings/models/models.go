package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

// BookingResponse is the API shape of a booking. Enrichment fields stay nil
// when the collaborator services could not be reached.
type BookingResponse struct {
	ID            uuid.UUID       `json:"id"`
	VenueID       uuid.UUID       `json:"venue_id"`
	VenueOwnerID  uuid.UUID       `json:"venue_owner_id"`
	UserID        uuid.UUID       `json:"user_id"`
	StartDatetime time.Time       `json:"start_datetime"`
	EndDatetime   time.Time       `json:"end_datetime"`
	Status        string          `json:"status"`
	PricePerHour  decimal.Decimal `json:"price_per_hour"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Currency      string          `json:"currency"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	VenueName        *string `json:"venue_name"`
	CustomerUsername *string `json:"customer_username"`
	CustomerFullName *string `json:"customer_full_name"`
	OwnerUsername    *string `json:"owner_username"`
}

// FromDomainBooking converts a domain booking without enrichment.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		VenueID:       b.VenueID,
		VenueOwnerID:  b.VenueOwnerID,
		UserID:        b.UserID,
		StartDatetime: b.StartDatetime,
		EndDatetime:   b.EndDatetime,
		Status:        string(b.Status),
		PricePerHour:  b.PricePerHour,
		TotalPrice:    b.TotalPrice,
		Currency:      b.Currency,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list without enrichment.
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return out
}

// SlotResponse is the API shape of an occupied window.
type SlotResponse struct {
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

// FromDomainSlots converts occupied windows for the API.
func FromDomainSlots(slots []domain.Slot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{StartDatetime: s.StartDatetime, EndDatetime: s.EndDatetime})
	}
	return out
}
