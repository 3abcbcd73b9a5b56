package domain

import "time"

// Business validation constants
const (
	MinBookingDuration = time.Hour
	MaxNotesLength     = 1000

	DefaultCurrency = "EUR"
)

// Pagination bounds for booking listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
