package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/integrations/venueservice"
)

// BookingRepository persists bookings and answers the conflict check.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	HasActiveOverlap(ctx context.Context, venueID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)
}

// VenueServiceClient resolves the venue and its blocked windows.
type VenueServiceClient interface {
	GetVenue(ctx context.Context, venueID uuid.UUID, user domain.CurrentUser) (*venueservice.Venue, error)
	GetUnavailabilities(ctx context.Context, venueID uuid.UUID, user domain.CurrentUser) ([]domain.Slot, error)
}

// SlotsCache invalidates the venue's cached occupied slots.
type SlotsCache interface {
	Invalidate(ctx context.Context, venueID uuid.UUID)
}

// TransactionManager runs the check-then-insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
