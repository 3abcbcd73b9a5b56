package get_occupied_slots

import (
	"context"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

type BookingRepository interface {
	OccupiedSlots(ctx context.Context, venueID uuid.UUID) ([]domain.Slot, error)
}

type SlotsCache interface {
	Get(ctx context.Context, venueID uuid.UUID) ([]domain.Slot, bool)
	Set(ctx context.Context, venueID uuid.UUID, slots []domain.Slot)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
