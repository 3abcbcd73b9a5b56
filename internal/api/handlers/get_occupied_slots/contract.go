package get_occupied_slots

import (
	"context"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

type GetOccupiedSlotsUseCase interface {
	Execute(ctx context.Context, venueID uuid.UUID) ([]domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
