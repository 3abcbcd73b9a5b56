package delete_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

type BookingService interface {
	Delete(ctx context.Context, user domain.CurrentUser, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
