package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, user domain.CurrentUser, id uuid.UUID) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
