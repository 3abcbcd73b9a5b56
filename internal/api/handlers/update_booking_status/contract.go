package update_booking_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

type TransitionBookingUseCase interface {
	Execute(ctx context.Context, user domain.CurrentUser, bookingID uuid.UUID, target domain.BookingStatus) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
