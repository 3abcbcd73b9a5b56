package create_booking

import (
	"context"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	createBooking "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, user domain.CurrentUser, req *createBooking.Request) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
