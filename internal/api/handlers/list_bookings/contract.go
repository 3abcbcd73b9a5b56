package list_bookings

import (
	"context"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, user domain.CurrentUser, filter domain.ListFilter) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
