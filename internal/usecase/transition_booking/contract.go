package transition_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID, scope domain.ScopeFilter) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error)
}

// PaymentServiceClient requests refunds. Best-effort.
type PaymentServiceClient interface {
	RefundBooking(ctx context.Context, bookingID uuid.UUID, user domain.CurrentUser) bool
}

type SlotsCache interface {
	Invalidate(ctx context.Context, venueID uuid.UUID)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
