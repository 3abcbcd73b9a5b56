package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/integrations/userservice"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/integrations/venueservice"
)

// BookingRepository is the read and delete surface the service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID, scope domain.ScopeFilter) (*domain.Booking, error)
	List(ctx context.Context, filter domain.ListFilter, scope domain.ScopeFilter) ([]*domain.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// VenueServiceClient resolves venue names for enrichment.
type VenueServiceClient interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID, user domain.CurrentUser) []venueservice.VenueListItem
}

// UserServiceClient resolves user profiles for enrichment.
type UserServiceClient interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID, user domain.CurrentUser) []userservice.User
}

type SlotsCache interface {
	Invalidate(ctx context.Context, venueID uuid.UUID)
}

// TransactionManager scopes repository calls to a database transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
