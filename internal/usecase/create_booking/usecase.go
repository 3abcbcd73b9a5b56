package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	venueClient "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/integrations/venueservice"
)

// pgSerializationFailure is SQLSTATE 40001: postgres aborted one of two
// conflicting serializable transactions at commit.
const pgSerializationFailure = "40001"

// UseCase creates a booking. The overlap check and the insert run inside a
// serializable transaction so two concurrent requests for the same window
// cannot both succeed.
type UseCase struct {
	bookingRepo BookingRepository
	venueClient VenueServiceClient
	slotsCache  SlotsCache
	txManager   TransactionManager
	logger      Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	venueClient VenueServiceClient,
	slotsCache SlotsCache,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		venueClient: venueClient,
		slotsCache:  slotsCache,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, user domain.CurrentUser, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: user=%s, venue=%s, window=[%s, %s)",
		user.ID, req.VenueID, req.StartDatetime, req.EndDatetime)

	// 1. Validate and normalize the requested window.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the venue; only active venues accept bookings.
	venue, err := uc.venueClient.GetVenue(ctx, req.VenueID, user)
	if err != nil {
		if errors.Is(err, venueClient.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue %s not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue %s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrVenueServiceUnavailable, err)
	}
	if !venue.Active() {
		uc.logger.Warn("CreateBooking: venue %s is not active (status=%s)", req.VenueID, venue.Status)
		return nil, ErrVenueNotActive
	}

	// 3. Owner-blocked windows veto the booking before any write.
	unavailabilities, err := uc.venueClient.GetUnavailabilities(ctx, req.VenueID, user)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get unavailabilities for venue %s: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get unavailabilities: %v", ErrVenueServiceUnavailable, err)
	}
	if domain.AnyOverlaps(req.StartDatetime, req.EndDatetime, unavailabilities) {
		uc.logger.Warn("CreateBooking: window overlaps a venue unavailability, venue=%s", req.VenueID)
		return nil, ErrUnavailabilityConflict
	}

	currency := venue.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	booking := &domain.Booking{
		VenueID:       req.VenueID,
		VenueOwnerID:  venue.OwnerID,
		UserID:        user.ID,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Status:        domain.StatusPending,
		PricePerHour:  venue.PricePerHour,
		TotalPrice:    domain.TotalPrice(venue.PricePerHour, req.StartDatetime, req.EndDatetime),
		Currency:      currency,
		Notes:         req.Notes,
	}

	// 4. Check-then-insert under a serializable transaction; the overlap
	// query locks the venue's active rows.
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlap, err := uc.bookingRepo.HasActiveOverlap(txCtx, req.VenueID, req.StartDatetime, req.EndDatetime, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: overlap check failed: %v", err)
			return fmt.Errorf("%w: overlap check failed: %v", ErrInternal, err)
		}
		if overlap {
			uc.logger.Warn("CreateBooking: window conflicts with an existing booking, venue=%s", req.VenueID)
			return ErrBookingConflict
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		// Two concurrent creates over an empty window lock no rows, so
		// postgres rejects the losing transaction at commit instead.
		if isSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: concurrent create lost serializable commit, venue=%s: %v", req.VenueID, err)
			return nil, ErrBookingConflict
		}
		return nil, err
	}

	// 5. The cached occupied slots are stale now.
	uc.slotsCache.Invalidate(ctx, req.VenueID)

	uc.logger.Info("CreateBooking: created booking %s, total=%s %s",
		created.ID, created.TotalPrice, created.Currency)
	return created, nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgSerializationFailure
}
