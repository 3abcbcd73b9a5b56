package transition_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	bookingRepo "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/infra/storage/booking"
)

// UseCase moves a booking through its status lifecycle. Authorization lives
// in domain.CheckTransition; this usecase loads, guards, writes, and handles
// the cancellation side effects.
type UseCase struct {
	bookingRepo   BookingRepository
	paymentClient PaymentServiceClient
	slotsCache    SlotsCache
	logger        Logger
}

func NewUseCase(
	repo BookingRepository,
	paymentClient PaymentServiceClient,
	slotsCache SlotsCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   repo,
		paymentClient: paymentClient,
		slotsCache:    slotsCache,
		logger:        logger,
	}
}

// Execute applies the transition. It returns *domain.InvalidTransitionError
// or *domain.ForbiddenError untouched so the handler can map them.
func (uc *UseCase) Execute(ctx context.Context, user domain.CurrentUser, bookingID uuid.UUID, target domain.BookingStatus) (*domain.Booking, error) {
	uc.logger.Info("TransitionBooking: user=%s, booking=%s, target=%s", user.ID, bookingID, target)

	// The guard decides who may see what; the load itself is unscoped.
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID, domain.ScopeFilter{})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("TransitionBooking: booking %s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("TransitionBooking: failed to load booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to load booking: %v", ErrInternal, err)
	}

	if err := domain.CheckTransition(booking.Status, target, booking.UserID, booking.VenueOwnerID, user); err != nil {
		uc.logger.Warn("TransitionBooking: rejected %s -> %s for booking %s: %v",
			booking.Status, target, bookingID, err)
		return nil, err
	}

	updated, err := uc.bookingRepo.UpdateStatus(ctx, bookingID, target)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// The row vanished between load and write.
			uc.logger.Warn("TransitionBooking: booking %s disappeared during transition", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("TransitionBooking: failed to update booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	uc.slotsCache.Invalidate(ctx, updated.VenueID)

	// A cancellation by anyone other than the customer triggers a refund.
	if target == domain.StatusCancelled && user.ID != booking.UserID {
		if ok := uc.paymentClient.RefundBooking(ctx, bookingID, user); !ok {
			uc.logger.Error("TransitionBooking: refund request failed for booking %s", bookingID)
		}
	}

	uc.logger.Info("TransitionBooking: booking %s is now %s", bookingID, updated.Status)
	return updated, nil
}
