package get_occupied_slots

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

// UseCase serves a venue's occupied time windows, cache-first. The result
// deliberately strips everything but the windows themselves.
type UseCase struct {
	bookingRepo BookingRepository
	slotsCache  SlotsCache
	logger      Logger
}

func NewUseCase(repo BookingRepository, cache SlotsCache, logger Logger) *UseCase {
	return &UseCase{bookingRepo: repo, slotsCache: cache, logger: logger}
}

func (uc *UseCase) Execute(ctx context.Context, venueID uuid.UUID) ([]domain.Slot, error) {
	if slots, ok := uc.slotsCache.Get(ctx, venueID); ok {
		uc.logger.Info("GetOccupiedSlots: cache hit for venue %s (%d slots)", venueID, len(slots))
		return slots, nil
	}

	slots, err := uc.bookingRepo.OccupiedSlots(ctx, venueID)
	if err != nil {
		uc.logger.Error("GetOccupiedSlots: failed to load slots for venue %s: %v", venueID, err)
		return nil, fmt.Errorf("%w: failed to load occupied slots: %v", ErrInternal, err)
	}

	uc.slotsCache.Set(ctx, venueID, slots)
	uc.logger.Info("GetOccupiedSlots: loaded %d slots for venue %s", len(slots), venueID)
	return slots, nil
}
