package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	bookingRepo "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/infra/storage/booking"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/integrations/userservice"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/integrations/venueservice"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/service/bookings/models"
)

// Service is the read side of the bookings API. It resolves what the caller
// may see from their scopes and enriches responses with names from the
// collaborator services.
type Service struct {
	bookingRepo BookingRepository
	venueClient VenueServiceClient
	userClient  UserServiceClient
	slotsCache  SlotsCache
	txManager   TransactionManager
	logger      Logger
}

func NewService(
	bookingRepo BookingRepository,
	venueClient VenueServiceClient,
	userClient UserServiceClient,
	slotsCache SlotsCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		venueClient: venueClient,
		userClient:  userClient,
		slotsCache:  slotsCache,
		txManager:   txManager,
		logger:      logger,
	}
}

// scopeFor translates the caller's scopes into a repository visibility
// filter. Admin readers see everything; a venue owner with bookings:manage
// but no bookings:read sees their venues' bookings; everyone else sees
// their own.
func scopeFor(user domain.CurrentUser) domain.ScopeFilter {
	if user.CanAdminRead() {
		return domain.ScopeFilter{}
	}
	if user.Scopes.Has(domain.ScopeManage) && !user.Scopes.Has(domain.ScopeRead) {
		ownerID := user.ID
		return domain.ScopeFilter{VenueOwnerID: &ownerID}
	}
	userID := user.ID
	return domain.ScopeFilter{UserID: &userID}
}

// GetByID fetches a single booking within the caller's scope and enriches it.
func (s *Service) GetByID(ctx context.Context, user domain.CurrentUser, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking %s for user %s", id, user.ID)

	booking, err := s.bookingRepo.GetByID(ctx, id, scopeFor(user))
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking %s not visible to user %s", id, user.ID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	responses := models.FromDomainBookingList([]*domain.Booking{booking})
	s.enrich(ctx, user, responses)
	return responses[0], nil
}

// List fetches bookings within the caller's scope, enriched, newest first.
func (s *Service) List(ctx context.Context, user domain.CurrentUser, filter domain.ListFilter) ([]*models.BookingResponse, error) {
	s.logger.Info("List: fetching bookings for user %s, page=%d", user.ID, filter.Page)

	var bookings []*domain.Booking
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		bookings, err = s.bookingRepo.List(txCtx, filter, scopeFor(user))
		return err
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	responses := models.FromDomainBookingList(bookings)
	s.enrich(ctx, user, responses)

	s.logger.Info("List: returning %d bookings for user %s", len(responses), user.ID)
	return responses, nil
}

// Delete hard-deletes a booking. Scope enforcement (admin delete only)
// happens in the handler; the service just executes and keeps the slots
// cache honest.
func (s *Service) Delete(ctx context.Context, user domain.CurrentUser, id uuid.UUID) error {
	s.logger.Info("Delete: user %s deleting booking %s", user.ID, id)

	var booking *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.bookingRepo.GetByID(txCtx, id, domain.ScopeFilter{})
		if err != nil {
			return err
		}
		return s.bookingRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: failed to delete booking %s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Deleting a completed or cancelled booking does not change the
	// occupied slots, so the cache stays as is.
	if booking.IsActive() {
		s.slotsCache.Invalidate(ctx, booking.VenueID)
	}
	return nil
}

// enrich resolves venue names and user profiles concurrently and fills the
// nullable response fields. Any failure leaves the fields nil.
func (s *Service) enrich(ctx context.Context, user domain.CurrentUser, responses []*models.BookingResponse) {
	if len(responses) == 0 {
		return
	}

	venueIDs := make([]uuid.UUID, 0, len(responses))
	userIDs := make([]uuid.UUID, 0, len(responses)*2)
	seenVenues := make(map[uuid.UUID]struct{})
	seenUsers := make(map[uuid.UUID]struct{})
	for _, r := range responses {
		if _, ok := seenVenues[r.VenueID]; !ok {
			seenVenues[r.VenueID] = struct{}{}
			venueIDs = append(venueIDs, r.VenueID)
		}
		for _, id := range []uuid.UUID{r.UserID, r.VenueOwnerID} {
			if _, ok := seenUsers[id]; !ok {
				seenUsers[id] = struct{}{}
				userIDs = append(userIDs, id)
			}
		}
	}

	var (
		venues []venueservice.VenueListItem
		users  []userservice.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		venues = s.venueClient.GetByIDs(gctx, venueIDs, user)
		return nil
	})
	g.Go(func() error {
		users = s.userClient.GetByIDs(gctx, userIDs, user)
		return nil
	})
	_ = g.Wait()

	venueNames := make(map[uuid.UUID]string, len(venues))
	for _, v := range venues {
		venueNames[v.ID] = v.Name
	}
	profiles := make(map[uuid.UUID]userservice.User, len(users))
	for _, u := range users {
		profiles[u.ID] = u
	}

	for _, r := range responses {
		if name, ok := venueNames[r.VenueID]; ok {
			n := name
			r.VenueName = &n
		}
		if p, ok := profiles[r.UserID]; ok {
			username := p.Username
			r.CustomerUsername = &username
			r.CustomerFullName = p.FullName
		}
		if p, ok := profiles[r.VenueOwnerID]; ok {
			username := p.Username
			r.OwnerUsername = &username
		}
	}
}
