package transition_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	bookingRepo "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/infra/storage/booking"
)

var (
	testBookingID = uuid.MustParse("dddddddd-dddd-dddd-dddd-dddddddddddd")
	testVenueID   = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	testOwnerID   = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	testUserID    = uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc")
)

type fakeRepo struct {
	booking   *domain.Booking
	getErr    error
	updateErr error
	updated   *domain.BookingStatus
}

func (f *fakeRepo) GetByID(_ context.Context, _ uuid.UUID, scope domain.ScopeFilter) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if !scope.Unscoped() {
		return nil, errors.New("expected unscoped load")
	}
	return f.booking, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status domain.BookingStatus) (*domain.Booking, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = &status
	out := *f.booking
	out.Status = status
	return &out, nil
}

type fakePaymentClient struct {
	refunded []uuid.UUID
}

func (f *fakePaymentClient) RefundBooking(_ context.Context, bookingID uuid.UUID, _ domain.CurrentUser) bool {
	f.refunded = append(f.refunded, bookingID)
	return true
}

type fakeCache struct {
	invalidated []uuid.UUID
}

func (f *fakeCache) Invalidate(_ context.Context, venueID uuid.UUID) {
	f.invalidated = append(f.invalidated, venueID)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:           testBookingID,
		VenueID:      testVenueID,
		VenueOwnerID: testOwnerID,
		UserID:       testUserID,
		Status:       domain.StatusPending,
	}
}

func ownerUser() domain.CurrentUser {
	return domain.CurrentUser{ID: testOwnerID, Scopes: domain.NewScopeSet(domain.ScopeManage)}
}

func customerUser() domain.CurrentUser {
	return domain.CurrentUser{ID: testUserID, Scopes: domain.NewScopeSet(domain.ScopeCancel)}
}

func TestExecuteOwnerConfirms(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking()}
	payments := &fakePaymentClient{}
	cache := &fakeCache{}
	uc := NewUseCase(repo, payments, cache, nopLogger{})

	updated, err := uc.Execute(context.Background(), ownerUser(), testBookingID, domain.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	assert.Equal(t, []uuid.UUID{testVenueID}, cache.invalidated)
	assert.Empty(t, payments.refunded, "confirmation must not trigger a refund")
}

func TestExecuteCustomerSelfCancelSkipsRefund(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking()}
	payments := &fakePaymentClient{}
	cache := &fakeCache{}
	uc := NewUseCase(repo, payments, cache, nopLogger{})

	updated, err := uc.Execute(context.Background(), customerUser(), testBookingID, domain.StatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, updated.Status)
	assert.Empty(t, payments.refunded, "self-cancellation must not trigger a refund")
	assert.Equal(t, []uuid.UUID{testVenueID}, cache.invalidated)
}

func TestExecuteOwnerRefusalTriggersRefund(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking()}
	payments := &fakePaymentClient{}
	uc := NewUseCase(repo, payments, &fakeCache{}, nopLogger{})

	_, err := uc.Execute(context.Background(), ownerUser(), testBookingID, domain.StatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{testBookingID}, payments.refunded)
}

func TestExecuteAdminCancelTriggersRefund(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusConfirmed
	repo := &fakeRepo{booking: booking}
	payments := &fakePaymentClient{}
	uc := NewUseCase(repo, payments, &fakeCache{}, nopLogger{})

	admin := domain.CurrentUser{ID: uuid.New(), Scopes: domain.NewScopeSet(domain.ScopeAdminWrite)}
	_, err := uc.Execute(context.Background(), admin, testBookingID, domain.StatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{testBookingID}, payments.refunded)
}

func TestExecuteInvalidTransition(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusConfirmed
	repo := &fakeRepo{booking: booking}
	uc := NewUseCase(repo, &fakePaymentClient{}, &fakeCache{}, nopLogger{})

	_, err := uc.Execute(context.Background(), ownerUser(), testBookingID, domain.StatusConfirmed)

	var invalidErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &invalidErr)
	assert.ElementsMatch(t,
		[]domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow},
		invalidErr.Allowed)
	assert.Nil(t, repo.updated, "no write on a rejected transition")
}

func TestExecuteForbidden(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking()}
	cache := &fakeCache{}
	uc := NewUseCase(repo, &fakePaymentClient{}, cache, nopLogger{})

	stranger := domain.CurrentUser{ID: uuid.New(), Scopes: domain.NewScopeSet(domain.ScopeCancel)}
	_, err := uc.Execute(context.Background(), stranger, testBookingID, domain.StatusCancelled)

	var forbiddenErr *domain.ForbiddenError
	require.ErrorAs(t, err, &forbiddenErr)
	assert.Nil(t, repo.updated)
	assert.Empty(t, cache.invalidated)
}

func TestExecuteNotFound(t *testing.T) {
	repo := &fakeRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := NewUseCase(repo, &fakePaymentClient{}, &fakeCache{}, nopLogger{})

	_, err := uc.Execute(context.Background(), ownerUser(), testBookingID, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecuteRowVanishedDuringTransition(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking(), updateErr: bookingRepo.ErrBookingNotFound}
	uc := NewUseCase(repo, &fakePaymentClient{}, &fakeCache{}, nopLogger{})

	_, err := uc.Execute(context.Background(), ownerUser(), testBookingID, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
