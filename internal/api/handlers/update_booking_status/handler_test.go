package update_booking_status

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/middleware"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	transitionBooking "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/usecase/transition_booking"
)

type fakeUseCase struct {
	result *domain.Booking
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, _ domain.CurrentUser, _ uuid.UUID, _ domain.BookingStatus) (*domain.Booking, error) {
	return f.result, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc TransitionBookingUseCase, bookingID, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	router := mux.NewRouter()
	router.Use(middleware.Auth(nopLogger{}))
	router.HandleFunc("/api/v1/bookings/{bookingId}/status", handler.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/status", bytes.NewBufferString(body))
	req.Header.Set("X-User-Id", uuid.NewString())
	req.Header.Set("X-User-Scopes", "bookings:cancel")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	booking := &domain.Booking{
		ID:     uuid.New(),
		Status: domain.StatusConfirmed,
	}
	rec := doRequest(t, &fakeUseCase{result: booking}, booking.ID.String(), `{"status": "confirmed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "confirmed", payload["status"])
}

func TestHandleInvalidTransitionCarriesAllowedList(t *testing.T) {
	err := &domain.InvalidTransitionError{
		From:    domain.StatusConfirmed,
		To:      domain.StatusConfirmed,
		Allowed: domain.AllowedTransitions(domain.StatusConfirmed),
	}
	rec := doRequest(t, &fakeUseCase{err: err}, uuid.NewString(), `{"status": "confirmed"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "completed")
	assert.Contains(t, rec.Body.String(), "cancelled")
	assert.Contains(t, rec.Body.String(), "no_show")
}

func TestHandleForbidden(t *testing.T) {
	err := &domain.ForbiddenError{To: domain.StatusConfirmed, Reason: "not the venue owner"}
	rec := doRequest(t, &fakeUseCase{err: err}, uuid.NewString(), `{"status": "confirmed"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleNotFound(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: transitionBooking.ErrBookingNotFound}, uuid.NewString(), `{"status": "cancelled"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleUnknownStatus(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, uuid.NewString(), `{"status": "refunded"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInvalidBookingID(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "not-a-uuid", `{"status": "confirmed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, uuid.NewString(), `{"status":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
