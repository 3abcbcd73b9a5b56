package update_booking_status

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/handlers"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/middleware"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/service/bookings/models"
	transitionBooking "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/usecase/transition_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgBookingNotFound    = "booking not found"
)

type Handler struct {
	useCase TransitionBookingUseCase
	logger  Logger
}

func NewHandler(useCase TransitionBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing identity headers")
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	target := domain.BookingStatus(req.Status)
	if !target.Valid() {
		h.logger.Warn("PATCH /bookings/{id}/status - invalid status %q", req.Status)
		handlers.RespondBadRequest(w, fmt.Sprintf("invalid status %q", req.Status))
		return
	}

	result, err := h.useCase.Execute(r.Context(), user, bookingID, target)
	if err != nil {
		var invalidErr *domain.InvalidTransitionError
		var forbiddenErr *domain.ForbiddenError
		switch {
		case errors.As(err, &invalidErr):
			h.logger.Warn("PATCH /bookings/{id}/status - invalid transition: booking_id=%s, %v", bookingID, invalidErr)
			handlers.RespondBadRequest(w, invalidErr.Error())

		case errors.As(err, &forbiddenErr):
			h.logger.Warn("PATCH /bookings/{id}/status - forbidden: booking_id=%s, user_id=%s, %v",
				bookingID, user.ID, forbiddenErr)
			handlers.RespondForbidden(w, forbiddenErr.Error())

		case errors.Is(err, transitionBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - booking %s is now %s (by user %s)",
		bookingID, result.Status, user.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(result))
}
