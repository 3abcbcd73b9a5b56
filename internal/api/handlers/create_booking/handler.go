package create_booking

import (
	"errors"
	"net/http"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/handlers"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/middleware"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/service/bookings/models"
	createBooking "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody     = "invalid request body"
	msgMissingWriteScope      = "bookings:write scope required"
	msgVenueNotFound          = "venue not found"
	msgVenueNotActive         = "venue is not active"
	msgBookingConflict        = "time slot conflicts with an existing booking"
	msgUnavailabilityConflict = "time slot falls within a venue unavailability"
	msgVenueServiceDown       = "venue service is unavailable"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing identity headers")
		return
	}
	if !user.Scopes.Has(domain.ScopeWrite) && !user.CanAdminWrite() {
		h.logger.Warn("POST /bookings - user %s lacks write scope", user.ID)
		handlers.RespondForbidden(w, msgMissingWriteScope)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), user, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - venue not found: venue_id=%s", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrVenueNotActive):
			h.logger.Warn("POST /bookings - venue not active: venue_id=%s", req.VenueID)
			handlers.RespondUnprocessable(w, msgVenueNotActive)

		case errors.Is(err, createBooking.ErrBookingConflict):
			h.logger.Warn("POST /bookings - booking conflict: venue_id=%s, user_id=%s", req.VenueID, user.ID)
			handlers.RespondConflict(w, msgBookingConflict)

		case errors.Is(err, createBooking.ErrUnavailabilityConflict):
			h.logger.Warn("POST /bookings - unavailability conflict: venue_id=%s, user_id=%s", req.VenueID, user.ID)
			handlers.RespondConflict(w, msgUnavailabilityConflict)

		case errors.Is(err, createBooking.ErrVenueServiceUnavailable):
			h.logger.Error("POST /bookings - venue service unavailable: %v", err)
			handlers.RespondBadGateway(w, msgVenueServiceDown)

		default:
			h.logger.Error("POST /bookings - failed to create booking: user_id=%s, venue_id=%s, error=%v",
				user.ID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: booking_id=%s, user_id=%s, venue_id=%s",
		result.ID, user.ID, result.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(result))
}
