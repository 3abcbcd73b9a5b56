package delete_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/handlers"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/middleware"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/service/bookings"
)

const (
	msgInvalidBookingID  = "invalid booking id"
	msgBookingNotFound   = "booking not found"
	msgMissingAdminScope = "admin:bookings:delete scope required"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing identity headers")
		return
	}
	if !user.CanAdminDelete() {
		h.logger.Warn("DELETE /bookings/{id} - user %s lacks admin delete scope", user.ID)
		handlers.RespondForbidden(w, msgMissingAdminScope)
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), user, bookingID); err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("DELETE /bookings/{id} - not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("DELETE /bookings/{id} - failed: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /bookings/{id} - booking %s deleted by user %s", bookingID, user.ID)
	handlers.RespondNoContent(w)
}
