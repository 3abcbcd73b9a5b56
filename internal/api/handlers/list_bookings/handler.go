package list_bookings

import (
	"net/http"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/handlers"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/middleware"
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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing identity headers")
		return
	}

	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /bookings - invalid filter: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.List(r.Context(), user, filter)
	if err != nil {
		h.logger.Error("GET /bookings - failed: user_id=%s, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
