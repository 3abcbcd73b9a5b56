package get_occupied_slots

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/handlers"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/middleware"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/service/bookings/models"
)

const msgInvalidVenueID = "invalid venue id"

type Handler struct {
	useCase GetOccupiedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupiedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/occupied-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetCurrentUser(r.Context()); !ok {
		handlers.RespondUnauthorized(w, "missing identity headers")
		return
	}

	venueID, err := uuid.Parse(mux.Vars(r)["venueId"])
	if err != nil {
		h.logger.Warn("GET /venues/{id}/occupied-slots - invalid venue id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	slots, err := h.useCase.Execute(r.Context(), venueID)
	if err != nil {
		h.logger.Error("GET /venues/{id}/occupied-slots - failed: venue_id=%s, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSlots(slots))
}
