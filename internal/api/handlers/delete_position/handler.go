package delete_position

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/xm-division/ATC-BookingService/internal/api/handlers"
	"github.com/xm-division/ATC-BookingService/internal/api/middleware"
	"github.com/xm-division/ATC-BookingService/internal/service/positions"
)

const (
	msgPositionNotFound  = "position not found"
	msgHasActiveBookings = "position has active bookings and cannot be deleted"
)

type Handler struct {
	service PositionsService
	logger  Logger
}

func NewHandler(service PositionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/positions/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	id := mux.Vars(r)["id"]

	err := h.service.Delete(r.Context(), id, actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, positions.ErrPositionNotFound):
			h.logger.Warn("DELETE /positions/%s - Position not found", id)
			handlers.RespondNotFound(w, msgPositionNotFound)

		case errors.Is(err, positions.ErrHasActiveBookings):
			h.logger.Warn("DELETE /positions/%s - Position has active bookings", id)
			handlers.RespondConflict(w, msgHasActiveBookings)

		default:
			h.logger.Error("DELETE /positions/%s - Failed to delete position: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /positions/%s - Position deleted by actor=%s", id, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
