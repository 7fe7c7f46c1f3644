package update_position

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/xm-division/ATC-BookingService/internal/api/handlers"
	"github.com/xm-division/ATC-BookingService/internal/api/middleware"
	"github.com/xm-division/ATC-BookingService/internal/service/positions"
	"github.com/xm-division/ATC-BookingService/internal/service/positions/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgPositionNotFound   = "position not found"
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

// Handle PATCH /api/v1/positions/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	id := mux.Vars(r)["id"]

	var req models.UpdatePositionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /positions/%s - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.ActorID = actor.ID

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, positions.ErrInvalidInput):
			h.logger.Warn("PATCH /positions/%s - Validation failed: %v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, positions.ErrPositionNotFound):
			h.logger.Warn("PATCH /positions/%s - Position not found", id)
			handlers.RespondNotFound(w, msgPositionNotFound)

		default:
			h.logger.Error("PATCH /positions/%s - Failed to update position: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /positions/%s - Position updated by actor=%s", id, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
