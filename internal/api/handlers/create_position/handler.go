package create_position

import (
	"errors"
	"net/http"

	"github.com/xm-division/ATC-BookingService/internal/api/handlers"
	"github.com/xm-division/ATC-BookingService/internal/api/middleware"
	"github.com/xm-division/ATC-BookingService/internal/service/positions"
	"github.com/xm-division/ATC-BookingService/internal/service/positions/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgPositionExists     = "position with this id already exists"
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

// Handle POST /api/v1/positions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	var req models.CreatePositionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /positions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.ActorID = actor.ID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, positions.ErrInvalidInput):
			h.logger.Warn("POST /positions - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, positions.ErrPositionExists):
			h.logger.Warn("POST /positions - Duplicate position id=%s", req.ID)
			handlers.RespondConflict(w, msgPositionExists)

		default:
			h.logger.Error("POST /positions - Failed to create position id=%s: %v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /positions - Position created: id=%s by actor=%s", result.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
