package list_positions

import (
	"net/http"

	"github.com/xm-division/ATC-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/positions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /positions - Failed to list positions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
