package set_user_stats

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/xm-division/ATC-BookingService/internal/api/handlers"
	"github.com/xm-division/ATC-BookingService/internal/api/middleware"
	"github.com/xm-division/ATC-BookingService/internal/service/stats"
	"github.com/xm-division/ATC-BookingService/internal/service/stats/models"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/users/{userId}/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	userID := mux.Vars(r)["userId"]

	var req models.SetUserStatsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/%s/stats - Invalid request body: %v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetUserStats(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrInvalidInput):
			h.logger.Warn("PUT /users/%s/stats - Validation failed: %v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /users/%s/stats - Failed to set stats: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/%s/stats - Stats updated by actor=%s", userID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
