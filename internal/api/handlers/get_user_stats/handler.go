package get_user_stats

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/xm-division/ATC-BookingService/internal/api/handlers"
	"github.com/xm-division/ATC-BookingService/internal/api/middleware"
	"github.com/xm-division/ATC-BookingService/internal/service/stats"
)

const msgAccessDenied = "you may only view your own statistics"

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

// Handle GET /api/v1/users/{userId}/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	userID := mux.Vars(r)["userId"]

	// Members see their own figures; staff see anyone's.
	if userID != actor.ID && !actor.IsStaff {
		h.logger.Warn("GET /users/%s/stats - Access denied: actor=%s", userID, actor.ID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.GetUserStats(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrInvalidInput):
			h.logger.Warn("GET /users/%s/stats - Validation failed: %v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /users/%s/stats - Failed to load stats: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
