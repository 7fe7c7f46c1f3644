package run_cleanup

import (
	"net/http"

	"github.com/xm-division/ATC-BookingService/internal/api/handlers"
)

type Handler struct {
	useCase RunCleanupUseCase
	logger  Logger
}

func NewHandler(useCase RunCleanupUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cleanup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /cleanup - Sweep failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /cleanup - Sweep finished: completed=%d deleted=%d",
		result.Completed, result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
