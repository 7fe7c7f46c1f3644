package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xm-division/ATC-BookingService/internal/api/handlers"
	"github.com/xm-division/ATC-BookingService/internal/api/middleware"
	"github.com/xm-division/ATC-BookingService/internal/service/bookings"
	"github.com/xm-division/ATC-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "booking id must be an integer"
	msgBookingNotFound  = "booking not found"
	msgAccessDenied     = "you may not delete this booking"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	err = h.service.Delete(r.Context(), bookingID, &models.DeleteBookingRequest{
		ActorID: actor.ID,
		IsStaff: actor.IsStaff,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/%d - Access denied: actor=%s", bookingID, actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /bookings/%d - Failed to delete booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%d - Booking deleted by actor=%s", bookingID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
