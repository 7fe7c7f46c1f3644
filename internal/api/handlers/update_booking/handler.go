package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xm-division/ATC-BookingService/internal/api/handlers"
	"github.com/xm-division/ATC-BookingService/internal/api/middleware"
	updateBooking "github.com/xm-division/ATC-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "booking id must be an integer"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgBookingNotFound    = "booking not found"
	msgPositionNotFound   = "position not found"
	msgPositionInactive   = "position is not open for booking"
	msgTimeConflict       = "the requested interval overlaps an existing booking"
	msgAccessDenied       = "you may not edit this booking"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{id}
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

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, actor.ID, actor.IsStaff)
	if err != nil {
		h.logger.Warn("PATCH /bookings/%d - Failed to parse request: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/%d - Validation failed: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrPositionNotFound):
			h.logger.Warn("PATCH /bookings/%d - Position not found", bookingID)
			handlers.RespondNotFound(w, msgPositionNotFound)

		case errors.Is(err, updateBooking.ErrPositionInactive):
			h.logger.Warn("PATCH /bookings/%d - Position inactive", bookingID)
			handlers.RespondBadRequest(w, msgPositionInactive)

		case errors.Is(err, updateBooking.ErrTimeConflict):
			h.logger.Warn("PATCH /bookings/%d - Time conflict: actor=%s", bookingID, actor.ID)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/%d - Access denied: actor=%s", bookingID, actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /bookings/%d - Failed to update booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d - Booking updated by actor=%s", bookingID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
