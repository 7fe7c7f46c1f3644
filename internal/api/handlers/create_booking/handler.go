package create_booking

import (
	"errors"
	"net/http"

	"github.com/xm-division/ATC-BookingService/internal/api/handlers"
	"github.com/xm-division/ATC-BookingService/internal/api/middleware"
	createBooking "github.com/xm-division/ATC-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgPositionNotFound   = "position not found"
	msgPositionInactive   = "position is not open for booking"
	msgTimeConflict       = "the requested interval overlaps an existing booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor.ID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrPositionNotFound):
			h.logger.Warn("POST /bookings - Position not found: %s", req.Position)
			handlers.RespondNotFound(w, msgPositionNotFound)

		case errors.Is(err, createBooking.ErrPositionInactive):
			h.logger.Warn("POST /bookings - Position inactive: %s", req.Position)
			handlers.RespondBadRequest(w, msgPositionInactive)

		case errors.Is(err, createBooking.ErrTimeConflict):
			h.logger.Warn("POST /bookings - Time conflict: user=%s, position=%s", actor.ID, req.Position)
			handlers.RespondConflict(w, msgTimeConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, user=%s, position=%s",
		result.ID, actor.ID, result.Position)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
