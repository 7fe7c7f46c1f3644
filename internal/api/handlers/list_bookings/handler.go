package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/xm-division/ATC-BookingService/internal/api/handlers"
	"github.com/xm-division/ATC-BookingService/internal/service/bookings"
	"github.com/xm-division/ATC-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidMonth = "month must be an integer between 1 and 12"
	msgInvalidYear  = "year must be an integer"
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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{}

	if position := query.Get("position"); position != "" {
		req.Position = &position
	}

	if monthStr := query.Get("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid month %q", monthStr)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		req.Month = &month
	}

	if yearStr := query.Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid year %q", yearStr)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		req.Year = &year
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
