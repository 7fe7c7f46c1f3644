package create_booking

import (
	"fmt"
	"strings"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	"github.com/xm-division/ATC-BookingService/pkg/types"
)

// validateRequest checks the request fields before touching storage.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Position) == "" {
		return fmt.Errorf("%w: position is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !domain.ValidBookingType(req.Type) {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.Type)
	}

	return validateInterval(req.StartTime, req.EndTime)
}

// validateInterval checks ordering and the minimum session length.
func validateInterval(start, end types.TimeString) error {
	minutes, err := start.MinutesUntil(end)
	if err != nil {
		return fmt.Errorf("%w: failed to compare times: %v", ErrInvalidInput, err)
	}

	if minutes <= 0 {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if minutes < domain.MinBookingDurationMinutes {
		return fmt.Errorf("%w: booking must be at least %d minutes long",
			ErrInvalidInput, domain.MinBookingDurationMinutes)
	}

	return nil
}

// findOverlap returns the first active booking whose [start, end) interval
// intersects the requested one. Touching intervals do not conflict.
func findOverlap(start, end types.TimeString, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Overlaps(start, end) {
			return b
		}
	}
	return nil
}
