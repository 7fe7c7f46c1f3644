package update_booking

import (
	"fmt"
	"strings"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	"github.com/xm-division/ATC-BookingService/pkg/types"
)

// validateRequest checks the request fields before touching storage.
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ActorID) == "" {
		return fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}

	update := req.toDomainUpdate()
	if update.IsEmpty() {
		return fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}

	if req.Position != nil && strings.TrimSpace(*req.Position) == "" {
		return fmt.Errorf("%w: position must not be empty", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must not be zero", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.Type != nil && !domain.ValidBookingType(*req.Type) {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, *req.Type)
	}

	if req.Status != nil && !domain.ValidBookingStatus(*req.Status) {
		return fmt.Errorf("%w: unknown booking status %q", ErrInvalidInput, *req.Status)
	}

	return nil
}

// validateInterval checks ordering and the minimum session length of the
// effective interval after the edit.
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

// findOverlap returns the first active booking other than excludeID whose
// [start, end) interval intersects the requested one.
func findOverlap(start, end types.TimeString, excludeID int64, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		if !b.IsActive() {
			continue
		}
		if b.Overlaps(start, end) {
			return b
		}
	}
	return nil
}

// buildChanges produces the structured old/new diff for the audit entry.
func buildChanges(old, updated *domain.Booking) map[string]domain.FieldChange {
	changes := make(map[string]domain.FieldChange)

	if old.Position != updated.Position {
		changes["position"] = domain.FieldChange{Old: old.Position, New: updated.Position}
	}
	if !old.Date.Equal(updated.Date) {
		changes["date"] = domain.FieldChange{
			Old: old.Date.Format(domain.DateFormat),
			New: updated.Date.Format(domain.DateFormat),
		}
	}
	if old.StartTime != updated.StartTime {
		changes["startTime"] = domain.FieldChange{Old: old.StartTime.String(), New: updated.StartTime.String()}
	}
	if old.EndTime != updated.EndTime {
		changes["endTime"] = domain.FieldChange{Old: old.EndTime.String(), New: updated.EndTime.String()}
	}
	if old.Type != updated.Type {
		changes["type"] = domain.FieldChange{Old: string(old.Type), New: string(updated.Type)}
	}
	if old.Status != updated.Status {
		changes["status"] = domain.FieldChange{Old: string(old.Status), New: string(updated.Status)}
	}

	return changes
}
