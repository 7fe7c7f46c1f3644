package domain

import (
	"time"

	"github.com/xm-division/ATC-BookingService/pkg/types"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingType represents the purpose of the session being booked.
type BookingType string

const (
	TypeControlling BookingType = "controlling"
	TypeTraining    BookingType = "training"
	TypeExam        BookingType = "exam"
)

// Booking is a reserved time interval on a position for one calendar day.
// StartTime/EndTime are times of day on Date; overnight spans do not exist.
type Booking struct {
	ID        int64
	UserID    string // VID of the owning member
	Position  string // Position.ID business code, not a surrogate key
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Type      BookingType
	Status    BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the booking still holds its time slot.
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsTerminal reports whether the sweeper will never touch this booking again.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// Overlaps reports whether [b.StartTime, b.EndTime) intersects [start, end).
// Touching intervals do not overlap.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && start.IsBefore(b.EndTime)
}

// DurationHours returns EndTime - StartTime in hours.
// A non-positive span contributes zero rather than a negative figure.
func (b *Booking) DurationHours() float64 {
	minutes, err := b.StartTime.MinutesUntil(b.EndTime)
	if err != nil || minutes <= 0 {
		return 0
	}
	return float64(minutes) / 60.0
}

// BookingUpdate carries the fields of a partial booking edit.
// Nil fields are left untouched.
type BookingUpdate struct {
	Position  *string
	Date      *time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Type      *BookingType
	Status    *BookingStatus
}

// ChangesInterval reports whether the edit moves the booked time slot and
// therefore requires a fresh conflict check.
func (u *BookingUpdate) ChangesInterval() bool {
	return u.Position != nil || u.Date != nil || u.StartTime != nil || u.EndTime != nil
}

// IsEmpty reports whether the update changes nothing.
func (u *BookingUpdate) IsEmpty() bool {
	return u.Position == nil && u.Date == nil && u.StartTime == nil &&
		u.EndTime == nil && u.Type == nil && u.Status == nil
}

// BookingsFilter narrows booking list queries.
type BookingsFilter struct {
	Position *string    // filter by position code
	DateFrom *time.Time // inclusive lower bound on Date
	DateTo   *time.Time // inclusive upper bound on Date
	Status   *BookingStatus
}

// ValidBookingStatus reports whether s is one of the known statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidBookingType reports whether t is one of the known session types.
func ValidBookingType(t BookingType) bool {
	switch t {
	case TypeControlling, TypeTraining, TypeExam:
		return true
	}
	return false
}
