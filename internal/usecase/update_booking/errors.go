package update_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrPositionNotFound is returned when the new position does not exist
	ErrPositionNotFound = errors.New("update_booking: position not found")

	// ErrPositionInactive is returned when the new position is not bookable
	ErrPositionInactive = errors.New("update_booking: position is not active")

	// ErrTimeConflict is returned when the moved interval overlaps an active booking
	ErrTimeConflict = errors.New("update_booking: time conflict with existing booking")

	// ErrAccessDenied is returned when the actor may not edit this booking
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("update_booking: internal error")
)
