package create_booking

import "errors"

var (
	// ErrPositionNotFound is returned when the requested position does not exist
	ErrPositionNotFound = errors.New("create_booking: position not found")

	// ErrPositionInactive is returned when the position exists but is not bookable
	ErrPositionInactive = errors.New("create_booking: position is not active")

	// ErrTimeConflict is returned when the interval overlaps an active booking
	ErrTimeConflict = errors.New("create_booking: time conflict with existing booking")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("create_booking: internal error")
)
