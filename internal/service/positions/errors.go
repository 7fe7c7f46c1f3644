package positions

import "errors"

var (
	// ErrPositionNotFound is returned when the position does not exist.
	ErrPositionNotFound = errors.New("position not found")

	// ErrPositionExists is returned when creating a duplicate station code.
	ErrPositionExists = errors.New("position id already exists")

	// ErrHasActiveBookings is returned when deleting a position that still
	// holds active bookings.
	ErrHasActiveBookings = errors.New("position has active bookings")

	// ErrInvalidInput is returned on malformed or missing fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected storage failures.
	ErrInternal = errors.New("positions service: internal error")
)
