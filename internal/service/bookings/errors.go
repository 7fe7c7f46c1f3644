package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when a member touches someone else's
	// booking without staff rights.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed filters or fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected storage failures.
	ErrInternal = errors.New("bookings service: internal error")
)
