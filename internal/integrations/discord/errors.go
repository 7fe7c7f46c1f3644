package discord

import "errors"

var (
	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("discord client: internal error")

	// ErrInvalidResponse is returned when the webhook answers with a
	// non-success status.
	ErrInvalidResponse = errors.New("discord client: invalid response")
)
