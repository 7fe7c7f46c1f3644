package stats

import "errors"

var (
	// ErrInvalidInput is returned on malformed or missing fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected storage failures.
	ErrInternal = errors.New("stats service: internal error")
)
