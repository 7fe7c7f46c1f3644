package audit

import "errors"

var (
	// ErrInternal is returned on unexpected storage failures.
	ErrInternal = errors.New("audit service: internal error")
)
