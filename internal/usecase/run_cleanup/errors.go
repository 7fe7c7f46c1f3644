package run_cleanup

import "errors"

var (
	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("run_cleanup: internal error")
)
