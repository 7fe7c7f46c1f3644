package audit

import "errors"

var (
	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("audit.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails.
	ErrExecQuery = errors.New("audit.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("audit.repository: failed to scan row")
)
