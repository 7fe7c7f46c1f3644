package userstats

import "errors"

var (
	// ErrStatsNotFound is returned when no stats row exists for the user.
	ErrStatsNotFound = errors.New("userstats.repository: stats not found")

	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("userstats.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails.
	ErrExecQuery = errors.New("userstats.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("userstats.repository: failed to scan row")
)
