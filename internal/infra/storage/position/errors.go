package position

import "errors"

var (
	// ErrPositionNotFound is returned when no position matches the given code.
	ErrPositionNotFound = errors.New("position.repository: position not found")

	// ErrPositionExists is returned on an insert with a duplicate code.
	ErrPositionExists = errors.New("position.repository: position already exists")

	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("position.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails.
	ErrExecQuery = errors.New("position.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("position.repository: failed to scan row")
)
