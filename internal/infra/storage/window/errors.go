package window

import "errors"

var (
	// ErrWindowNotFound is returned when the window does not exist
	ErrWindowNotFound = errors.New("window.repository: window not found")

	// ErrNotClaimable is returned when a claim targets a window that is not available
	ErrNotClaimable = errors.New("window.repository: window is not claimable")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("window.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("window.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("window.repository: failed to scan row")
)
