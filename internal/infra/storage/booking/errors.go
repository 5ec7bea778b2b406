package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the lookup
	ErrBookingNotFound = errors.New("storage/booking: booking not found")

	// ErrBuildQuery is returned when a query cannot be built
	ErrBuildQuery = errors.New("storage/booking: failed to build query")

	// ErrExecQuery is returned when a query fails to execute
	ErrExecQuery = errors.New("storage/booking: failed to execute query")

	// ErrScanRow is returned when a row cannot be scanned
	ErrScanRow = errors.New("storage/booking: failed to scan row")
)
