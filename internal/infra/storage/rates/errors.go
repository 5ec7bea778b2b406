package rates

import "errors"

var (
	// ErrRateCardNotFound is returned when no rate card row exists
	ErrRateCardNotFound = errors.New("storage/rates: rate card not found")

	// ErrBuildQuery is returned when a query cannot be built
	ErrBuildQuery = errors.New("storage/rates: failed to build query")

	// ErrExecQuery is returned when a query fails to execute
	ErrExecQuery = errors.New("storage/rates: failed to execute query")

	// ErrScanRow is returned when a row cannot be scanned
	ErrScanRow = errors.New("storage/rates: failed to scan row")
)
