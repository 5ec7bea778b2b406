package check_availability

import "errors"

var (
	// ErrInvalidInput is returned for missing or malformed parameters
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInvalidRange is returned when the end is not after the start
	ErrInvalidRange = errors.New("check_availability: end must be after start")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("check_availability: internal error")
)
