package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for missing or malformed booking data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidRange is returned when the end is not after the start
	ErrInvalidRange = errors.New("create_booking: end must be after start")

	// ErrCapacityUnavailable is returned when at least one hour of the
	// requested window has no spaces left
	ErrCapacityUnavailable = errors.New("create_booking: no capacity for part of the requested window")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("create_booking: internal error")
)
