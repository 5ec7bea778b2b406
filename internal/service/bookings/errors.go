package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel is returned when the booking is not cancellable
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("bookings service: internal error")
)
