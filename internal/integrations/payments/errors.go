package payments

import "errors"

var (
	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse is returned when the payments service responds
	// with an unexpected status or body
	ErrInvalidResponse = errors.New("payments client: invalid response")

	// ErrOrderRejected is returned when the payments service refuses
	// the order (bad amount, unknown currency)
	ErrOrderRejected = errors.New("payments client: order rejected")

	// ErrServiceDegraded is returned when graceful degradation applies.
	// The booking must stand; the caller falls back to a reference-only
	// response and the customer pays over the phone.
	ErrServiceDegraded = errors.New("payments service unavailable: graceful degradation applied")
)
