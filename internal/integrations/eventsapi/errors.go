package eventsapi

import (
	"errors"
	"fmt"
)

var (
	// ErrEventNotFound is returned when the event does not exist
	ErrEventNotFound = errors.New("eventsapi client: event not found")

	// ErrEventSoldOut is returned when the event has no seats left
	ErrEventSoldOut = errors.New("eventsapi client: event sold out")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("eventsapi client: internal error")

	// ErrInvalidResponse is returned when the events API responds with
	// an unexpected status or body
	ErrInvalidResponse = errors.New("eventsapi client: invalid response")
)

// StatusError carries the upstream HTTP status so the retry policy can
// distinguish transient 5xx failures from terminal 4xx ones.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("eventsapi client: upstream status %d: %s", e.StatusCode, e.Body)
}

// IsRetryable reports whether an error is worth retrying: upstream 5xx
// responses and transport-level failures (network, timeout) are;
// everything else is terminal.
func IsRetryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	// Transport failures surface wrapped in ErrInternal
	return errors.Is(err, ErrInternal)
}
