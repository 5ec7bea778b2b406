package wizard

import "errors"

var (
	// ErrNotReady is returned when Submit is called before the review step
	ErrNotReady = errors.New("wizard: booking is not ready to submit")

	// ErrSubmissionInFlight is returned when a submission is already running
	ErrSubmissionInFlight = errors.New("wizard: submission already in flight")
)
