package retry

import (
	"context"
	"time"
)

// Policy describes how an operation is retried: how many attempts, the
// exponential backoff base and which errors are worth retrying.
// Decoupled from the call site so it can be tested without the network.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	IsRetryable func(error) bool
}

// Backoff returns the delay before the given retry (0-based), doubling
// each time: BaseDelay, 2*BaseDelay, 4*BaseDelay, ...
func (p Policy) Backoff(attempt int) time.Duration {
	return p.BaseDelay << uint(attempt)
}

// Do runs fn, retrying retryable failures with exponential backoff.
// A non-retryable error, a context cancellation or exhausted attempts
// return the last error.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(p.Backoff(attempt - 1))
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if p.IsRetryable == nil || !p.IsRetryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}
