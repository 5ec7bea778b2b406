package rates

import (
	"context"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// RateCardRepository rate card repository interface
type RateCardRepository interface {
	GetCurrent(ctx context.Context, at time.Time) (*domain.RateCard, error)
}

// TimeProvider clock interface (swapped out in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
