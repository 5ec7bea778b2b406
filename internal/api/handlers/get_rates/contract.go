package get_rates

import (
	"context"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// RatesService current rate card provider
type RatesService interface {
	GetCurrent(ctx context.Context) (*domain.RateCard, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
