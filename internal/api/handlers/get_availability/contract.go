package get_availability

import (
	"context"

	checkAvailability "github.com/peterjohnpitcher/anchor-parking/internal/usecase/check_availability"
)

// CheckAvailabilityUseCase availability query use case
type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
