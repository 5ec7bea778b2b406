package get_booking

import (
	"context"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// BookingsService booking read operations
type BookingsService interface {
	GetByReference(ctx context.Context, reference string) (*domain.ParkingBooking, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
