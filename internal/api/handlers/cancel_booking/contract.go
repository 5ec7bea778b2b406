package cancel_booking

import (
	"context"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// BookingsService booking lifecycle operations
type BookingsService interface {
	Cancel(ctx context.Context, reference, reason string) (*domain.ParkingBooking, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
