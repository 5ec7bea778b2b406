package bookings

import (
	"context"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// BookingRepository parking bookings repository interface
type BookingRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.ParkingBooking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
