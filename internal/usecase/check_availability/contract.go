package check_availability

import (
	"context"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// BookingRepository parking bookings repository interface
type BookingRepository interface {
	GetActiveOverlapping(ctx context.Context, start, end time.Time) ([]*domain.ParkingBooking, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
