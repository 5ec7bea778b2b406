package wizard

import (
	"context"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
	"github.com/peterjohnpitcher/anchor-parking/internal/integrations/anchorapi"
)

// ParkingAPI the parking endpoints the wizard talks to
type ParkingAPI interface {
	GetRates(ctx context.Context) (*domain.RateCard, error)
	CheckAvailability(ctx context.Context, start, end time.Time) ([]domain.AvailabilitySlice, error)
	CreateBooking(ctx context.Context, sub anchorapi.BookingSubmission) (*anchorapi.BookingResult, error)
}

// Navigator sends the customer to an external URL (the PayPal approval
// page)
type Navigator func(url string)

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider time provider interface
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider system clock
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
