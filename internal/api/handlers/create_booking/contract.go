package create_booking

import (
	"context"

	createBooking "github.com/peterjohnpitcher/anchor-parking/internal/usecase/create_booking"
)

// CreateBookingUseCase booking creation use case
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
