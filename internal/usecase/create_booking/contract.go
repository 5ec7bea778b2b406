package create_booking

import (
	"context"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
	"github.com/peterjohnpitcher/anchor-parking/internal/integrations/payments"
)

// BookingRepository parking bookings repository interface
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.ParkingBooking) (*domain.ParkingBooking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.ParkingBooking, error)
	GetActiveOverlapping(ctx context.Context, start, end time.Time) ([]*domain.ParkingBooking, error)
	SetPaymentApprovalURL(ctx context.Context, id int64, approvalURL string) error
}

// RatesService provider of the current rate card
type RatesService interface {
	GetCurrent(ctx context.Context) (*domain.RateCard, error)
}

// PaymentsClient payments service client interface
type PaymentsClient interface {
	CreateOrderWithGracefulDegradation(ctx context.Context, req payments.CreateOrderRequest) (*payments.Order, error)
}

// TransactionManager serializable transaction runner
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
