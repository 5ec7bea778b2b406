package create_booking

import (
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// Request booking submission from the wizard
type Request struct {
	StartAt time.Time
	EndAt   time.Time

	Customer domain.Customer
	Vehicle  domain.Vehicle
	Notes    *string

	// Optional explicit idempotency key (header); derived from the
	// booking details when empty.
	IdempotencyKey string
}

// Response the created (or replayed) booking
type Response struct {
	ID        int64
	Reference string

	StartAt time.Time
	EndAt   time.Time

	Customer domain.Customer
	Vehicle  domain.Vehicle
	Notes    *string

	Status          string
	EstimatedAmount float64
	Breakdown       []domain.BreakdownItem

	// Set when the payments service produced an approval URL; absent
	// when payment must be completed over the phone.
	PaymentApprovalURL *string

	// True when an idempotency-key replay returned an existing booking
	Replayed bool

	CreatedAt time.Time
}
