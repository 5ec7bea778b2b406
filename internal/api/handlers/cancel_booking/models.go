package cancel_booking

import (
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// CancelBookingRequest optional cancellation details
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelBookingResponse the cancelled booking
type CancelBookingResponse struct {
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
}

func fromDomain(b *domain.ParkingBooking) *CancelBookingResponse {
	return &CancelBookingResponse{
		Reference: b.Reference,
		Status:    string(b.Status),
		StartAt:   b.StartAt,
		EndAt:     b.EndAt,
	}
}
