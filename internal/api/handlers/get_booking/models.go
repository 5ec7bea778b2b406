package get_booking

import (
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// BookingResponse public view of a booking. Customer contact details
// are not echoed back; the reference is the only lookup key.
type BookingResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`

	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	Registration string `json:"registration"`

	EstimatedAmount float64             `json:"estimated_amount"`
	Breakdown       []BreakdownResponse `json:"breakdown"`

	PayPalApprovalURL *string `json:"paypal_approval_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type BreakdownResponse struct {
	Unit     string  `json:"unit"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
	Subtotal float64 `json:"subtotal"`
}

func fromDomain(b *domain.ParkingBooking) *BookingResponse {
	breakdown := make([]BreakdownResponse, 0, len(b.Breakdown))
	for _, item := range b.Breakdown {
		breakdown = append(breakdown, BreakdownResponse{
			Unit:     string(item.Unit),
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Subtotal: item.Subtotal,
		})
	}

	return &BookingResponse{
		Reference:         b.Reference,
		Status:            string(b.Status),
		StartAt:           b.StartAt,
		EndAt:             b.EndAt,
		Registration:      b.Vehicle.Registration,
		EstimatedAmount:   b.EstimatedAmount,
		Breakdown:         breakdown,
		PayPalApprovalURL: b.PaymentApprovalURL,
		CreatedAt:         b.CreatedAt,
	}
}
