package create_booking

import (
	"fmt"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
	createBooking "github.com/peterjohnpitcher/anchor-parking/internal/usecase/create_booking"
)

// CreateBookingRequest booking submission body
type CreateBookingRequest struct {
	StartAt  string          `json:"start_at"`
	EndAt    string          `json:"end_at"`
	Customer CustomerRequest `json:"customer"`
	Vehicle  VehicleRequest  `json:"vehicle"`
	Notes    *string         `json:"notes,omitempty"`
}

type CustomerRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        *string `json:"email,omitempty"`
	MobileNumber string  `json:"mobile_number"`
}

type VehicleRequest struct {
	Registration string  `json:"registration"`
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Colour       *string `json:"colour,omitempty"`
}

// CreateBookingResponse the created (or replayed) booking
type CreateBookingResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`

	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	EstimatedAmount float64             `json:"estimated_amount"`
	Breakdown       []BreakdownResponse `json:"breakdown"`

	// Omitted when payment must be completed over the phone
	PayPalApprovalURL *string `json:"paypal_approval_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type BreakdownResponse struct {
	Unit     string  `json:"unit"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
	Subtotal float64 `json:"subtotal"`
}

// missingFields returns the names of required fields that are absent
func (r *CreateBookingRequest) missingFields() []string {
	var missing []string
	if r.StartAt == "" {
		missing = append(missing, "start_at")
	}
	if r.EndAt == "" {
		missing = append(missing, "end_at")
	}
	if r.Customer.FirstName == "" {
		missing = append(missing, "customer.first_name")
	}
	if r.Customer.LastName == "" {
		missing = append(missing, "customer.last_name")
	}
	if r.Customer.MobileNumber == "" {
		missing = append(missing, "customer.mobile_number")
	}
	if r.Vehicle.Registration == "" {
		missing = append(missing, "vehicle.registration")
	}
	return missing
}

// ToUseCaseRequest parses the timestamps and builds the use case request
func (r *CreateBookingRequest) ToUseCaseRequest(idempotencyKey string) (*createBooking.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, fmt.Errorf("invalid start_at: %w", err)
	}

	endAt, err := time.Parse(time.RFC3339, r.EndAt)
	if err != nil {
		return nil, fmt.Errorf("invalid end_at: %w", err)
	}

	return &createBooking.Request{
		StartAt: startAt,
		EndAt:   endAt,
		Customer: domain.Customer{
			FirstName:    r.Customer.FirstName,
			LastName:     r.Customer.LastName,
			Email:        r.Customer.Email,
			MobileNumber: r.Customer.MobileNumber,
		},
		Vehicle: domain.Vehicle{
			Registration: r.Vehicle.Registration,
			Make:         r.Vehicle.Make,
			Model:        r.Vehicle.Model,
			Colour:       r.Vehicle.Colour,
		},
		Notes:          r.Notes,
		IdempotencyKey: idempotencyKey,
	}, nil
}

// FromUseCaseResponse converts the use case result to the HTTP response
func FromUseCaseResponse(result *createBooking.Response) *CreateBookingResponse {
	breakdown := make([]BreakdownResponse, 0, len(result.Breakdown))
	for _, item := range result.Breakdown {
		breakdown = append(breakdown, BreakdownResponse{
			Unit:     string(item.Unit),
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Subtotal: item.Subtotal,
		})
	}

	return &CreateBookingResponse{
		Reference:         result.Reference,
		Status:            result.Status,
		StartAt:           result.StartAt,
		EndAt:             result.EndAt,
		EstimatedAmount:   result.EstimatedAmount,
		Breakdown:         breakdown,
		PayPalApprovalURL: result.PaymentApprovalURL,
		CreatedAt:         result.CreatedAt,
	}
}
