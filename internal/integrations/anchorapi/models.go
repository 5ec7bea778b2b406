package anchorapi

import (
	"encoding/json"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// Every endpoint wraps its payload in the same envelope
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *envelopeError  `json:"error,omitempty"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ratesResponse struct {
	HourlyRate  float64 `json:"hourly_rate"`
	DailyRate   float64 `json:"daily_rate"`
	WeeklyRate  float64 `json:"weekly_rate"`
	MonthlyRate float64 `json:"monthly_rate"`
}

type sliceResponse struct {
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Remaining int       `json:"remaining"`
	Capacity  int       `json:"capacity"`
}

// BookingSubmission the booking details collected by the wizard
type BookingSubmission struct {
	StartAt  time.Time
	EndAt    time.Time
	Customer domain.Customer
	Vehicle  domain.Vehicle
	Notes    *string
}

type bookingRequest struct {
	StartAt  string          `json:"start_at"`
	EndAt    string          `json:"end_at"`
	Customer customerRequest `json:"customer"`
	Vehicle  vehicleRequest  `json:"vehicle"`
	Notes    *string         `json:"notes,omitempty"`
}

type customerRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        *string `json:"email,omitempty"`
	MobileNumber string  `json:"mobile_number"`
}

type vehicleRequest struct {
	Registration string  `json:"registration"`
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Colour       *string `json:"colour,omitempty"`
}

// BookingResult the created booking as seen by the wizard
type BookingResult struct {
	Reference         string    `json:"reference"`
	Status            string    `json:"status"`
	StartAt           time.Time `json:"start_at"`
	EndAt             time.Time `json:"end_at"`
	EstimatedAmount   float64   `json:"estimated_amount"`
	PayPalApprovalURL *string   `json:"paypal_approval_url,omitempty"`
}

func toBookingRequest(sub BookingSubmission) bookingRequest {
	return bookingRequest{
		StartAt: sub.StartAt.Format(time.RFC3339),
		EndAt:   sub.EndAt.Format(time.RFC3339),
		Customer: customerRequest{
			FirstName:    sub.Customer.FirstName,
			LastName:     sub.Customer.LastName,
			Email:        sub.Customer.Email,
			MobileNumber: sub.Customer.MobileNumber,
		},
		Vehicle: vehicleRequest{
			Registration: sub.Vehicle.Registration,
			Make:         sub.Vehicle.Make,
			Model:        sub.Vehicle.Model,
			Colour:       sub.Vehicle.Colour,
		},
		Notes: sub.Notes,
	}
}
