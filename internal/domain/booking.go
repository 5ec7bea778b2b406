package domain

import "time"

// BookingStatus represents the status of a parking booking
type BookingStatus string

const (
	StatusPendingPayment BookingStatus = "pending_payment"
	StatusConfirmed      BookingStatus = "confirmed"
	StatusCancelled      BookingStatus = "cancelled"
	StatusCompleted      BookingStatus = "completed"
	StatusNoShow         BookingStatus = "no_show"
)

// Customer contact details captured by the booking wizard
type Customer struct {
	FirstName    string
	LastName     string
	Email        *string
	MobileNumber string
}

// Vehicle details for a parked car
type Vehicle struct {
	Registration string
	Make         *string
	Model        *string
	Colour       *string
}

// ParkingBooking represents a paid parking stay at The Anchor car park
type ParkingBooking struct {
	ID             int64
	Reference      string
	IdempotencyKey string

	StartAt time.Time
	EndAt   time.Time

	Customer Customer
	Vehicle  Vehicle
	Notes    *string

	Status BookingStatus

	// Denormalized pricing captured at booking time so later rate card
	// changes never alter what the customer was quoted.
	EstimatedAmount float64
	Breakdown       []BreakdownItem

	PaymentApprovalURL *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies a parking space
func (b *ParkingBooking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *ParkingBooking) CanBeCancelled() bool {
	return b.Status == StatusPendingPayment || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *ParkingBooking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Overlaps reports whether the booking's window truly overlaps
// [start, end). Touching boundaries do not count as overlap.
func (b *ParkingBooking) Overlaps(start, end time.Time) bool {
	return b.StartAt.Before(end) && b.EndAt.After(start)
}

// DurationHours returns the booked duration in (fractional) hours
func (b *ParkingBooking) DurationHours() float64 {
	return b.EndAt.Sub(b.StartAt).Hours()
}
