package eventsapi

// InitiateBookingRequest request to start a phone-confirmed event booking
type InitiateBookingRequest struct {
	EventID      string `json:"event_id"`
	MobileNumber string `json:"mobile_number"`
}

// BookingConfirmation response from the events API: the booking is held
// and a confirmation SMS is sent to the customer.
type BookingConfirmation struct {
	Reference string `json:"reference"`
	EventID   string `json:"event_id"`
	SMSSent   bool   `json:"sms_sent"`
}

// ErrorResponse error model from the events API
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
