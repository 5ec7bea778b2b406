package initiate_event_booking

import (
	"regexp"
	"strings"

	"github.com/peterjohnpitcher/anchor-parking/internal/integrations/eventsapi"
)

// ukMobilePattern matches UK mobile numbers in local or international form
var ukMobilePattern = regexp.MustCompile(`^(\+447\d{9}|07\d{9})$`)

// InitiateEventBookingRequest request to start an event booking
type InitiateEventBookingRequest struct {
	EventID      string `json:"event_id"`
	MobileNumber string `json:"mobile_number"`
}

// InitiateEventBookingResponse the held booking; confirmation happens
// over SMS
type InitiateEventBookingResponse struct {
	Reference string `json:"reference"`
	EventID   string `json:"event_id"`
	SMSSent   bool   `json:"sms_sent"`
}

func (r *InitiateEventBookingRequest) normalise() {
	r.EventID = strings.TrimSpace(r.EventID)
	r.MobileNumber = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(r.MobileNumber)
}

func (r *InitiateEventBookingRequest) validMobile() bool {
	return ukMobilePattern.MatchString(r.MobileNumber)
}

func fromConfirmation(c *eventsapi.BookingConfirmation) *InitiateEventBookingResponse {
	return &InitiateEventBookingResponse{
		Reference: c.Reference,
		EventID:   c.EventID,
		SMSSent:   c.SMSSent,
	}
}
