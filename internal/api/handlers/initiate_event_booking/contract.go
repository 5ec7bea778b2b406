package initiate_event_booking

import (
	"context"

	"github.com/peterjohnpitcher/anchor-parking/internal/integrations/eventsapi"
)

// EventsClient events booking API client
type EventsClient interface {
	InitiateBooking(ctx context.Context, eventID, mobileNumber string) (*eventsapi.BookingConfirmation, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
