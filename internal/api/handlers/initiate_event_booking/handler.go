package initiate_event_booking

import (
	"errors"
	"net/http"

	"github.com/peterjohnpitcher/anchor-parking/internal/api/handlers"
	"github.com/peterjohnpitcher/anchor-parking/internal/integrations/eventsapi"
)

const (
	codeEventSoldOut = "EVENT_SOLD_OUT"

	msgInvalidRequestBody = "request body must be valid JSON"
	msgMissingFields      = "event_id and mobile_number are required"
	msgInvalidMobile      = "mobile_number must be a UK mobile number"
	msgEventNotFound      = "event not found"
	msgEventSoldOut       = "this event is sold out"
	msgUpstreamFailed     = "We could not reach the booking system. Please call us on 01753 682707."
)

type Handler struct {
	eventsClient EventsClient
	logger       Logger
}

func NewHandler(eventsClient EventsClient, logger Logger) *Handler {
	return &Handler{
		eventsClient: eventsClient,
		logger:       logger,
	}
}

// Handle POST /api/event-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req InitiateEventBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /event-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidJSON, msgInvalidRequestBody)
		return
	}

	req.normalise()

	if req.EventID == "" || req.MobileNumber == "" {
		h.logger.Warn("POST /event-bookings - Missing fields: event_id=%q", req.EventID)
		handlers.RespondBadRequest(w, handlers.CodeMissingFields, msgMissingFields)
		return
	}

	if !req.validMobile() {
		h.logger.Warn("POST /event-bookings - Invalid mobile number for event_id=%s", req.EventID)
		handlers.RespondBadRequest(w, handlers.CodeValidationError, msgInvalidMobile)
		return
	}

	confirmation, err := h.eventsClient.InitiateBooking(r.Context(), req.EventID, req.MobileNumber)
	if err != nil {
		switch {
		case errors.Is(err, eventsapi.ErrEventNotFound):
			h.logger.Warn("POST /event-bookings - Event not found: event_id=%s", req.EventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, eventsapi.ErrEventSoldOut):
			h.logger.Warn("POST /event-bookings - Event sold out: event_id=%s", req.EventID)
			handlers.RespondConflict(w, codeEventSoldOut, msgEventSoldOut)

		default:
			// Retries are already exhausted by the client at this point
			h.logger.Error("POST /event-bookings - Upstream failed: event_id=%s, error=%v", req.EventID, err)
			handlers.RespondError(w, http.StatusBadGateway, handlers.CodeInternalError, msgUpstreamFailed)
		}
		return
	}

	h.logger.Info("POST /event-bookings - Booking initiated: event_id=%s, reference=%s, sms_sent=%t",
		req.EventID, confirmation.Reference, confirmation.SMSSent)
	handlers.RespondJSON(w, http.StatusCreated, fromConfirmation(confirmation))
}
