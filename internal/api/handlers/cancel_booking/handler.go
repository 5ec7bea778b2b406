package cancel_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/peterjohnpitcher/anchor-parking/internal/api/handlers"
	"github.com/peterjohnpitcher/anchor-parking/internal/service/bookings"
)

const (
	msgBookingNotFound = "booking not found"
	msgCannotCancel    = "this booking can no longer be cancelled"

	defaultReason = "cancelled by customer"
)

type Handler struct {
	bookingsService BookingsService
	logger          Logger
}

func NewHandler(bookingsService BookingsService, logger Logger) *Handler {
	return &Handler{
		bookingsService: bookingsService,
		logger:          logger,
	}
}

// Handle DELETE /api/parking/bookings/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	// The body is optional: a bare DELETE cancels with the default reason
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("DELETE /parking/bookings/{reference} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidJSON, "request body must be valid JSON")
		return
	}
	if req.Reason == "" {
		req.Reason = defaultReason
	}

	booking, err := h.bookingsService.Cancel(r.Context(), reference, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /parking/bookings/{reference} - Not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("DELETE /parking/bookings/{reference} - Cannot cancel: reference=%s", reference)
			handlers.RespondConflict(w, handlers.CodeValidationError, msgCannotCancel)

		default:
			h.logger.Error("DELETE /parking/bookings/{reference} - Failed to cancel: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /parking/bookings/{reference} - Booking cancelled: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, fromDomain(booking))
}
