package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/peterjohnpitcher/anchor-parking/internal/api/handlers"
	createBooking "github.com/peterjohnpitcher/anchor-parking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "request body must be valid JSON"
	msgInvalidDate         = "start_at and end_at must be ISO 8601 timestamps"
	msgInvalidRange        = "end_at must be after start_at"
	msgCapacityUnavailable = "The car park is full for part of the requested window. Please pick different times or call 01753 682707."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/parking/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /parking/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidJSON, msgInvalidRequestBody)
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		h.logger.Warn("POST /parking/bookings - Missing fields: %s", strings.Join(missing, ", "))
		handlers.RespondBadRequest(w, handlers.CodeMissingFields,
			"missing required fields: "+strings.Join(missing, ", "))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(idempotencyKey(r))
	if err != nil {
		h.logger.Warn("POST /parking/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrCapacityUnavailable):
			h.logger.Warn("POST /parking/bookings - Capacity unavailable: start=%s, end=%s", req.StartAt, req.EndAt)
			handlers.RespondConflict(w, handlers.CodeCapacityUnavailable, msgCapacityUnavailable)

		case errors.Is(err, createBooking.ErrInvalidRange):
			h.logger.Warn("POST /parking/bookings - Invalid range: start=%s, end=%s", req.StartAt, req.EndAt)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRange, msgInvalidRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /parking/bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeValidationError, err.Error())

		default:
			h.logger.Error("POST /parking/bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Replayed {
		// Idempotent replay of an existing booking
		h.logger.Info("POST /parking/bookings - Booking replayed: reference=%s", result.Reference)
		handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("POST /parking/bookings - Booking created: reference=%s, amount=%.2f",
		result.Reference, result.EstimatedAmount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// idempotencyKey reads the optional client-supplied key. Both header
// spellings are accepted for older wizard builds.
func idempotencyKey(r *http.Request) string {
	if key := r.Header.Get("Idempotency-Key"); key != "" {
		return key
	}
	return r.Header.Get("X-Idempotency-Key")
}
