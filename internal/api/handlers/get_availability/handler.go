package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/api/handlers"
	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
	checkAvailability "github.com/peterjohnpitcher/anchor-parking/internal/usecase/check_availability"
)

const (
	msgMissingWindow = "start and end query parameters are required"
	msgInvalidDate   = "start and end must be ISO 8601 timestamps"
	msgInvalidRange  = "end must be after start"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/parking/availability?start=...&end=...&granularity=hour|day
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startRaw := query.Get("start")
	endRaw := query.Get("end")
	if startRaw == "" || endRaw == "" {
		h.logger.Warn("GET /parking/availability - Missing window parameters")
		handlers.RespondBadRequest(w, handlers.CodeMissingFields, msgMissingWindow)
		return
	}

	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		h.logger.Warn("GET /parking/availability - Invalid start %q: %v", startRaw, err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)
		return
	}

	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		h.logger.Warn("GET /parking/availability - Invalid end %q: %v", endRaw, err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		Start:       start,
		End:         end,
		Granularity: domain.Granularity(query.Get("granularity")),
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidRange):
			h.logger.Warn("GET /parking/availability - Invalid range: start=%s, end=%s", startRaw, endRaw)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRange, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /parking/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeValidationError, err.Error())

		default:
			h.logger.Error("GET /parking/availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(result))
}
