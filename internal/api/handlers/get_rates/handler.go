package get_rates

import (
	"net/http"

	"github.com/peterjohnpitcher/anchor-parking/internal/api/handlers"
)

type Handler struct {
	ratesService RatesService
	logger       Logger
}

func NewHandler(ratesService RatesService, logger Logger) *Handler {
	return &Handler{
		ratesService: ratesService,
		logger:       logger,
	}
}

// Handle GET /api/parking/rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	card, err := h.ratesService.GetCurrent(r.Context())
	if err != nil {
		h.logger.Error("GET /parking/rates - Failed to get rate card: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(card))
}
