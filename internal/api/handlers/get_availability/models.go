package get_availability

import (
	"time"

	checkAvailability "github.com/peterjohnpitcher/anchor-parking/internal/usecase/check_availability"
)

// SliceResponse remaining capacity for one slice of the requested window
type SliceResponse struct {
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Remaining int       `json:"remaining"`
	Capacity  int       `json:"capacity"`
}

func fromUseCaseResponse(result *checkAvailability.Response) []SliceResponse {
	slices := make([]SliceResponse, 0, len(result.Slices))
	for _, s := range result.Slices {
		slices = append(slices, SliceResponse{
			StartAt:   s.StartAt,
			EndAt:     s.EndAt,
			Remaining: s.Remaining,
			Capacity:  s.Capacity,
		})
	}
	return slices
}
