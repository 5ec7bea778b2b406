package check_availability

import (
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// Request availability query for a parking window
type Request struct {
	Start       time.Time
	End         time.Time
	Granularity domain.Granularity
}

// Response availability slices covering the requested window
type Response struct {
	Start       time.Time
	End         time.Time
	Granularity domain.Granularity
	Slices      []domain.AvailabilitySlice
}
