package domain

import "time"

// Granularity is the slice size used when reporting availability
type Granularity string

const (
	GranularityHour Granularity = "hour"
	GranularityDay  Granularity = "day"
)

// Duration returns the slice length for the granularity
func (g Granularity) Duration() time.Duration {
	if g == GranularityDay {
		return 24 * time.Hour
	}
	return time.Hour
}

// AvailabilitySlice is one sub-interval of a requested window with its
// own remaining-capacity count. The binding constraint for a booking is
// the scarcest slice, not the average.
type AvailabilitySlice struct {
	StartAt   time.Time
	EndAt     time.Time
	Remaining int
	Capacity  int
}

// IsFull returns true if the slice has no spaces left
func (s *AvailabilitySlice) IsFull() bool {
	return s.Remaining <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *AvailabilitySlice) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	occupied := s.Capacity - s.Remaining
	return float64(occupied) / float64(s.Capacity) * 100
}
