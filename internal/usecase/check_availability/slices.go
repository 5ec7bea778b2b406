package check_availability

import (
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// generateSlices cuts [start, end) into consecutive slices of the
// granularity's length. The final slice is clamped to the window end,
// so a 90-minute window at hour granularity yields a 60-minute slice
// and a 30-minute one.
func generateSlices(start, end time.Time, granularity domain.Granularity) []domain.AvailabilitySlice {
	step := granularity.Duration()
	slices := make([]domain.AvailabilitySlice, 0)

	for cursor := start; cursor.Before(end); cursor = cursor.Add(step) {
		sliceEnd := cursor.Add(step)
		if sliceEnd.After(end) {
			sliceEnd = end
		}
		slices = append(slices, domain.AvailabilitySlice{
			StartAt: cursor,
			EndAt:   sliceEnd,
		})
	}

	return slices
}

// fillRemaining computes the remaining capacity of each slice from the
// active bookings overlapping the overall window. A booking occupies a
// slice only when the intervals truly overlap: a booking ending exactly
// when a slice starts (or vice versa) does not count.
func fillRemaining(slices []domain.AvailabilitySlice, bookings []*domain.ParkingBooking, capacity int) {
	for i := range slices {
		occupied := countOverlapping(slices[i].StartAt, slices[i].EndAt, bookings)

		remaining := capacity - occupied
		if remaining < 0 {
			remaining = 0
		}

		slices[i].Remaining = remaining
		slices[i].Capacity = capacity
	}
}

// countOverlapping counts active bookings truly overlapping [start, end)
func countOverlapping(start, end time.Time, bookings []*domain.ParkingBooking) int {
	count := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Overlaps(start, end) {
			count++
		}
	}
	return count
}
