package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type stubBookingRepo struct {
	bookings []*domain.ParkingBooking
	err      error
}

func (s *stubBookingRepo) GetActiveOverlapping(ctx context.Context, start, end time.Time) ([]*domain.ParkingBooking, error) {
	return s.bookings, s.err
}

func booking(start, end time.Time, status domain.BookingStatus) *domain.ParkingBooking {
	return &domain.ParkingBooking{
		StartAt: start,
		EndAt:   end,
		Status:  status,
	}
}

var windowStart = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func TestGenerateSlices_HourGranularity(t *testing.T) {
	slices := generateSlices(windowStart, windowStart.Add(3*time.Hour), domain.GranularityHour)

	require.Len(t, slices, 3)
	assert.Equal(t, windowStart, slices[0].StartAt)
	assert.Equal(t, windowStart.Add(time.Hour), slices[0].EndAt)
	assert.Equal(t, windowStart.Add(2*time.Hour), slices[2].StartAt)
	assert.Equal(t, windowStart.Add(3*time.Hour), slices[2].EndAt)
}

func TestGenerateSlices_LastSliceClamped(t *testing.T) {
	slices := generateSlices(windowStart, windowStart.Add(90*time.Minute), domain.GranularityHour)

	require.Len(t, slices, 2)
	assert.Equal(t, windowStart.Add(time.Hour), slices[1].StartAt)
	assert.Equal(t, windowStart.Add(90*time.Minute), slices[1].EndAt)
}

func TestGenerateSlices_DayGranularity(t *testing.T) {
	slices := generateSlices(windowStart, windowStart.Add(48*time.Hour), domain.GranularityDay)

	require.Len(t, slices, 2)
	assert.Equal(t, windowStart.Add(24*time.Hour), slices[0].EndAt)
}

func TestFillRemaining_CountsStrictOverlapsOnly(t *testing.T) {
	slices := generateSlices(windowStart, windowStart.Add(2*time.Hour), domain.GranularityHour)

	bookings := []*domain.ParkingBooking{
		// Ends exactly when the first slice starts: not an overlap
		booking(windowStart.Add(-time.Hour), windowStart, domain.StatusConfirmed),
		// Covers the first slice only
		booking(windowStart, windowStart.Add(time.Hour), domain.StatusConfirmed),
		// Covers both slices
		booking(windowStart.Add(30*time.Minute), windowStart.Add(2*time.Hour), domain.StatusConfirmed),
		// Cancelled bookings do not occupy a space
		booking(windowStart, windowStart.Add(2*time.Hour), domain.StatusCancelled),
	}

	fillRemaining(slices, bookings, 30)

	assert.Equal(t, 28, slices[0].Remaining)
	assert.Equal(t, 29, slices[1].Remaining)
	assert.Equal(t, 30, slices[0].Capacity)
}

func TestFillRemaining_FloorsAtZero(t *testing.T) {
	slices := generateSlices(windowStart, windowStart.Add(time.Hour), domain.GranularityHour)

	var bookings []*domain.ParkingBooking
	for i := 0; i < 5; i++ {
		bookings = append(bookings, booking(windowStart, windowStart.Add(time.Hour), domain.StatusConfirmed))
	}

	fillRemaining(slices, bookings, 3)

	assert.Equal(t, 0, slices[0].Remaining)
}

func TestExecute_ReturnsSlicesForWindow(t *testing.T) {
	repo := &stubBookingRepo{
		bookings: []*domain.ParkingBooking{
			booking(windowStart.Add(time.Hour), windowStart.Add(2*time.Hour), domain.StatusConfirmed),
		},
	}
	uc := NewUseCase(repo, 30, stubLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Start: windowStart,
		End:   windowStart.Add(3 * time.Hour),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slices, 3)
	assert.Equal(t, domain.GranularityHour, resp.Granularity, "granularity defaults to hour")
	assert.Equal(t, 30, resp.Slices[0].Remaining)
	assert.Equal(t, 29, resp.Slices[1].Remaining)
	assert.Equal(t, 30, resp.Slices[2].Remaining)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, 30, stubLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Start: windowStart,
		End:   windowStart,
	})

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_UnknownGranularity(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, 30, stubLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Start:       windowStart,
		End:         windowStart.Add(time.Hour),
		Granularity: "fortnight",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
