package check_availability

import (
	"context"
	"fmt"
)

// UseCase reports per-slice remaining capacity for a requested window.
// The caller decides what to do with partial availability; the wizard
// treats the scarcest slice as binding.
type UseCase struct {
	bookingRepo BookingRepository
	capacity    int
	logger      Logger
}

// NewUseCase creates the availability use case. capacity is the total
// number of spaces in the car park.
func NewUseCase(bookingRepo BookingRepository, capacity int, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		capacity:    capacity,
		logger:      logger,
	}
}

// Execute computes availability slices for the requested window
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CheckAvailability: start=%s, end=%s, granularity=%s",
		req.Start.Format("2006-01-02T15:04"), req.End.Format("2006-01-02T15:04"), req.Granularity)

	bookings, err := uc.bookingRepo.GetActiveOverlapping(ctx, req.Start, req.End)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slices := generateSlices(req.Start, req.End, req.Granularity)
	fillRemaining(slices, bookings, uc.capacity)

	uc.logger.Info("CheckAvailability: %d slices, %d overlapping bookings", len(slices), len(bookings))

	return &Response{
		Start:       req.Start,
		End:         req.End,
		Granularity: req.Granularity,
		Slices:      slices,
	}, nil
}
