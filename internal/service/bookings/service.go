package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
	bookingRepo "github.com/peterjohnpitcher/anchor-parking/internal/infra/storage/booking"
)

// Service read and lifecycle operations on parking bookings
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the bookings service
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByReference fetches a booking by its public reference
func (s *Service) GetByReference(ctx context.Context, reference string) (*domain.ParkingBooking, error) {
	s.logger.Info("GetByReference: fetching booking reference=%s", reference)

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return booking, nil
}

// Cancel cancels a booking by reference with a reason
func (s *Service) Cancel(ctx context.Context, reference, reason string) (*domain.ParkingBooking, error) {
	s.logger.Info("Cancel: cancelling booking reference=%s", reference)

	booking, err := s.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking reference=%s in status %s cannot be cancelled", reference, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, booking.ID, reason); err != nil {
		s.logger.Error("Cancel: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	booking.CancellationReason = &reason

	s.logger.Info("Cancel: booking reference=%s cancelled", reference)
	return booking, nil
}
