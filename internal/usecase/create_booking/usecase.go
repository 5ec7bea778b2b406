package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
	bookingRepo "github.com/peterjohnpitcher/anchor-parking/internal/infra/storage/booking"
	"github.com/peterjohnpitcher/anchor-parking/internal/integrations/payments"
)

const paymentCurrency = "GBP"

// UseCase creates a parking booking: validates and normalises the
// submission, re-checks capacity inside a serializable transaction,
// prices the stay from the current rate card and requests a payment
// approval URL, degrading to a reference-only booking when payments
// are unavailable.
type UseCase struct {
	bookingRepo  BookingRepository
	ratesService RatesService
	payments     PaymentsClient
	txManager    TransactionManager
	capacity     int
	logger       Logger
}

// NewUseCase creates the booking creation use case
func NewUseCase(
	bookingRepo BookingRepository,
	ratesService RatesService,
	paymentsClient PaymentsClient,
	txManager TransactionManager,
	capacity int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		ratesService: ratesService,
		payments:     paymentsClient,
		txManager:    txManager,
		capacity:     capacity,
		logger:       logger,
	}
}

// Execute creates the booking
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate and normalise (phone, registration, idempotency key)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: start=%s, end=%s, registration=%s",
		req.StartAt.Format(time.RFC3339), req.EndAt.Format(time.RFC3339), req.Vehicle.Registration)

	// 2. Price the stay from the current rate card
	rates, err := uc.ratesService.GetCurrent(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get rate card: %v", err)
		return nil, fmt.Errorf("%w: failed to get rate card: %v", ErrInternal, err)
	}

	estimate := domain.EstimateCost(rates, req.StartAt, req.EndAt)
	if estimate == nil {
		// Window already validated, so this indicates a broken rate card
		uc.logger.Error("CreateBooking: estimate unavailable for a valid window")
		return nil, fmt.Errorf("%w: could not price the requested window", ErrInternal)
	}

	var (
		result   *domain.ParkingBooking
		replayed bool
	)

	// 3. Idempotency check, capacity check and insert in one
	// serializable transaction so two concurrent submissions cannot
	// both take the last space.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByIdempotencyKey(txCtx, req.IdempotencyKey)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: idempotency lookup failed: %v", err)
			return fmt.Errorf("%w: idempotency lookup failed: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Info("CreateBooking: idempotent replay, returning booking reference=%s", existing.Reference)
			result = existing
			replayed = true
			return nil
		}

		// Rows are locked FOR UPDATE by the repository inside the tx
		bookings, err := uc.bookingRepo.GetActiveOverlapping(txCtx, req.StartAt, req.EndAt)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		if hour, ok := findFullHour(req.StartAt, req.EndAt, bookings, uc.capacity); ok {
			uc.logger.Warn("CreateBooking: no capacity at %s (%d/%d spaces taken)",
				hour.Format(time.RFC3339), uc.capacity, uc.capacity)
			return ErrCapacityUnavailable
		}

		booking := &domain.ParkingBooking{
			Reference:       newReference(),
			IdempotencyKey:  req.IdempotencyKey,
			StartAt:         req.StartAt,
			EndAt:           req.EndAt,
			Customer:        req.Customer,
			Vehicle:         req.Vehicle,
			Notes:           req.Notes,
			Status:          domain.StatusPendingPayment,
			EstimatedAmount: estimate.Amount,
			Breakdown:       estimate.Breakdown,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. A replayed booking keeps whatever payment state it already has
	if replayed {
		return toResponse(result, replayed), nil
	}

	uc.logger.Info("CreateBooking: created booking id=%d reference=%s amount=%.2f duration=%.1fh",
		result.ID, result.Reference, result.EstimatedAmount, result.DurationHours())

	// 5. Request the payment approval URL. The booking is already
	// committed: a payments failure must not lose it, so any error here
	// degrades to a reference-only response and the customer pays over
	// the phone.
	order, err := uc.payments.CreateOrderWithGracefulDegradation(ctx, payments.CreateOrderRequest{
		Reference:   result.Reference,
		Amount:      result.EstimatedAmount,
		Currency:    paymentCurrency,
		Description: fmt.Sprintf("The Anchor parking %s to %s", result.StartAt.Format("2 Jan 15:04"), result.EndAt.Format("2 Jan 15:04")),
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: booking reference=%s kept without payment link: %v", result.Reference, err)
		return toResponse(result, replayed), nil
	}

	if err := uc.bookingRepo.SetPaymentApprovalURL(ctx, result.ID, order.ApprovalURL); err != nil {
		// The customer still gets the link; only the stored copy is missing
		uc.logger.Error("CreateBooking: failed to store approval URL for booking id=%d: %v", result.ID, err)
	}
	result.PaymentApprovalURL = &order.ApprovalURL

	return toResponse(result, replayed), nil
}

// findFullHour scans the window hour by hour and returns the first hour
// with no remaining capacity. The binding constraint is the scarcest
// hour of the stay, not the average occupancy.
func findFullHour(start, end time.Time, bookings []*domain.ParkingBooking, capacity int) (time.Time, bool) {
	for cursor := start; cursor.Before(end); cursor = cursor.Add(time.Hour) {
		sliceEnd := cursor.Add(time.Hour)
		if sliceEnd.After(end) {
			sliceEnd = end
		}

		occupied := 0
		for _, b := range bookings {
			if b.IsActive() && b.Overlaps(cursor, sliceEnd) {
				occupied++
			}
		}

		if occupied >= capacity {
			return cursor, true
		}
	}

	return time.Time{}, false
}

// newReference generates a short public booking reference
func newReference() string {
	return "ANC-" + strings.ToUpper(uuid.NewString()[:8])
}

func toResponse(b *domain.ParkingBooking, replayed bool) *Response {
	return &Response{
		ID:                 b.ID,
		Reference:          b.Reference,
		StartAt:            b.StartAt,
		EndAt:              b.EndAt,
		Customer:           b.Customer,
		Vehicle:            b.Vehicle,
		Notes:              b.Notes,
		Status:             string(b.Status),
		EstimatedAmount:    b.EstimatedAmount,
		Breakdown:          b.Breakdown,
		PaymentApprovalURL: b.PaymentApprovalURL,
		Replayed:           replayed,
		CreatedAt:          b.CreatedAt,
	}
}
