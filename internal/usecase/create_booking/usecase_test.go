package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
	bookingRepo "github.com/peterjohnpitcher/anchor-parking/internal/infra/storage/booking"
	"github.com/peterjohnpitcher/anchor-parking/internal/integrations/payments"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// passthroughTxManager runs the function without a real transaction
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	existing    *domain.ParkingBooking
	overlapping []*domain.ParkingBooking

	created     *domain.ParkingBooking
	approvalID  int64
	approvalURL string
	approvalErr error
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.ParkingBooking) (*domain.ParkingBooking, error) {
	booking.ID = 42
	booking.CreatedAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.ParkingBooking, error) {
	if f.existing != nil && f.existing.IdempotencyKey == key {
		return f.existing, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetActiveOverlapping(ctx context.Context, start, end time.Time) ([]*domain.ParkingBooking, error) {
	return f.overlapping, nil
}

func (f *fakeBookingRepo) SetPaymentApprovalURL(ctx context.Context, id int64, approvalURL string) error {
	f.approvalID = id
	f.approvalURL = approvalURL
	return f.approvalErr
}

type fakeRatesService struct {
	card *domain.RateCard
	err  error
}

func (f *fakeRatesService) GetCurrent(ctx context.Context) (*domain.RateCard, error) {
	return f.card, f.err
}

type fakePayments struct {
	order *payments.Order
	err   error
	calls int
}

func (f *fakePayments) CreateOrderWithGracefulDegradation(ctx context.Context, req payments.CreateOrderRequest) (*payments.Order, error) {
	f.calls++
	return f.order, f.err
}

func standardRates() *domain.RateCard {
	return &domain.RateCard{HourlyRate: 5, DailyRate: 40, WeeklyRate: 200, MonthlyRate: 600}
}

func newBookingRequest() *Request {
	return &Request{
		StartAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		Customer: domain.Customer{
			FirstName:    "Sam",
			LastName:     "Hill",
			MobileNumber: "07700 900123",
		},
		Vehicle: domain.Vehicle{Registration: "AB12 CDE"},
	}
}

func newTestUseCase(repo *fakeBookingRepo, pay *fakePayments) *UseCase {
	return NewUseCase(
		repo,
		&fakeRatesService{card: standardRates()},
		pay,
		passthroughTxManager{},
		30,
		nopLogger{},
	)
}

func TestExecute_CreatesBookingWithApprovalURL(t *testing.T) {
	repo := &fakeBookingRepo{}
	pay := &fakePayments{order: &payments.Order{
		ID:          "ORD-1",
		ApprovalURL: "https://paypal.example/approve/ORD-1",
		Status:      "created",
	}}
	uc := newTestUseCase(repo, pay)

	resp, err := uc.Execute(context.Background(), newBookingRequest())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Reference, "ANC-"))
	assert.Len(t, resp.Reference, len("ANC-")+8)
	assert.False(t, resp.Replayed)
	// 4 hours at 5/hour
	assert.InDelta(t, 20.0, resp.EstimatedAmount, 1e-9)
	require.NotNil(t, resp.PaymentApprovalURL)
	assert.Equal(t, "https://paypal.example/approve/ORD-1", *resp.PaymentApprovalURL)
	assert.Equal(t, int64(42), repo.approvalID, "approval URL stored on the booking")

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPendingPayment, repo.created.Status)
	assert.Equal(t, "+447700900123", repo.created.Customer.MobileNumber)
	assert.Equal(t, "AB12CDE", repo.created.Vehicle.Registration)
}

func TestExecute_PaymentsFailureKeepsBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	pay := &fakePayments{err: payments.ErrServiceDegraded}
	uc := newTestUseCase(repo, pay)

	resp, err := uc.Execute(context.Background(), newBookingRequest())

	require.NoError(t, err, "a payments outage must not lose the booking")
	assert.NotEmpty(t, resp.Reference)
	assert.Nil(t, resp.PaymentApprovalURL)
	assert.NotNil(t, repo.created)
}

func TestExecute_CapacityUnavailable(t *testing.T) {
	req := newBookingRequest()

	// Fill every space for one hour in the middle of the stay
	var overlapping []*domain.ParkingBooking
	for i := 0; i < 30; i++ {
		overlapping = append(overlapping, &domain.ParkingBooking{
			StartAt: req.StartAt.Add(time.Hour),
			EndAt:   req.StartAt.Add(2 * time.Hour),
			Status:  domain.StatusConfirmed,
		})
	}

	repo := &fakeBookingRepo{overlapping: overlapping}
	pay := &fakePayments{}
	uc := newTestUseCase(repo, pay)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrCapacityUnavailable)
	assert.Nil(t, repo.created)
	assert.Zero(t, pay.calls, "no payment order for a rejected booking")
}

func TestExecute_BoundaryTouchDoesNotBlock(t *testing.T) {
	req := newBookingRequest()

	// 30 bookings end exactly when the stay starts: no true overlap
	var overlapping []*domain.ParkingBooking
	for i := 0; i < 30; i++ {
		overlapping = append(overlapping, &domain.ParkingBooking{
			StartAt: req.StartAt.Add(-2 * time.Hour),
			EndAt:   req.StartAt,
			Status:  domain.StatusConfirmed,
		})
	}

	repo := &fakeBookingRepo{overlapping: overlapping}
	uc := newTestUseCase(repo, &fakePayments{order: &payments.Order{ApprovalURL: "https://paypal.example/a"}})

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_IdempotentReplay(t *testing.T) {
	req := newBookingRequest()
	req.IdempotencyKey = "replay-key"

	url := "https://paypal.example/approve/old"
	repo := &fakeBookingRepo{existing: &domain.ParkingBooking{
		ID:                 7,
		Reference:          "ANC-OLDBOOK1",
		IdempotencyKey:     "replay-key",
		StartAt:            req.StartAt,
		EndAt:              req.EndAt,
		Status:             domain.StatusPendingPayment,
		EstimatedAmount:    20,
		PaymentApprovalURL: &url,
	}}
	pay := &fakePayments{}
	uc := newTestUseCase(repo, pay)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Replayed)
	assert.Equal(t, "ANC-OLDBOOK1", resp.Reference)
	assert.Nil(t, repo.created, "replay must not insert a second booking")
	assert.Zero(t, pay.calls, "replay must not create a second payment order")
	require.NotNil(t, resp.PaymentApprovalURL)
	assert.Equal(t, url, *resp.PaymentApprovalURL)
}

func TestExecute_RatesServiceFailure(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeRatesService{err: errors.New("db down")},
		&fakePayments{},
		passthroughTxManager{},
		30,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), newBookingRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
