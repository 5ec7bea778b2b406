package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
	"github.com/peterjohnpitcher/anchor-parking/pkg/dbmetrics"
	"github.com/peterjohnpitcher/anchor-parking/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"reference",
	"idempotency_key",
	"start_at",
	"end_at",
	"first_name",
	"last_name",
	"email",
	"mobile_number",
	"registration",
	"vehicle_make",
	"vehicle_model",
	"vehicle_colour",
	"notes",
	"status",
	"estimated_amount",
	"breakdown",
	"payment_approval_url",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository persistence for parking bookings
type Repository struct {
	db DBExecutor
}

// NewRepository creates a parking bookings repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new parking booking.
// When the context carries an active transaction (via txmanager) the
// insert runs inside it; the create_booking use case relies on this to
// pair the capacity check and the insert in one serializable unit.
func (r *Repository) Create(ctx context.Context, b *domain.ParkingBooking) (*domain.ParkingBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	breakdown, err := marshalBreakdown(b.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal breakdown: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("parking_bookings").
		Columns(
			"reference",
			"idempotency_key",
			"start_at",
			"end_at",
			"first_name",
			"last_name",
			"email",
			"mobile_number",
			"registration",
			"vehicle_make",
			"vehicle_model",
			"vehicle_colour",
			"notes",
			"status",
			"estimated_amount",
			"breakdown",
		).
		Values(
			b.Reference,
			b.IdempotencyKey,
			b.StartAt,
			b.EndAt,
			b.Customer.FirstName,
			b.Customer.LastName,
			b.Customer.Email,
			b.Customer.MobileNumber,
			b.Vehicle.Registration,
			b.Vehicle.Make,
			b.Vehicle.Model,
			b.Vehicle.Colour,
			b.Notes,
			b.Status,
			b.EstimatedAmount,
			breakdown,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByReference fetches a booking by its public reference
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.ParkingBooking, error) {
	return r.getOne(ctx, squirrel.Eq{"reference": reference})
}

// GetByIdempotencyKey fetches a booking created with the given
// idempotency key, if any. Used to make POST /parking/bookings replays
// return the original booking instead of double-booking.
func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.ParkingBooking, error) {
	return r.getOne(ctx, squirrel.Eq{"idempotency_key": key})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.ParkingBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("parking_bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// GetActiveOverlapping fetches all active bookings whose window truly
// overlaps [start, end). Touching boundaries are not overlaps, so the
// comparison is strict on both sides.
//
// Inside a transaction the rows are locked FOR UPDATE so the capacity
// check and the subsequent insert cannot race with a concurrent booking.
func (r *Repository) GetActiveOverlapping(ctx context.Context, start, end time.Time) ([]*domain.ParkingBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("parking_bookings").
		Where(squirrel.Lt{"start_at": end}).
		Where(squirrel.Gt{"end_at": start}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// SetPaymentApprovalURL stores the payment approval URL for a booking
func (r *Repository) SetPaymentApprovalURL(ctx context.Context, id int64, approvalURL string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_bookings").
		Set("payment_approval_url", approvalURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPaymentApprovalURL - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetPaymentApprovalURL - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetPaymentApprovalURL - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel cancels a booking with a reason
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings scans query results into a slice of bookings
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.ParkingBooking, error) {
	bookings := make([]*domain.ParkingBooking, 0)

	for rows.Next() {
		var b domain.ParkingBooking
		var breakdownRaw []byte
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.Reference,
			&b.IdempotencyKey,
			&b.StartAt,
			&b.EndAt,
			&b.Customer.FirstName,
			&b.Customer.LastName,
			&b.Customer.Email,
			&b.Customer.MobileNumber,
			&b.Vehicle.Registration,
			&b.Vehicle.Make,
			&b.Vehicle.Model,
			&b.Vehicle.Colour,
			&b.Notes,
			&b.Status,
			&b.EstimatedAmount,
			&breakdownRaw,
			&b.PaymentApprovalURL,
			&b.CancellationReason,
			&b.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.Breakdown, err = unmarshalBreakdown(breakdownRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - decode breakdown: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// breakdownItem is the jsonb shape of one pricing line
type breakdownItem struct {
	Unit     string  `json:"unit"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
	Subtotal float64 `json:"subtotal"`
}

func marshalBreakdown(items []domain.BreakdownItem) ([]byte, error) {
	out := make([]breakdownItem, len(items))
	for i, item := range items {
		out[i] = breakdownItem{
			Unit:     string(item.Unit),
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Subtotal: item.Subtotal,
		}
	}
	return json.Marshal(out)
}

func unmarshalBreakdown(raw []byte) ([]domain.BreakdownItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var items []breakdownItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	out := make([]domain.BreakdownItem, len(items))
	for i, item := range items {
		out[i] = domain.BreakdownItem{
			Unit:     domain.Unit(item.Unit),
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Subtotal: item.Subtotal,
		}
	}
	return out, nil
}
