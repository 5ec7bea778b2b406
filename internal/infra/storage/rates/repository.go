package rates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
	"github.com/peterjohnpitcher/anchor-parking/pkg/dbmetrics"
	"github.com/peterjohnpitcher/anchor-parking/pkg/psqlbuilder"
)

// Repository persistence for rate cards.
// Rate cards are append-only: a price change inserts a new row with a
// later effective_from, and the current card is the latest effective one.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a rate card repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCurrent fetches the rate card effective at the given moment
func (r *Repository) GetCurrent(ctx context.Context, at time.Time) (*domain.RateCard, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"hourly_rate",
		"daily_rate",
		"weekly_rate",
		"monthly_rate",
		"effective_from",
	).
		From("rate_cards").
		Where(squirrel.LtOrEq{"effective_from": at}).
		OrderBy("effective_from DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrent - build select query: %v", ErrBuildQuery, err)
	}

	var card domain.RateCard
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&card.HourlyRate,
		&card.DailyRate,
		&card.WeeklyRate,
		&card.MonthlyRate,
		&card.EffectiveFrom,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRateCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrent - scan rate card: %v", ErrScanRow, err)
	}

	return &card, nil
}
