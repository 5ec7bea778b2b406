package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/pkg/metrics"
)

// DBExecutor is the subset of database/sql used by repositories.
// Implemented by *sql.DB, *sql.Tx and *DB.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type ctxKey int

const txKey ctxKey = iota

// WithTx stores a transaction in the context so repositories pick it up
// through GetExecutor.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor returns the transaction from the context if one is
// active, otherwise the fallback executor.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(*sql.Tx); ok && tx != nil {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether the context carries an active transaction
func IsInTransaction(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey).(*sql.Tx)
	return ok && tx != nil
}

// DB wraps *sql.DB and records query metrics
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap wraps the database with metrics collection
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault wraps the database and starts a background goroutine
// publishing connection pool stats until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectPoolStats(serviceName, stopCh)
	return wrapped
}

// Unwrap returns the underlying *sql.DB (needed by transaction managers)
func (w *DB) Unwrap() *sql.DB {
	return w.db
}

// QueryContext executes a query and records its duration
func (w *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := w.db.QueryContext(ctx, query, args...)
	w.observe("query", start, err)
	return rows, err
}

// QueryRowContext executes a single-row query and records its duration
func (w *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := w.db.QueryRowContext(ctx, query, args...)
	w.observe("query_row", start, nil)
	return row
}

// ExecContext executes a statement and records its duration
func (w *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := w.db.ExecContext(ctx, query, args...)
	w.observe("exec", start, err)
	return result, err
}

func (w *DB) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	w.metrics.DBQueriesTotal.WithLabelValues(operation, status).Inc()
	w.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (w *DB) collectPoolStats(serviceName string, stopCh <-chan struct{}) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := w.db.Stats()
			w.metrics.DBOpenConnections.WithLabelValues(serviceName).Set(float64(stats.OpenConnections))
			w.metrics.DBIdleConnections.WithLabelValues(serviceName).Set(float64(stats.Idle))
			w.metrics.DBInUseConnections.WithLabelValues(serviceName).Set(float64(stats.InUse))
		}
	}
}
