package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lodgeos/internal/domain"
	"lodgeos/internal/port"
)

type counterRepo struct {
	db *sqlx.DB
}

// NewCounterRepo creates a new PostgreSQL-backed CounterRepository.
func NewCounterRepo(db *sqlx.DB) port.CounterRepository {
	return &counterRepo{db: db}
}

func (r *counterRepo) List(ctx context.Context) ([]domain.InvoiceCounter, error) {
	var counters []domain.InvoiceCounter
	err := r.db.SelectContext(ctx, &counters,
		"SELECT * FROM invoice_counters ORDER BY series")
	if err != nil {
		return nil, fmt.Errorf("counterRepo.List: %w", err)
	}
	return counters, nil
}

func (r *counterRepo) Get(ctx context.Context, series domain.CounterSeries) (*domain.InvoiceCounter, error) {
	var counter domain.InvoiceCounter
	err := r.db.GetContext(ctx, &counter,
		"SELECT * FROM invoice_counters WHERE series = $1", series)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("counterRepo.Get: %w", err)
	}
	return &counter, nil
}

// SetStartingNumber sets current_number to startingNumber-1 so the next issued
// number is exactly startingNumber. The regression guard lives in the same
// UPDATE as the write, so check and apply are one atomic statement.
func (r *counterRepo) SetStartingNumber(ctx context.Context, series domain.CounterSeries, startingNumber int64, allowRegression bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE invoice_counters SET current_number = $2, updated_at = NOW()
		 WHERE series = $1 AND ($3 OR current_number <= $2)`,
		series, startingNumber-1, allowRegression)
	if err != nil {
		return fmt.Errorf("counterRepo.SetStartingNumber: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		if _, getErr := r.Get(ctx, series); getErr != nil {
			return getErr
		}
		return domain.ErrCounterRegression
	}
	return nil
}
