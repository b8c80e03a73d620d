package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lodgeos/internal/domain"
	"lodgeos/internal/port"
)

type billRepo struct {
	db *sqlx.DB
}

// NewBillRepo creates a new PostgreSQL-backed BillRepository.
func NewBillRepo(db *sqlx.DB) port.BillRepository {
	return &billRepo{db: db}
}

const billInsert = `INSERT INTO bills (id, booking_id, customer_id, bill_number, description,
	nights, subtotal, gst_included, gst_percent, gst_amount, discount_amount, total_amount,
	status, finalized_at, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

func (r *billRepo) CreateDraft(ctx context.Context, bill *domain.Bill) error {
	bill.ID = uuid.New()
	bill.BillNumber = ""
	bill.Status = domain.BillDraft
	bill.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, billInsert,
		bill.ID, bill.BookingID, bill.CustomerID, nil, bill.Description,
		bill.Nights, bill.Subtotal, bill.GSTIncluded, bill.GSTPercent, bill.GSTAmount,
		bill.DiscountAmount, bill.TotalAmount, bill.Status, nil, bill.CreatedAt)
	if err != nil {
		return fmt.Errorf("billRepo.CreateDraft: %w", err)
	}
	return nil
}

// CreateFinalized issues the next invoice number of the series and inserts the
// bill inside one transaction. The counter UPDATE takes a row lock, so two
// concurrent finalizations serialize on it and can never see the same number.
func (r *billRepo) CreateFinalized(ctx context.Context, bill *domain.Bill, series domain.CounterSeries) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("billRepo.CreateFinalized begin: %w", err)
	}
	defer tx.Rollback()

	number, err := nextNumber(ctx, tx, series)
	if err != nil {
		return err
	}

	bill.ID = uuid.New()
	bill.BillNumber = number
	bill.Status = domain.BillFinalized
	now := time.Now().UTC()
	bill.CreatedAt = now
	bill.FinalizedAt = &now

	_, err = tx.ExecContext(ctx, billInsert,
		bill.ID, bill.BookingID, bill.CustomerID, bill.BillNumber, bill.Description,
		bill.Nights, bill.Subtotal, bill.GSTIncluded, bill.GSTPercent, bill.GSTAmount,
		bill.DiscountAmount, bill.TotalAmount, bill.Status, bill.FinalizedAt, bill.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "bills_booking_id_key") {
			return domain.ErrBillAlreadyExists
		}
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrBillNumberConflict
		}
		return fmt.Errorf("billRepo.CreateFinalized insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("billRepo.CreateFinalized commit: %w", err)
	}
	return nil
}

// Finalize issues a number for an existing draft. The status guard in the
// UPDATE keeps a concurrent double finalization from issuing two numbers to
// the same bill.
func (r *billRepo) Finalize(ctx context.Context, bill *domain.Bill, series domain.CounterSeries) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("billRepo.Finalize begin: %w", err)
	}
	defer tx.Rollback()

	number, err := nextNumber(ctx, tx, series)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := tx.ExecContext(ctx,
		`UPDATE bills SET bill_number = $1, status = $2, finalized_at = $3
		 WHERE id = $4 AND status = $5`,
		number, domain.BillFinalized, now, bill.ID, domain.BillDraft)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrBillNumberConflict
		}
		return fmt.Errorf("billRepo.Finalize update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrBillAlreadyFinalized
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("billRepo.Finalize commit: %w", err)
	}

	bill.BillNumber = number
	bill.Status = domain.BillFinalized
	bill.FinalizedAt = &now
	return nil
}

// nextNumber atomically increments the series counter and formats the issued
// number as {PREFIX}-{6-digit zero-padded integer}.
func nextNumber(ctx context.Context, tx *sqlx.Tx, series domain.CounterSeries) (string, error) {
	var issued struct {
		Prefix        string `db:"prefix"`
		CurrentNumber int64  `db:"current_number"`
	}
	err := tx.GetContext(ctx, &issued,
		`UPDATE invoice_counters SET current_number = current_number + 1, updated_at = NOW()
		 WHERE series = $1
		 RETURNING prefix, current_number`, series)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("billRepo nextNumber: %w", err)
	}
	return fmt.Sprintf("%s-%06d", issued.Prefix, issued.CurrentNumber), nil
}

func (r *billRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error) {
	var bill domain.Bill
	err := r.db.GetContext(ctx, &bill, "SELECT * FROM bills WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("billRepo.GetByID: %w", err)
	}
	return &bill, nil
}

func (r *billRepo) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.Bill, error) {
	var bill domain.Bill
	err := r.db.GetContext(ctx, &bill, "SELECT * FROM bills WHERE booking_id = $1", bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("billRepo.GetByBookingID: %w", err)
	}
	return &bill, nil
}

func (r *billRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := r.db.SelectContext(ctx, &bills,
		"SELECT * FROM bills WHERE customer_id = $1 ORDER BY created_at DESC", customerID)
	if err != nil {
		return nil, fmt.Errorf("billRepo.ListByCustomer: %w", err)
	}
	return bills, nil
}

func (r *billRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BillStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE bills SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("billRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *billRepo) AddPayment(ctx context.Context, payment *domain.Payment) error {
	payment.ID = uuid.New()
	payment.CreatedAt = time.Now().UTC()
	if payment.PaidAt.IsZero() {
		payment.PaidAt = payment.CreatedAt
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (id, bill_id, amount, method, reference, paid_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		payment.ID, payment.BillID, payment.Amount, payment.Method,
		payment.Reference, payment.PaidAt, payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("billRepo.AddPayment: %w", err)
	}
	return nil
}

func (r *billRepo) SumPayments(ctx context.Context, billID uuid.UUID) (float64, error) {
	var sum float64
	err := r.db.GetContext(ctx, &sum,
		"SELECT COALESCE(SUM(amount), 0) FROM payments WHERE bill_id = $1", billID)
	if err != nil {
		return 0, fmt.Errorf("billRepo.SumPayments: %w", err)
	}
	return sum, nil
}

func (r *billRepo) ListPayments(ctx context.Context, billID uuid.UUID) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.SelectContext(ctx, &payments,
		"SELECT * FROM payments WHERE bill_id = $1 ORDER BY paid_at", billID)
	if err != nil {
		return nil, fmt.Errorf("billRepo.ListPayments: %w", err)
	}
	return payments, nil
}
