package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lodgeos/internal/domain"
	"lodgeos/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

// RentalRows returns the detail rows for the rental report. Only finalized
// bills are reportable; drafts have no invoice number yet.
func (r *reportRepo) RentalRows(ctx context.Context, filters domain.RentalReportFilters) ([]domain.RentalReportRow, error) {
	query := `
		SELECT
			bl.id AS bill_id,
			bl.bill_number,
			bl.created_at AS bill_date,
			bl.customer_id,
			COALESCE(c.full_name, '') AS customer_name,
			COALESCE(r.room_number, '') AS room_number,
			COALESCE(rt.name, '') AS room_type_name,
			b.check_in,
			b.check_out,
			bl.nights,
			bl.subtotal,
			bl.gst_included,
			bl.gst_amount,
			bl.discount_amount,
			bl.total_amount,
			bl.status
		FROM bills bl
		LEFT JOIN bookings b ON b.id = bl.booking_id
		LEFT JOIN customers c ON c.id = bl.customer_id
		LEFT JOIN rooms r ON r.id = b.room_id
		LEFT JOIN room_types rt ON rt.id = r.room_type_id
		WHERE bl.status <> 'DRAFT'`

	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	dateColumn := map[domain.ReportDateBasis]string{
		domain.DateBasisCheckIn:  "b.check_in",
		domain.DateBasisCheckOut: "b.check_out",
		domain.DateBasisBooking:  "b.created_at",
		domain.DateBasisBill:     "bl.created_at",
	}
	col, ok := dateColumn[filters.DateBasis]
	if !ok {
		col = "bl.created_at"
	}
	if filters.From != nil {
		query += fmt.Sprintf(" AND %s >= %s", col, arg(*filters.From))
	}
	if filters.To != nil {
		query += fmt.Sprintf(" AND %s < %s", col, arg(*filters.To))
	}
	if filters.Customer != "" {
		query += fmt.Sprintf(" AND c.full_name ILIKE %s", arg("%"+filters.Customer+"%"))
	}
	if filters.Room != "" {
		p := arg("%" + filters.Room + "%")
		query += fmt.Sprintf(" AND (r.room_number ILIKE %s OR rt.name ILIKE %s)", p, p)
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND bl.status = %s", arg(filters.Status))
	}
	switch filters.GSTMode {
	case domain.GSTModeGST:
		query += " AND bl.gst_included = true"
	case domain.GSTModeNonGST:
		query += " AND bl.gst_included = false"
	}
	if filters.MinAmount != nil {
		query += fmt.Sprintf(" AND bl.total_amount >= %s", arg(*filters.MinAmount))
	}
	if filters.MaxAmount != nil {
		query += fmt.Sprintf(" AND bl.total_amount <= %s", arg(*filters.MaxAmount))
	}

	query += " ORDER BY bl.created_at DESC"

	var rows []domain.RentalReportRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.RentalRows: %w", err)
	}
	return rows, nil
}
