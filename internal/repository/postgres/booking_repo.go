package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lodgeos/internal/domain"
	"lodgeos/internal/port"
)

const bookingSelect = `
	SELECT b.*, c.full_name AS customer_name, r.room_number, rt.name AS room_type_name
	FROM bookings b
	JOIN customers c ON c.id = b.customer_id
	JOIN rooms r ON r.id = b.room_id
	JOIN room_types rt ON rt.id = r.room_type_id`

type bookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepo creates a new PostgreSQL-backed BookingRepository.
func NewBookingRepo(db *sqlx.DB) port.BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	booking.ID = uuid.New()
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	query := `INSERT INTO bookings (id, customer_id, room_id, check_in, check_out,
		price_per_night, nights, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID, booking.CustomerID, booking.RoomID, booking.CheckIn, booking.CheckOut,
		booking.PricePerNight, booking.Nights, booking.TotalAmount, booking.Status,
		booking.CreatedAt, booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("bookingRepo.Create: %w", err)
	}
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.GetContext(ctx, &booking, bookingSelect+" WHERE b.id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("bookingRepo.GetByID: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepo) List(ctx context.Context, status domain.BookingStatus, offset, limit int) ([]domain.Booking, int, error) {
	where := ""
	args := []interface{}{}
	if status != "" {
		where = " WHERE b.status = $1"
		args = append(args, status)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM bookings b"+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("bookingRepo.List count: %w", err)
	}

	query := fmt.Sprintf("%s%s ORDER BY b.check_in DESC LIMIT $%d OFFSET $%d",
		bookingSelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var bookings []domain.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("bookingRepo.List: %w", err)
	}
	return bookings, total, nil
}

func (r *bookingRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.SelectContext(ctx, &bookings,
		bookingSelect+" WHERE b.customer_id = $1 ORDER BY b.check_in DESC", customerID)
	if err != nil {
		return nil, fmt.Errorf("bookingRepo.ListByCustomer: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	booking.UpdatedAt = time.Now().UTC()
	query := `UPDATE bookings SET room_id = $1, check_in = $2, check_out = $3,
		price_per_night = $4, nights = $5, total_amount = $6, updated_at = $7
		WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query,
		booking.RoomID, booking.CheckIn, booking.CheckOut,
		booking.PricePerNight, booking.Nights, booking.TotalAmount, booking.UpdatedAt,
		booking.ID)
	if err != nil {
		return fmt.Errorf("bookingRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("bookingRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookingRepo) CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude uuid.UUID) (int, error) {
	// Half-open ranges: a booking ending on a day another starts is no overlap.
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM bookings
		 WHERE room_id = $1
		   AND id <> $2
		   AND status IN ('confirmed', 'checked_in')
		   AND check_in < $4
		   AND check_out > $3`,
		roomID, exclude, checkIn, checkOut)
	if err != nil {
		return 0, fmt.Errorf("bookingRepo.CountOverlapping: %w", err)
	}
	return count, nil
}
