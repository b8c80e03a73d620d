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

type roomTypeRepo struct {
	db *sqlx.DB
}

// NewRoomTypeRepo creates a new PostgreSQL-backed RoomTypeRepository.
func NewRoomTypeRepo(db *sqlx.DB) port.RoomTypeRepository {
	return &roomTypeRepo{db: db}
}

func (r *roomTypeRepo) Create(ctx context.Context, roomType *domain.RoomType) error {
	roomType.ID = uuid.New()
	roomType.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO room_types (id, name, default_rate, created_at) VALUES ($1, $2, $3, $4)",
		roomType.ID, roomType.Name, roomType.DefaultRate, roomType.CreatedAt)
	if err != nil {
		return fmt.Errorf("roomTypeRepo.Create: %w", err)
	}
	return nil
}

func (r *roomTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoomType, error) {
	var roomType domain.RoomType
	err := r.db.GetContext(ctx, &roomType, "SELECT * FROM room_types WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("roomTypeRepo.GetByID: %w", err)
	}
	return &roomType, nil
}

func (r *roomTypeRepo) List(ctx context.Context) ([]domain.RoomType, error) {
	var roomTypes []domain.RoomType
	err := r.db.SelectContext(ctx, &roomTypes, "SELECT * FROM room_types ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("roomTypeRepo.List: %w", err)
	}
	return roomTypes, nil
}

func (r *roomTypeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM room_types WHERE id = $1", id)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return domain.ErrRoomTypeInUse
		}
		return fmt.Errorf("roomTypeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type roomRepo struct {
	db *sqlx.DB
}

// NewRoomRepo creates a new PostgreSQL-backed RoomRepository.
func NewRoomRepo(db *sqlx.DB) port.RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *domain.Room) error {
	room.ID = uuid.New()
	now := time.Now().UTC()
	room.CreatedAt = now
	room.UpdatedAt = now
	if room.Status == "" {
		room.Status = domain.RoomAvailable
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rooms (id, room_number, room_type_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		room.ID, room.RoomNumber, room.RoomTypeID, room.Status, room.CreatedAt, room.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateRoomNumber
		}
		return fmt.Errorf("roomRepo.Create: %w", err)
	}
	return nil
}

func (r *roomRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	var room domain.Room
	err := r.db.GetContext(ctx, &room,
		`SELECT r.*, rt.name AS room_type_name
		 FROM rooms r JOIN room_types rt ON rt.id = r.room_type_id
		 WHERE r.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("roomRepo.GetByID: %w", err)
	}
	return &room, nil
}

func (r *roomRepo) List(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.SelectContext(ctx, &rooms,
		`SELECT r.*, rt.name AS room_type_name
		 FROM rooms r JOIN room_types rt ON rt.id = r.room_type_id
		 ORDER BY r.room_number`)
	if err != nil {
		return nil, fmt.Errorf("roomRepo.List: %w", err)
	}
	return rooms, nil
}

func (r *roomRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE rooms SET status = $1, updated_at = NOW() WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("roomRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *roomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("roomRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
