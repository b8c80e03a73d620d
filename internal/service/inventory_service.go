package service

import (
	"context"

	"github.com/google/uuid"

	"lodgeos/internal/domain"
	"lodgeos/internal/port"
)

// CreateRoomTypeInput is the DTO for creating a tariff class.
type CreateRoomTypeInput struct {
	Name        string  `json:"name" binding:"required"`
	DefaultRate float64 `json:"default_rate" binding:"required,gt=0"`
}

// CreateRoomInput is the DTO for creating a room.
type CreateRoomInput struct {
	RoomNumber string    `json:"room_number" binding:"required"`
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	Status     string    `json:"status"`
}

// InventoryService manages room types and rooms.
type InventoryService interface {
	CreateRoomType(ctx context.Context, input CreateRoomTypeInput) (*domain.RoomType, error)
	ListRoomTypes(ctx context.Context) ([]domain.RoomType, error)
	DeleteRoomType(ctx context.Context, id uuid.UUID) error

	CreateRoom(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	SetRoomStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) error
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type inventoryService struct {
	roomTypeRepo port.RoomTypeRepository
	roomRepo     port.RoomRepository
}

// NewInventoryService creates a new InventoryService implementation.
func NewInventoryService(roomTypeRepo port.RoomTypeRepository, roomRepo port.RoomRepository) InventoryService {
	return &inventoryService{roomTypeRepo: roomTypeRepo, roomRepo: roomRepo}
}

func (s *inventoryService) CreateRoomType(ctx context.Context, input CreateRoomTypeInput) (*domain.RoomType, error) {
	if input.DefaultRate <= 0 {
		return nil, domain.ErrInvalidRate
	}
	roomType := &domain.RoomType{
		Name:        input.Name,
		DefaultRate: input.DefaultRate,
	}
	if err := s.roomTypeRepo.Create(ctx, roomType); err != nil {
		return nil, err
	}
	return roomType, nil
}

func (s *inventoryService) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.roomTypeRepo.List(ctx)
}

func (s *inventoryService) DeleteRoomType(ctx context.Context, id uuid.UUID) error {
	return s.roomTypeRepo.Delete(ctx, id)
}

func (s *inventoryService) CreateRoom(ctx context.Context, input CreateRoomInput) (*domain.Room, error) {
	// The room type must exist; the FK would catch it but this maps to a 404.
	if _, err := s.roomTypeRepo.GetByID(ctx, input.RoomTypeID); err != nil {
		return nil, err
	}

	status := domain.RoomStatus(input.Status)
	if input.Status == "" {
		status = domain.RoomAvailable
	} else if !domain.ValidRoomStatuses[status] {
		return nil, domain.ErrInvalidStatusTransition
	}

	room := &domain.Room{
		RoomNumber: input.RoomNumber,
		RoomTypeID: input.RoomTypeID,
		Status:     status,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *inventoryService) GetRoom(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

func (s *inventoryService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.roomRepo.List(ctx)
}

func (s *inventoryService) SetRoomStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) error {
	if !domain.ValidRoomStatuses[status] {
		return domain.ErrInvalidStatusTransition
	}
	return s.roomRepo.UpdateStatus(ctx, id, status)
}

func (s *inventoryService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return s.roomRepo.Delete(ctx, id)
}
