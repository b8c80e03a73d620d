package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lodgeos/internal/domain"
)

// MockRoomTypeRepo is a mock implementation of port.RoomTypeRepository.
type MockRoomTypeRepo struct {
	mock.Mock
}

func (m *MockRoomTypeRepo) Create(ctx context.Context, roomType *domain.RoomType) error {
	args := m.Called(ctx, roomType)
	return args.Error(0)
}

func (m *MockRoomTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoomType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

func (m *MockRoomTypeRepo) List(ctx context.Context) ([]domain.RoomType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomType), args.Error(1)
}

func (m *MockRoomTypeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoomRepo is a mock implementation of port.RoomRepository.
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
