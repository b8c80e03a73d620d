package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lodgeos/internal/domain"
)

// MockBillRepo is a mock implementation of port.BillRepository.
type MockBillRepo struct {
	mock.Mock
}

func (m *MockBillRepo) CreateDraft(ctx context.Context, bill *domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepo) CreateFinalized(ctx context.Context, bill *domain.Bill, series domain.CounterSeries) error {
	args := m.Called(ctx, bill, series)
	return args.Error(0)
}

func (m *MockBillRepo) Finalize(ctx context.Context, bill *domain.Bill, series domain.CounterSeries) error {
	args := m.Called(ctx, bill, series)
	return args.Error(0)
}

func (m *MockBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepo) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.Bill, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Bill, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BillStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBillRepo) AddPayment(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockBillRepo) SumPayments(ctx context.Context, billID uuid.UUID) (float64, error) {
	args := m.Called(ctx, billID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockBillRepo) ListPayments(ctx context.Context, billID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
