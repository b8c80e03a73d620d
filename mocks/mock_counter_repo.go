package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lodgeos/internal/domain"
)

// MockCounterRepo is a mock implementation of port.CounterRepository.
type MockCounterRepo struct {
	mock.Mock
}

func (m *MockCounterRepo) List(ctx context.Context) ([]domain.InvoiceCounter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceCounter), args.Error(1)
}

func (m *MockCounterRepo) Get(ctx context.Context, series domain.CounterSeries) (*domain.InvoiceCounter, error) {
	args := m.Called(ctx, series)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceCounter), args.Error(1)
}

func (m *MockCounterRepo) SetStartingNumber(ctx context.Context, series domain.CounterSeries, startingNumber int64, allowRegression bool) error {
	args := m.Called(ctx, series, startingNumber, allowRegression)
	return args.Error(0)
}
