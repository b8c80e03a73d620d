package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lodgeos/internal/domain"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) RentalRows(ctx context.Context, filters domain.RentalReportFilters) ([]domain.RentalReportRow, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalReportRow), args.Error(1)
}
