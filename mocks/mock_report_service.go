package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lodgeos/internal/domain"
	"lodgeos/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) RentalReport(ctx context.Context, filters domain.RentalReportFilters) (*service.RentalReport, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RentalReport), args.Error(1)
}
