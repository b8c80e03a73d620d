package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lodgeos/internal/domain"
	"lodgeos/internal/service"
	"lodgeos/mocks"
)

func reportRows() []domain.RentalReportRow {
	repeat := uuid.New()
	other := uuid.New()
	return []domain.RentalReportRow{
		{
			BillNumber:  "TG-000001",
			CustomerID:  &repeat,
			Nights:      2,
			Subtotal:    2000,
			GSTIncluded: true,
			GSTAmount:   360,
			TotalAmount: 2360,
			Status:      domain.BillPaid,
		},
		{
			BillNumber:  "TG-000002",
			CustomerID:  &other,
			Nights:      1,
			Subtotal:    1000,
			GSTIncluded: true,
			GSTAmount:   180,
			TotalAmount: 1180,
			Status:      domain.BillUnpaid,
		},
		{
			BillNumber:  "TC-000001",
			CustomerID:  &repeat,
			Nights:      0,
			Subtotal:    1000,
			GSTIncluded: false,
			TotalAmount: 1000,
			Status:      domain.BillFinalized,
		},
	}
}

func TestSummarize(t *testing.T) {
	summary := service.Summarize(reportRows())

	assert.Equal(t, 3, summary.TotalBookings)
	assert.Equal(t, 4540.0, summary.TotalRevenue)
	assert.Equal(t, 540.0, summary.TotalGSTAmount)
	assert.Equal(t, 1000.0, summary.TotalNonGST)
	assert.Equal(t, 1.0, summary.AverageStayNights)
	assert.Equal(t, 2, summary.UniqueCustomers)
}

func TestSummarize_Empty(t *testing.T) {
	summary := service.Summarize(nil)

	assert.Equal(t, 0, summary.TotalBookings)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.AverageStayNights)
	assert.Equal(t, 0, summary.UniqueCustomers)
}

func TestReportService_RentalReport_DefaultsApplied(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)

	repo.On("RentalRows", mock.Anything, mock.MatchedBy(func(f domain.RentalReportFilters) bool {
		return f.DateBasis == domain.DateBasisBill && f.GSTMode == domain.GSTModeAll
	})).Return(reportRows(), nil)

	report, err := svc.RentalReport(context.Background(), domain.RentalReportFilters{})

	require.NoError(t, err)
	assert.Len(t, report.Rows, 3)
	assert.Equal(t, 4540.0, report.Summary.TotalRevenue)
	repo.AssertExpectations(t)
}

func TestReportService_RentalReport_RejectsBadFilters(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)

	_, err := svc.RentalReport(context.Background(), domain.RentalReportFilters{DateBasis: "booked_at"})
	assert.ErrorIs(t, err, domain.ErrInvalidReportFilter)

	_, err = svc.RentalReport(context.Background(), domain.RentalReportFilters{GSTMode: "maybe"})
	assert.ErrorIs(t, err, domain.ErrInvalidReportFilter)

	repo.AssertNotCalled(t, "RentalRows", mock.Anything, mock.Anything)
}

func TestReportService_RentalReport_CheckInBasisPassedThrough(t *testing.T) {
	repo := new(mocks.MockReportRepo)
	svc := service.NewReportService(repo)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.On("RentalRows", mock.Anything, mock.MatchedBy(func(f domain.RentalReportFilters) bool {
		return f.DateBasis == domain.DateBasisCheckIn && f.From != nil && f.From.Equal(from)
	})).Return([]domain.RentalReportRow{}, nil)

	report, err := svc.RentalReport(context.Background(), domain.RentalReportFilters{
		DateBasis: domain.DateBasisCheckIn,
		From:      &from,
	})

	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	repo.AssertExpectations(t)
}
