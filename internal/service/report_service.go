package service

import (
	"context"

	"github.com/google/uuid"

	"lodgeos/internal/billing"
	"lodgeos/internal/domain"
	"lodgeos/internal/port"
)

// RentalReport pairs the filtered detail rows with their aggregate summary.
type RentalReport struct {
	Rows    []domain.RentalReportRow   `json:"rows"`
	Summary domain.RentalReportSummary `json:"summary"`
}

// ReportService produces the rental report over finalized bills.
type ReportService interface {
	RentalReport(ctx context.Context, filters domain.RentalReportFilters) (*RentalReport, error)
}

type reportService struct {
	reportRepo port.ReportRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(reportRepo port.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) RentalReport(ctx context.Context, filters domain.RentalReportFilters) (*RentalReport, error) {
	if filters.DateBasis == "" {
		filters.DateBasis = domain.DateBasisBill
	}
	if !domain.ValidDateBases[filters.DateBasis] {
		return nil, domain.ErrInvalidReportFilter
	}
	if filters.GSTMode == "" {
		filters.GSTMode = domain.GSTModeAll
	}
	if !domain.ValidGSTModes[filters.GSTMode] {
		return nil, domain.ErrInvalidReportFilter
	}

	rows, err := s.reportRepo.RentalRows(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &RentalReport{Rows: rows, Summary: Summarize(rows)}, nil
}

// Summarize reduces report rows to the aggregate block. Revenue and GST sums
// use the stored bill amounts; nothing is recomputed from rates.
func Summarize(rows []domain.RentalReportRow) domain.RentalReportSummary {
	var summary domain.RentalReportSummary
	totalNights := 0
	customers := make(map[uuid.UUID]bool)

	for _, r := range rows {
		summary.TotalBookings++
		summary.TotalRevenue += r.TotalAmount
		if r.GSTIncluded {
			summary.TotalGSTAmount += r.GSTAmount
		} else {
			summary.TotalNonGST += r.TotalAmount
		}
		totalNights += r.Nights
		if r.CustomerID != nil {
			customers[*r.CustomerID] = true
		}
	}

	summary.TotalRevenue = billing.RoundPaise(summary.TotalRevenue)
	summary.TotalGSTAmount = billing.RoundPaise(summary.TotalGSTAmount)
	summary.TotalNonGST = billing.RoundPaise(summary.TotalNonGST)
	if summary.TotalBookings > 0 {
		summary.AverageStayNights = billing.RoundPaise(float64(totalNights) / float64(summary.TotalBookings))
	}
	summary.UniqueCustomers = len(customers)
	return summary
}
