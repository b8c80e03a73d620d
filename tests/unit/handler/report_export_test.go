package handler_test

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lodgeos/internal/domain"
	"lodgeos/internal/handler"
	"lodgeos/internal/reportexport"
	"lodgeos/internal/service"
	"lodgeos/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newReportHandler() (*handler.ReportHandler, *mocks.MockReportService) {
	reportSvc := new(mocks.MockReportService)
	h := handler.NewReportHandler(reportSvc)
	return h, reportSvc
}

func sampleReport() *service.RentalReport {
	customerID := uuid.New()
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	rows := []domain.RentalReportRow{
		{
			BillID:       uuid.New(),
			BillNumber:   "TG-000042",
			BillDate:     time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC),
			CustomerID:   &customerID,
			CustomerName: "Ravi Kumar",
			RoomNumber:   "101",
			RoomTypeName: "Deluxe",
			CheckIn:      &checkIn,
			CheckOut:     &checkOut,
			Nights:       2,
			Subtotal:     2000,
			GSTIncluded:  true,
			GSTAmount:    360,
			TotalAmount:  2360,
			Status:       domain.BillPaid,
		},
	}
	return &service.RentalReport{Rows: rows, Summary: service.Summarize(rows)}
}

func TestReportExportCSV_Success(t *testing.T) {
	h, reportSvc := newReportHandler()

	reportSvc.On("RentalReport", mock.Anything, mock.Anything).Return(sampleReport(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/rental/export/csv", http.NoBody)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "rental_report_")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	// Verify BOM
	body := w.Body.Bytes()
	require.True(t, len(body) >= 3)
	assert.Equal(t, reportexport.BOM, body[:3])

	// Parse CSV (skip BOM)
	r := csv.NewReader(strings.NewReader(string(body[3:])))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2) // header + 1 data row

	assert.Equal(t, "Bill Number", records[0][0])
	assert.Len(t, records[0], 14)

	assert.Equal(t, "TG-000042", records[1][0])
	assert.Equal(t, "Ravi Kumar", records[1][2])
	assert.Equal(t, "2360.00", records[1][12])

	reportSvc.AssertExpectations(t)
}

func TestReportExportCSV_EmptyReport(t *testing.T) {
	h, reportSvc := newReportHandler()

	reportSvc.On("RentalReport", mock.Anything, mock.Anything).
		Return(&service.RentalReport{Rows: []domain.RentalReportRow{}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/rental/export/csv", http.NoBody)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.Bytes()
	require.True(t, len(body) >= 3)

	r := csv.NewReader(strings.NewReader(string(body[3:])))
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1) // header only
}

func TestReportExportCSV_InvalidDate(t *testing.T) {
	h, reportSvc := newReportHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/rental/export/csv?from=yesterday", http.NoBody)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	reportSvc.AssertNotCalled(t, "RentalReport", mock.Anything, mock.Anything)
}

func TestReportRental_ToDateCoversWholeEndDate(t *testing.T) {
	h, reportSvc := newReportHandler()

	// A half-open [from, to) range is handed to the repository, so a bill
	// dated anywhere on the 31st must fall inside the parsed bound.
	wantFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	endOfMonthBill := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)

	reportSvc.On("RentalReport", mock.Anything, mock.MatchedBy(func(f domain.RentalReportFilters) bool {
		return f.From != nil && f.From.Equal(wantFrom) &&
			f.To != nil && f.To.Equal(wantTo) &&
			endOfMonthBill.Before(*f.To) && !endOfMonthBill.Before(*f.From)
	})).Return(&service.RentalReport{Rows: []domain.RentalReportRow{}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/rental?from=2024-01-01&to=2024-01-31", http.NoBody)

	h.Rental(c)

	assert.Equal(t, http.StatusOK, w.Code)
	reportSvc.AssertExpectations(t)
}

func TestReportRental_SingleDayRange(t *testing.T) {
	h, reportSvc := newReportHandler()

	// from == to is a valid one-day window, not an empty one.
	reportSvc.On("RentalReport", mock.Anything, mock.MatchedBy(func(f domain.RentalReportFilters) bool {
		return f.From != nil && f.To != nil && f.To.Sub(*f.From) == 24*time.Hour
	})).Return(&service.RentalReport{Rows: []domain.RentalReportRow{}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/rental?from=2024-03-15&to=2024-03-15", http.NoBody)

	h.Rental(c)

	assert.Equal(t, http.StatusOK, w.Code)
	reportSvc.AssertExpectations(t)
}

func TestReportRental_InvalidFilterMapsTo400(t *testing.T) {
	h, reportSvc := newReportHandler()

	reportSvc.On("RentalReport", mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidReportFilter)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/rental?date_basis=booked_at", http.NoBody)

	h.Rental(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_REPORT_FILTER", resp.Error.Code)
	reportSvc.AssertExpectations(t)
}
