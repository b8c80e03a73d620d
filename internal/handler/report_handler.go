package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lodgeos/internal/domain"
	"lodgeos/internal/reportexport"
	"lodgeos/internal/service"
)

// ReportHandler handles rental report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseReportFilters extracts rental report filter parameters from query params.
func parseReportFilters(c *gin.Context) (domain.RentalReportFilters, error) {
	var filters domain.RentalReportFilters

	if fromStr := c.Query("from"); fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return filters, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
		}
		filters.From = &t
	}
	if toStr := c.Query("to"); toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return filters, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
		}
		// The repository uses a half-open range, so push the bound to the
		// next midnight to keep the whole end date inside it.
		t = t.AddDate(0, 0, 1)
		filters.To = &t
	}

	filters.DateBasis = domain.ReportDateBasis(c.DefaultQuery("date_basis", string(domain.DateBasisBill)))
	filters.Customer = c.Query("customer")
	filters.Room = c.Query("room")
	filters.Status = domain.BillStatus(c.Query("status"))
	filters.GSTMode = domain.ReportGSTMode(c.DefaultQuery("gst_mode", string(domain.GSTModeAll)))

	if minStr := c.Query("min_amount"); minStr != "" {
		v, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return filters, fmt.Errorf("invalid 'min_amount': must be a number")
		}
		filters.MinAmount = &v
	}
	if maxStr := c.Query("max_amount"); maxStr != "" {
		v, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return filters, fmt.Errorf("invalid 'max_amount': must be a number")
		}
		filters.MaxAmount = &v
	}

	return filters, nil
}

// Rental handles GET /api/v1/reports/rental
// @Summary      Rental report
// @Description  Detail rows plus summary for finalized bills matching the filters
// @Tags         reports
// @Produce      json
// @Param        from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param        to query string false "End date (YYYY-MM-DD, inclusive)"
// @Param        date_basis query string false "Date field to filter on" Enums(check_in, check_out, booking_date, bill_date) default(bill_date)
// @Param        customer query string false "Customer name substring"
// @Param        room query string false "Room number substring"
// @Param        status query string false "Bill status filter"
// @Param        gst_mode query string false "GST split" Enums(all, gst, non_gst) default(all)
// @Param        min_amount query number false "Minimum bill total"
// @Param        max_amount query number false "Maximum bill total"
// @Success      200 {object} APIResponse{data=service.RentalReport}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/rental [get]
func (h *ReportHandler) Rental(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.reportService.RentalReport(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// ExportCSV handles GET /api/v1/reports/rental/export/csv
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.reportService.RentalReport(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := reportexport.BuildFilename("csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	// BOM first so Excel on Windows detects UTF-8.
	if _, err := c.Writer.Write(reportexport.BOM); err != nil {
		return
	}
	w := reportexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRows(report.Rows); err != nil {
		return
	}
	w.Flush()
}

// ExportXLSX handles GET /api/v1/reports/rental/export/xlsx
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	report, err := h.reportService.RentalReport(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := reportexport.BuildFilename("xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := reportexport.WriteXLSX(c.Writer, report.Rows, report.Summary); err != nil {
		// Headers are already written; nothing useful left to send.
		_ = c.Error(err)
	}
}
