package reportexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"lodgeos/internal/domain"
)

const sheetName = "Rental Report"

// WriteXLSX renders the report as an Excel workbook: the detail rows under a
// bold header, followed by a blank line and the summary block.
func WriteXLSX(w io.Writer, rows []domain.RentalReportRow, summary domain.RentalReportSummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("reportexport.WriteXLSX: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("reportexport.WriteXLSX: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("reportexport.WriteXLSX: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("reportexport.WriteXLSX: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("reportexport.WriteXLSX: %w", err)
	}

	for i := range rows {
		r := &rows[i]
		cells := []interface{}{
			r.BillNumber,
			r.BillDate.Format("2006-01-02"),
			r.CustomerName,
			r.RoomNumber,
			r.RoomTypeName,
			formatDate(r.CheckIn),
			formatDate(r.CheckOut),
			r.Nights,
			r.Subtotal,
			formatBool(r.GSTIncluded),
			r.GSTAmount,
			r.Discount,
			r.TotalAmount,
			string(r.Status),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("reportexport.WriteXLSX: %w", err)
		}
	}

	summaryStart := len(rows) + 3
	summaryLines := [][2]interface{}{
		{"Total Bills", summary.TotalBookings},
		{"Total Revenue", summary.TotalRevenue},
		{"Total GST Collected", summary.TotalGSTAmount},
		{"Non-GST Revenue", summary.TotalNonGST},
		{"Average Stay (nights)", summary.AverageStayNights},
		{"Unique Customers", summary.UniqueCustomers},
	}
	for i, line := range summaryLines {
		row := summaryStart + i
		cells := []interface{}{line[0], line[1]}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &cells); err != nil {
			return fmt.Errorf("reportexport.WriteXLSX: %w", err)
		}
	}
	labelCell := fmt.Sprintf("A%d", summaryStart)
	labelEnd := fmt.Sprintf("A%d", summaryStart+len(summaryLines)-1)
	if err := f.SetCellStyle(sheetName, labelCell, labelEnd, headerStyle); err != nil {
		return fmt.Errorf("reportexport.WriteXLSX: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("reportexport.WriteXLSX: %w", err)
	}
	return nil
}
