// Package reportexport renders the rental report as downloadable files.
package reportexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"lodgeos/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (14 columns).
var columns = []string{
	"Bill Number",
	"Bill Date",
	"Customer",
	"Room",
	"Room Type",
	"Check In",
	"Check Out",
	"Nights",
	"Subtotal",
	"GST Applied",
	"GST Amount",
	"Discount",
	"Total",
	"Status",
}

// Writer wraps csv.Writer for exporting report rows as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRows converts report rows to CSV records and writes them.
func (w *Writer) WriteRows(rows []domain.RentalReportRow) error {
	for i := range rows {
		if err := w.csv.Write(rowToRecord(&rows[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// rowToRecord converts a single report row to a 14-element string slice.
// Manual bills have no booking, so stay columns are left empty.
func rowToRecord(r *domain.RentalReportRow) []string {
	rec := make([]string, len(columns))
	rec[0] = r.BillNumber
	rec[1] = r.BillDate.Format("2006-01-02")
	rec[2] = r.CustomerName
	rec[3] = r.RoomNumber
	rec[4] = r.RoomTypeName
	rec[5] = formatDate(r.CheckIn)
	rec[6] = formatDate(r.CheckOut)
	rec[7] = strconv.Itoa(r.Nights)
	rec[8] = formatMoney(r.Subtotal)
	rec[9] = formatBool(r.GSTIncluded)
	rec[10] = formatMoney(r.GSTAmount)
	rec[11] = formatMoney(r.Discount)
	rec[12] = formatMoney(r.TotalAmount)
	rec[13] = string(r.Status)
	return rec
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// BuildFilename returns the download filename for Content-Disposition.
// Format: rental_report_{YYYY-MM-DD}.{ext}
func BuildFilename(ext string) string {
	return fmt.Sprintf("rental_report_%s.%s", time.Now().Format("2006-01-02"), ext)
}
