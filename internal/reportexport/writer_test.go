package reportexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodgeos/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 14)
	assert.Equal(t, "Bill Number", row[0])
	assert.Equal(t, "Status", row[13])
}

func TestWriteRows(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	customerID := uuid.New()

	rows := []domain.RentalReportRow{
		{
			BillID:       uuid.New(),
			BillNumber:   "TG-000042",
			BillDate:     time.Date(2024, 1, 3, 12, 30, 0, 0, time.UTC),
			CustomerID:   &customerID,
			CustomerName: "Asha Rao",
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
		{
			BillID:       uuid.New(),
			BillNumber:   "TC-000007",
			BillDate:     time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
			CustomerName: "Walk-in",
			Subtotal:     500,
			TotalAmount:  500,
			Status:       domain.BillFinalized,
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRows(rows))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "TG-000042", records[1][0])
	assert.Equal(t, "2024-01-03", records[1][1])
	assert.Equal(t, "Asha Rao", records[1][2])
	assert.Equal(t, "2024-01-01", records[1][5])
	assert.Equal(t, "2", records[1][7])
	assert.Equal(t, "Yes", records[1][9])
	assert.Equal(t, "360.00", records[1][10])
	assert.Equal(t, "2360.00", records[1][12])

	// Manual bill with no booking: empty stay columns.
	assert.Equal(t, "TC-000007", records[2][0])
	assert.Equal(t, "", records[2][5])
	assert.Equal(t, "", records[2][6])
	assert.Equal(t, "No", records[2][9])
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("csv")

	assert.Contains(t, name, "rental_report_")
	assert.Contains(t, name, time.Now().Format("2006-01-02"))
	assert.Contains(t, name, ".csv")
}
