package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "INR Zero Only"},
		{0.99, "INR Zero Only"},
		{1, "INR One Only"},
		{19, "INR Nineteen Only"},
		{40, "INR Forty Only"},
		{65, "INR Sixty Five Only"},
		{100, "INR One Hundred Only"},
		{118, "INR One Hundred Eighteen Only"},
		{2360, "INR Two Thousand Three Hundred Sixty Only"},
		{2360.75, "INR Two Thousand Three Hundred Sixty Only"},
		{55000, "INR Fifty Five Thousand Only"},
		{100000, "INR One Lakh Only"},
		{250500, "INR Two Lakh Fifty Thousand Five Hundred Only"},
		{10000000, "INR One Crore Only"},
		{12345678, "INR One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AmountInWords(tt.amount), "amount %v", tt.amount)
	}
}
