package billing

import (
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords converts the integer rupee value of an amount into words using
// the Indian numbering system (crore/lakh/thousand/hundred), for invoice print
// output. Paise are floored away before conversion.
//
//	AmountInWords(2360) == "INR Two Thousand Three Hundred Sixty Only"
//	AmountInWords(0)    == "INR Zero Only"
func AmountInWords(amount float64) string {
	n := int64(math.Floor(amount))
	if n == 0 {
		return "INR Zero Only"
	}
	return "INR " + numberInWords(n) + " Only"
}

func numberInWords(n int64) string {
	var parts []string
	if n >= 1e7 {
		parts = append(parts, numberInWords(n/1e7), "Crore")
		n %= 1e7
	}
	if n >= 1e5 {
		parts = append(parts, belowHundred(n/1e5), "Lakh")
		n %= 1e5
	}
	if n >= 1000 {
		parts = append(parts, belowHundred(n/1000), "Thousand")
		n %= 1000
	}
	if n >= 100 {
		parts = append(parts, ones[n/100], "Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, belowHundred(n))
	}
	return strings.Join(parts, " ")
}

// belowHundred words a value in [1, 99].
func belowHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}
