// Package billing holds the pure bill computation rules: stay derivation,
// GST application, total assembly, and amount-in-words formatting for print.
// Every presentation site (preview, persistence, payment comparison) goes
// through this package so the numbers always agree.
package billing

import (
	"math"
	"time"

	"lodgeos/internal/domain"
)

// RoundPaise rounds a currency amount to 2 decimals, half away from zero.
// This is the one rounding rule for every stored and compared amount.
func RoundPaise(v float64) float64 {
	return math.Round(v*100) / 100
}

// Stay is the derived portion of a booking.
type Stay struct {
	Nights   int     `json:"nights"`
	Subtotal float64 `json:"subtotal"`
}

// ComputeStay derives nights and subtotal from a date range and nightly rate.
// Nights is the ceiling of the stay duration in days, never less than 1.
func ComputeStay(checkIn, checkOut time.Time, ratePerNight float64) (Stay, error) {
	if !checkOut.After(checkIn) {
		return Stay{}, domain.ErrInvalidStayDates
	}
	if ratePerNight <= 0 {
		return Stay{}, domain.ErrInvalidRate
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return Stay{
		Nights:   nights,
		Subtotal: RoundPaise(float64(nights) * ratePerNight),
	}, nil
}

// TaxBreakdown is the result of applying (or not applying) GST to a subtotal.
type TaxBreakdown struct {
	GSTAmount float64 `json:"gst_amount"`
	Total     float64 `json:"total"`
}

// ApplyGST computes the tax amount and running total for a subtotal. When
// included is false the subtotal passes through untaxed.
func ApplyGST(subtotal, gstPercent float64, included bool) TaxBreakdown {
	if !included {
		return TaxBreakdown{GSTAmount: 0, Total: RoundPaise(subtotal)}
	}
	gst := RoundPaise(subtotal * gstPercent / 100)
	return TaxBreakdown{
		GSTAmount: gst,
		Total:     RoundPaise(subtotal + gst),
	}
}

// Totals is the full subtotal → tax → discount → total chain of a bill.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	GSTAmount float64 `json:"gst_amount"`
	Discount  float64 `json:"discount_amount"`
	Total     float64 `json:"total_amount"`
}

// ComputeTotals assembles a bill's totals. The invariant held is
// Total == Subtotal + GSTAmount - Discount under RoundPaise.
func ComputeTotals(subtotal, gstPercent float64, gstIncluded bool, discount float64) (Totals, error) {
	if subtotal <= 0 {
		return Totals{}, domain.ErrInvalidAmount
	}
	if gstPercent < 0 || gstPercent > 100 {
		return Totals{}, domain.ErrInvalidGSTPercent
	}
	tb := ApplyGST(subtotal, gstPercent, gstIncluded)
	if discount < 0 || discount > tb.Total {
		return Totals{}, domain.ErrInvalidAmount
	}
	return Totals{
		Subtotal:  RoundPaise(subtotal),
		GSTAmount: tb.GSTAmount,
		Discount:  RoundPaise(discount),
		Total:     RoundPaise(tb.Total - discount),
	}, nil
}

// Settles reports whether cumulative payments meet or exceed a bill total,
// using the same rounding rule as the stored amounts so a fully paid bill
// cannot be stranded just below its total by float drift.
func Settles(paidTotal, billTotal float64) bool {
	return RoundPaise(paidTotal) >= RoundPaise(billTotal)
}
