package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"lodgeos/internal/billing"
	"lodgeos/internal/domain"
	"lodgeos/internal/port"
)

// GenerateBillInput controls invoice generation for a booking.
type GenerateBillInput struct {
	GSTIncluded    bool    `json:"gst_included"`
	DiscountAmount float64 `json:"discount_amount"`
	SendEmail      bool    `json:"send_email"`
}

// CreateManualBillInput is the DTO for a walk-in charge not tied to a stay.
type CreateManualBillInput struct {
	CustomerID     *uuid.UUID `json:"customer_id"`
	Description    string     `json:"description" binding:"required"`
	Subtotal       float64    `json:"subtotal" binding:"required"`
	GSTIncluded    bool       `json:"gst_included"`
	DiscountAmount float64    `json:"discount_amount"`
}

// RecordPaymentInput is the DTO for a payment against a finalized bill.
type RecordPaymentInput struct {
	Amount    float64    `json:"amount" binding:"required"`
	Method    string     `json:"method" binding:"required"`
	Reference string     `json:"reference"`
	PaidAt    *time.Time `json:"paid_at"`
}

// BillDetail is a bill with its payment trail and printable extras.
type BillDetail struct {
	Bill          *domain.Bill     `json:"bill"`
	Payments      []domain.Payment `json:"payments"`
	PaidTotal     float64          `json:"paid_total"`
	AmountInWords string           `json:"amount_in_words"`
}

// BillingService generates, finalizes, and settles bills.
type BillingService interface {
	GenerateForBooking(ctx context.Context, bookingID uuid.UUID, input GenerateBillInput) (*BillDetail, error)
	CreateManual(ctx context.Context, input CreateManualBillInput) (*domain.Bill, error)
	Finalize(ctx context.Context, billID uuid.UUID) (*BillDetail, error)
	GetByID(ctx context.Context, billID uuid.UUID) (*BillDetail, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*BillDetail, error)
	RecordPayment(ctx context.Context, billID uuid.UUID, input RecordPaymentInput) (*BillDetail, error)
}

type billingService struct {
	billRepo     port.BillRepository
	bookingRepo  port.BookingRepository
	customerRepo port.CustomerRepository
	settingsRepo port.SettingsRepository
	emailSender  port.EmailSender
}

// NewBillingService creates a new BillingService implementation.
func NewBillingService(
	billRepo port.BillRepository,
	bookingRepo port.BookingRepository,
	customerRepo port.CustomerRepository,
	settingsRepo port.SettingsRepository,
	emailSender port.EmailSender,
) BillingService {
	return &billingService{
		billRepo:     billRepo,
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		emailSender:  emailSender,
	}
}

// GenerateForBooking builds a finalized invoice from a booking's stored stay.
// The booking must be past confirmation (checked in or out), and at most one
// bill may ever exist per booking.
func (s *billingService) GenerateForBooking(ctx context.Context, bookingID uuid.UUID, input GenerateBillInput) (*BillDetail, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingCheckedIn && booking.Status != domain.BookingCheckedOut {
		return nil, domain.ErrInvalidStatusTransition
	}
	if _, err := s.billRepo.GetByBookingID(ctx, bookingID); err == nil {
		return nil, domain.ErrBillAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	gstPercent := 0.0
	if input.GSTIncluded {
		gstPercent = settings.GSTPercent
	}
	totals, err := billing.ComputeTotals(booking.TotalAmount, gstPercent, input.GSTIncluded, input.DiscountAmount)
	if err != nil {
		return nil, err
	}

	bill := &domain.Bill{
		BookingID:      &booking.ID,
		CustomerID:     &booking.CustomerID,
		Nights:         booking.Nights,
		Subtotal:       totals.Subtotal,
		GSTIncluded:    input.GSTIncluded,
		GSTPercent:     gstPercent,
		GSTAmount:      totals.GSTAmount,
		DiscountAmount: totals.Discount,
		TotalAmount:    totals.Total,
	}
	if err := s.billRepo.CreateFinalized(ctx, bill, domain.SeriesFor(input.GSTIncluded)); err != nil {
		return nil, err
	}

	if input.SendEmail {
		s.sendInvoiceEmail(ctx, bill, settings)
	}
	return s.detail(ctx, bill)
}

func (s *billingService) CreateManual(ctx context.Context, input CreateManualBillInput) (*domain.Bill, error) {
	if input.CustomerID != nil {
		if _, err := s.customerRepo.GetByID(ctx, *input.CustomerID); err != nil {
			return nil, err
		}
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	gstPercent := 0.0
	if input.GSTIncluded {
		gstPercent = settings.GSTPercent
	}
	totals, err := billing.ComputeTotals(input.Subtotal, gstPercent, input.GSTIncluded, input.DiscountAmount)
	if err != nil {
		return nil, err
	}

	bill := &domain.Bill{
		CustomerID:     input.CustomerID,
		Description:    input.Description,
		Subtotal:       totals.Subtotal,
		GSTIncluded:    input.GSTIncluded,
		GSTPercent:     gstPercent,
		GSTAmount:      totals.GSTAmount,
		DiscountAmount: totals.Discount,
		TotalAmount:    totals.Total,
		Status:         domain.BillDraft,
	}
	if err := s.billRepo.CreateDraft(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// Finalize assigns an invoice number to a draft bill, after which the bill is
// immutable.
func (s *billingService) Finalize(ctx context.Context, billID uuid.UUID) (*BillDetail, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill.Status != domain.BillDraft {
		return nil, domain.ErrBillAlreadyFinalized
	}
	if err := s.billRepo.Finalize(ctx, bill, domain.SeriesFor(bill.GSTIncluded)); err != nil {
		return nil, err
	}
	return s.detail(ctx, bill)
}

func (s *billingService) GetByID(ctx context.Context, billID uuid.UUID) (*BillDetail, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, bill)
}

func (s *billingService) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*BillDetail, error) {
	bill, err := s.billRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, bill)
}

// RecordPayment adds a payment and moves the bill to PAID once cumulative
// payments meet the total, UNPAID while they fall short.
func (s *billingService) RecordPayment(ctx context.Context, billID uuid.UUID, input RecordPaymentInput) (*BillDetail, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if !bill.Status.Finalized() {
		return nil, domain.ErrBillNotFinalized
	}
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	paidAt := time.Now().UTC()
	if input.PaidAt != nil {
		paidAt = *input.PaidAt
	}
	payment := &domain.Payment{
		BillID:    bill.ID,
		Amount:    billing.RoundPaise(input.Amount),
		Method:    input.Method,
		Reference: input.Reference,
		PaidAt:    paidAt,
	}
	if err := s.billRepo.AddPayment(ctx, payment); err != nil {
		return nil, err
	}

	paid, err := s.billRepo.SumPayments(ctx, bill.ID)
	if err != nil {
		return nil, err
	}
	next := domain.BillUnpaid
	if billing.Settles(paid, bill.TotalAmount) {
		next = domain.BillPaid
	}
	if next != bill.Status && bill.Status.CanTransition(next) {
		if err := s.billRepo.UpdateStatus(ctx, bill.ID, next); err != nil {
			return nil, err
		}
		bill.Status = next
	}
	return s.detail(ctx, bill)
}

func (s *billingService) detail(ctx context.Context, bill *domain.Bill) (*BillDetail, error) {
	payments, err := s.billRepo.ListPayments(ctx, bill.ID)
	if err != nil {
		return nil, err
	}
	paid := 0.0
	for _, p := range payments {
		paid += p.Amount
	}
	return &BillDetail{
		Bill:          bill,
		Payments:      payments,
		PaidTotal:     billing.RoundPaise(paid),
		AmountInWords: billing.AmountInWords(bill.TotalAmount),
	}, nil
}

// sendInvoiceEmail is best effort: a delivery failure never fails the bill.
func (s *billingService) sendInvoiceEmail(ctx context.Context, bill *domain.Bill, settings *domain.LodgeSettings) {
	if bill.CustomerID == nil {
		return
	}
	customer, err := s.customerRepo.GetByID(ctx, *bill.CustomerID)
	if err != nil || customer.Email == "" {
		return
	}
	err = s.emailSender.SendInvoiceEmail(ctx, customer.Email, port.InvoiceEmail{
		CustomerName:  customer.FullName,
		BillNumber:    bill.BillNumber,
		TotalAmount:   bill.TotalAmount,
		AmountInWords: billing.AmountInWords(bill.TotalAmount),
		LodgeName:     settings.Name,
	})
	if err != nil {
		log.Printf("billingService: invoice email for bill %s failed: %v", bill.BillNumber, err)
	}
}
