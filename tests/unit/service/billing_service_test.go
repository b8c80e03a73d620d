package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lodgeos/internal/domain"
	"lodgeos/internal/service"
	"lodgeos/mocks"
)

func billingFixtures() (*mocks.MockBillRepo, *mocks.MockBookingRepo, *mocks.MockSettingsRepo, *mocks.MockEmailSender, service.BillingService) {
	billRepo := new(mocks.MockBillRepo)
	bookingRepo := new(mocks.MockBookingRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	emailSender := new(mocks.MockEmailSender)
	svc := service.NewBillingService(billRepo, bookingRepo, customerRepo, settingsRepo, emailSender)
	return billRepo, bookingRepo, settingsRepo, emailSender, svc
}

func checkedOutBooking() *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		RoomID:      uuid.New(),
		Nights:      2,
		TotalAmount: 2000,
		Status:      domain.BookingCheckedOut,
	}
}

func TestBillingService_GenerateForBooking_GSTBill(t *testing.T) {
	billRepo, bookingRepo, settingsRepo, _, svc := billingFixtures()

	booking := checkedOutBooking()
	bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	billRepo.On("GetByBookingID", mock.Anything, booking.ID).Return(nil, domain.ErrNotFound)
	settingsRepo.On("Get", mock.Anything).Return(&domain.LodgeSettings{GSTPercent: 18}, nil)
	billRepo.On("CreateFinalized", mock.Anything, mock.MatchedBy(func(b *domain.Bill) bool {
		return b.Subtotal == 2000.0 && b.GSTAmount == 360.0 && b.TotalAmount == 2360.0 && b.GSTIncluded
	}), domain.SeriesGST).Return(nil)
	billRepo.On("ListPayments", mock.Anything, mock.Anything).Return([]domain.Payment{}, nil)

	detail, err := svc.GenerateForBooking(context.Background(), booking.ID, service.GenerateBillInput{GSTIncluded: true})

	require.NoError(t, err)
	assert.Equal(t, 2360.0, detail.Bill.TotalAmount)
	assert.Equal(t, "INR Two Thousand Three Hundred Sixty Only", detail.AmountInWords)
	billRepo.AssertExpectations(t)
}

func TestBillingService_GenerateForBooking_NonGSTUsesOtherSeries(t *testing.T) {
	billRepo, bookingRepo, settingsRepo, _, svc := billingFixtures()

	booking := checkedOutBooking()
	bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	billRepo.On("GetByBookingID", mock.Anything, booking.ID).Return(nil, domain.ErrNotFound)
	settingsRepo.On("Get", mock.Anything).Return(&domain.LodgeSettings{GSTPercent: 18}, nil)
	billRepo.On("CreateFinalized", mock.Anything, mock.MatchedBy(func(b *domain.Bill) bool {
		return b.GSTAmount == 0.0 && b.TotalAmount == 2000.0 && !b.GSTIncluded
	}), domain.SeriesNonGST).Return(nil)
	billRepo.On("ListPayments", mock.Anything, mock.Anything).Return([]domain.Payment{}, nil)

	_, err := svc.GenerateForBooking(context.Background(), booking.ID, service.GenerateBillInput{GSTIncluded: false})

	require.NoError(t, err)
	billRepo.AssertExpectations(t)
}

func TestBillingService_GenerateForBooking_RejectsConfirmedBooking(t *testing.T) {
	billRepo, bookingRepo, _, _, svc := billingFixtures()

	booking := checkedOutBooking()
	booking.Status = domain.BookingConfirmed
	bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	_, err := svc.GenerateForBooking(context.Background(), booking.ID, service.GenerateBillInput{})

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	billRepo.AssertNotCalled(t, "CreateFinalized", mock.Anything, mock.Anything, mock.Anything)
}

func TestBillingService_GenerateForBooking_SecondBillRejected(t *testing.T) {
	billRepo, bookingRepo, _, _, svc := billingFixtures()

	booking := checkedOutBooking()
	bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	billRepo.On("GetByBookingID", mock.Anything, booking.ID).Return(&domain.Bill{ID: uuid.New()}, nil)

	_, err := svc.GenerateForBooking(context.Background(), booking.ID, service.GenerateBillInput{})

	assert.ErrorIs(t, err, domain.ErrBillAlreadyExists)
	billRepo.AssertNotCalled(t, "CreateFinalized", mock.Anything, mock.Anything, mock.Anything)
}

func TestBillingService_Finalize_DraftOnly(t *testing.T) {
	billRepo, _, _, _, svc := billingFixtures()

	billID := uuid.New()
	billRepo.On("GetByID", mock.Anything, billID).Return(&domain.Bill{ID: billID, Status: domain.BillUnpaid}, nil)

	_, err := svc.Finalize(context.Background(), billID)

	assert.ErrorIs(t, err, domain.ErrBillAlreadyFinalized)
	billRepo.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything, mock.Anything)
}

func TestBillingService_RecordPayment_PartialLeavesUnpaid(t *testing.T) {
	billRepo, _, _, _, svc := billingFixtures()

	billID := uuid.New()
	bill := &domain.Bill{ID: billID, TotalAmount: 2360, Status: domain.BillFinalized}
	billRepo.On("GetByID", mock.Anything, billID).Return(bill, nil)
	billRepo.On("AddPayment", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Amount == 1000.0 && p.Method == "cash"
	})).Return(nil)
	billRepo.On("SumPayments", mock.Anything, billID).Return(1000.0, nil)
	billRepo.On("UpdateStatus", mock.Anything, billID, domain.BillUnpaid).Return(nil)
	billRepo.On("ListPayments", mock.Anything, billID).Return([]domain.Payment{{Amount: 1000}}, nil)

	detail, err := svc.RecordPayment(context.Background(), billID, service.RecordPaymentInput{Amount: 1000, Method: "cash"})

	require.NoError(t, err)
	assert.Equal(t, domain.BillUnpaid, detail.Bill.Status)
	assert.Equal(t, 1000.0, detail.PaidTotal)
	billRepo.AssertExpectations(t)
}

func TestBillingService_RecordPayment_FullSettlesToPaid(t *testing.T) {
	billRepo, _, _, _, svc := billingFixtures()

	billID := uuid.New()
	bill := &domain.Bill{ID: billID, TotalAmount: 2360, Status: domain.BillUnpaid}
	billRepo.On("GetByID", mock.Anything, billID).Return(bill, nil)
	billRepo.On("AddPayment", mock.Anything, mock.Anything).Return(nil)
	billRepo.On("SumPayments", mock.Anything, billID).Return(2360.0, nil)
	billRepo.On("UpdateStatus", mock.Anything, billID, domain.BillPaid).Return(nil)
	billRepo.On("ListPayments", mock.Anything, billID).Return([]domain.Payment{{Amount: 1000}, {Amount: 1360}}, nil)

	detail, err := svc.RecordPayment(context.Background(), billID, service.RecordPaymentInput{Amount: 1360, Method: "upi"})

	require.NoError(t, err)
	assert.Equal(t, domain.BillPaid, detail.Bill.Status)
	billRepo.AssertExpectations(t)
}

func TestBillingService_RecordPayment_RejectsDraftAndBadAmount(t *testing.T) {
	billRepo, _, _, _, svc := billingFixtures()

	draftID := uuid.New()
	billRepo.On("GetByID", mock.Anything, draftID).Return(&domain.Bill{ID: draftID, Status: domain.BillDraft}, nil)
	_, err := svc.RecordPayment(context.Background(), draftID, service.RecordPaymentInput{Amount: 100, Method: "cash"})
	assert.ErrorIs(t, err, domain.ErrBillNotFinalized)

	finalID := uuid.New()
	billRepo.On("GetByID", mock.Anything, finalID).Return(&domain.Bill{ID: finalID, Status: domain.BillFinalized, TotalAmount: 100}, nil)
	_, err = svc.RecordPayment(context.Background(), finalID, service.RecordPaymentInput{Amount: -5, Method: "cash"})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	billRepo.AssertNotCalled(t, "AddPayment", mock.Anything, mock.Anything)
}

func TestBillingService_GenerateForBooking_EmailFailureDoesNotFailBill(t *testing.T) {
	billRepo := new(mocks.MockBillRepo)
	bookingRepo := new(mocks.MockBookingRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	emailSender := new(mocks.MockEmailSender)
	svc := service.NewBillingService(billRepo, bookingRepo, customerRepo, settingsRepo, emailSender)

	booking := checkedOutBooking()
	bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	billRepo.On("GetByBookingID", mock.Anything, booking.ID).Return(nil, domain.ErrNotFound)
	settingsRepo.On("Get", mock.Anything).Return(&domain.LodgeSettings{GSTPercent: 18, Name: "Test Lodge"}, nil)
	billRepo.On("CreateFinalized", mock.Anything, mock.Anything, domain.SeriesGST).Return(nil)
	billRepo.On("ListPayments", mock.Anything, mock.Anything).Return([]domain.Payment{}, nil)
	customerRepo.On("GetByID", mock.Anything, booking.CustomerID).Return(&domain.Customer{ID: booking.CustomerID, FullName: "Guest", Email: "guest@example.com"}, nil)
	emailSender.On("SendInvoiceEmail", mock.Anything, "guest@example.com", mock.Anything).Return(assert.AnError)

	detail, err := svc.GenerateForBooking(context.Background(), booking.ID, service.GenerateBillInput{GSTIncluded: true, SendEmail: true})

	require.NoError(t, err)
	require.NotNil(t, detail.Bill)
	emailSender.AssertExpectations(t)
}
