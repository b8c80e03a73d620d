package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lodgeos/internal/domain"
	"lodgeos/internal/service"
	"lodgeos/mocks"
)

func bookingFixtures() (*mocks.MockBookingRepo, *mocks.MockRoomRepo, *mocks.MockCustomerRepo, service.BookingService) {
	bookingRepo := new(mocks.MockBookingRepo)
	roomRepo := new(mocks.MockRoomRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	svc := service.NewBookingService(bookingRepo, roomRepo, customerRepo)
	return bookingRepo, roomRepo, customerRepo, svc
}

func TestBookingService_Create_DerivesNightsAndTotal(t *testing.T) {
	bookingRepo, roomRepo, customerRepo, svc := bookingFixtures()

	customerID := uuid.New()
	roomID := uuid.New()
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	customerRepo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)
	roomRepo.On("GetByID", mock.Anything, roomID).Return(&domain.Room{ID: roomID, RoomNumber: "101"}, nil)
	bookingRepo.On("CountOverlapping", mock.Anything, roomID, checkIn, checkOut, uuid.Nil).Return(0, nil)
	bookingRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Nights == 2 && b.TotalAmount == 2000.0 && b.Status == domain.BookingConfirmed
	})).Return(nil)

	booking, err := svc.Create(context.Background(), service.CreateBookingInput{
		CustomerID:    customerID,
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PricePerNight: 1000,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, booking.Nights)
	assert.Equal(t, 2000.0, booking.TotalAmount)
	bookingRepo.AssertExpectations(t)
}

func TestBookingService_Create_RejectsOverlap(t *testing.T) {
	bookingRepo, roomRepo, customerRepo, svc := bookingFixtures()

	customerID := uuid.New()
	roomID := uuid.New()
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	customerRepo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)
	roomRepo.On("GetByID", mock.Anything, roomID).Return(&domain.Room{ID: roomID}, nil)
	bookingRepo.On("CountOverlapping", mock.Anything, roomID, checkIn, checkOut, uuid.Nil).Return(1, nil)

	_, err := svc.Create(context.Background(), service.CreateBookingInput{
		CustomerID:    customerID,
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PricePerNight: 1000,
	})

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_Create_RejectsInvertedDates(t *testing.T) {
	_, roomRepo, customerRepo, svc := bookingFixtures()

	customerID := uuid.New()
	roomID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)
	roomRepo.On("GetByID", mock.Anything, roomID).Return(&domain.Room{ID: roomID}, nil)

	_, err := svc.Create(context.Background(), service.CreateBookingInput{
		CustomerID:    customerID,
		RoomID:        roomID,
		CheckIn:       time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PricePerNight: 1000,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidStayDates)
}

func TestBookingService_CheckIn_OccupiesRoom(t *testing.T) {
	bookingRepo, roomRepo, _, svc := bookingFixtures()

	bookingID := uuid.New()
	roomID := uuid.New()
	booking := &domain.Booking{ID: bookingID, RoomID: roomID, Status: domain.BookingConfirmed}

	bookingRepo.On("GetByID", mock.Anything, bookingID).Return(booking, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, bookingID, domain.BookingCheckedIn).Return(nil)
	roomRepo.On("UpdateStatus", mock.Anything, roomID, domain.RoomOccupied).Return(nil)

	updated, err := svc.Transition(context.Background(), bookingID, domain.BookingCheckedIn)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedIn, updated.Status)
	roomRepo.AssertExpectations(t)
}

func TestBookingService_CheckOut_FreesRoom(t *testing.T) {
	bookingRepo, roomRepo, _, svc := bookingFixtures()

	bookingID := uuid.New()
	roomID := uuid.New()
	booking := &domain.Booking{ID: bookingID, RoomID: roomID, Status: domain.BookingCheckedIn}

	bookingRepo.On("GetByID", mock.Anything, bookingID).Return(booking, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, bookingID, domain.BookingCheckedOut).Return(nil)
	roomRepo.On("UpdateStatus", mock.Anything, roomID, domain.RoomAvailable).Return(nil)

	updated, err := svc.Transition(context.Background(), bookingID, domain.BookingCheckedOut)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedOut, updated.Status)
	roomRepo.AssertExpectations(t)
}

func TestBookingService_Transition_RejectsIllegalMove(t *testing.T) {
	bookingRepo, _, _, svc := bookingFixtures()

	bookingID := uuid.New()
	booking := &domain.Booking{ID: bookingID, Status: domain.BookingConfirmed}
	bookingRepo.On("GetByID", mock.Anything, bookingID).Return(booking, nil)

	_, err := svc.Transition(context.Background(), bookingID, domain.BookingCheckedOut)

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Cancel_FromCheckedInFreesRoom(t *testing.T) {
	bookingRepo, roomRepo, _, svc := bookingFixtures()

	bookingID := uuid.New()
	roomID := uuid.New()
	booking := &domain.Booking{ID: bookingID, RoomID: roomID, Status: domain.BookingCheckedIn}

	bookingRepo.On("GetByID", mock.Anything, bookingID).Return(booking, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, bookingID, domain.BookingCancelled).Return(nil)
	roomRepo.On("UpdateStatus", mock.Anything, roomID, domain.RoomAvailable).Return(nil)

	updated, err := svc.Cancel(context.Background(), bookingID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, updated.Status)
	roomRepo.AssertExpectations(t)
}

func TestBookingService_CheckIn_RoomStatusFailureDoesNotFailTransition(t *testing.T) {
	bookingRepo, roomRepo, _, svc := bookingFixtures()

	bookingID := uuid.New()
	roomID := uuid.New()
	booking := &domain.Booking{ID: bookingID, RoomID: roomID, Status: domain.BookingConfirmed}

	bookingRepo.On("GetByID", mock.Anything, bookingID).Return(booking, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, bookingID, domain.BookingCheckedIn).Return(nil)
	roomRepo.On("UpdateStatus", mock.Anything, roomID, domain.RoomOccupied).Return(assert.AnError)

	updated, err := svc.Transition(context.Background(), bookingID, domain.BookingCheckedIn)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedIn, updated.Status)
	roomRepo.AssertExpectations(t)
}

func TestBookingService_Update_TerminalBookingRejected(t *testing.T) {
	bookingRepo, _, _, svc := bookingFixtures()

	bookingID := uuid.New()
	booking := &domain.Booking{ID: bookingID, Status: domain.BookingCheckedOut}
	bookingRepo.On("GetByID", mock.Anything, bookingID).Return(booking, nil)

	newRate := 1200.0
	_, err := svc.Update(context.Background(), bookingID, service.UpdateBookingInput{PricePerNight: &newRate})

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}
