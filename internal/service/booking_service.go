package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"lodgeos/internal/billing"
	"lodgeos/internal/domain"
	"lodgeos/internal/port"
)

// CreateBookingInput is the DTO for creating a reservation.
type CreateBookingInput struct {
	CustomerID    uuid.UUID `json:"customer_id" binding:"required"`
	RoomID        uuid.UUID `json:"room_id" binding:"required"`
	CheckIn       time.Time `json:"check_in" binding:"required"`
	CheckOut      time.Time `json:"check_out" binding:"required"`
	PricePerNight float64   `json:"price_per_night"`
}

// UpdateBookingInput is the DTO for amending a reservation before check-out.
type UpdateBookingInput struct {
	RoomID        *uuid.UUID `json:"room_id"`
	CheckIn       *time.Time `json:"check_in"`
	CheckOut      *time.Time `json:"check_out"`
	PricePerNight *float64   `json:"price_per_night"`
}

// BookingService manages the reservation lifecycle.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, status domain.BookingStatus, offset, limit int) ([]domain.Booking, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBookingInput) (*domain.Booking, error)
	Transition(ctx context.Context, id uuid.UUID, target domain.BookingStatus) (*domain.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

type bookingService struct {
	bookingRepo  port.BookingRepository
	roomRepo     port.RoomRepository
	customerRepo port.CustomerRepository
}

// NewBookingService creates a new BookingService implementation.
func NewBookingService(
	bookingRepo port.BookingRepository,
	roomRepo port.RoomRepository,
	customerRepo port.CustomerRepository,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
	}
}

func (s *bookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}
	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	stay, err := billing.ComputeStay(input.CheckIn, input.CheckOut, input.PricePerNight)
	if err != nil {
		return nil, err
	}

	overlapping, err := s.bookingRepo.CountOverlapping(ctx, room.ID, input.CheckIn, input.CheckOut, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, domain.ErrRoomUnavailable
	}

	booking := &domain.Booking{
		CustomerID:    input.CustomerID,
		RoomID:        input.RoomID,
		CheckIn:       input.CheckIn,
		CheckOut:      input.CheckOut,
		PricePerNight: input.PricePerNight,
		Nights:        stay.Nights,
		TotalAmount:   stay.Subtotal,
		Status:        domain.BookingConfirmed,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) List(ctx context.Context, status domain.BookingStatus, offset, limit int) ([]domain.Booking, int, error) {
	return s.bookingRepo.List(ctx, status, offset, limit)
}

func (s *bookingService) Update(ctx context.Context, id uuid.UUID, input UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status.Terminal() {
		return nil, domain.ErrInvalidStatusTransition
	}

	if input.RoomID != nil {
		if _, err := s.roomRepo.GetByID(ctx, *input.RoomID); err != nil {
			return nil, err
		}
		booking.RoomID = *input.RoomID
	}
	if input.CheckIn != nil {
		booking.CheckIn = *input.CheckIn
	}
	if input.CheckOut != nil {
		booking.CheckOut = *input.CheckOut
	}
	if input.PricePerNight != nil {
		booking.PricePerNight = *input.PricePerNight
	}

	stay, err := billing.ComputeStay(booking.CheckIn, booking.CheckOut, booking.PricePerNight)
	if err != nil {
		return nil, err
	}
	booking.Nights = stay.Nights
	booking.TotalAmount = stay.Subtotal

	overlapping, err := s.bookingRepo.CountOverlapping(ctx, booking.RoomID, booking.CheckIn, booking.CheckOut, booking.ID)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, domain.ErrRoomUnavailable
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Transition applies a one-way status change, keeping the room status in step:
// check-in occupies the room, check-out and cancellation free it.
func (s *bookingService) Transition(ctx context.Context, id uuid.UUID, target domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransition(target) {
		return nil, domain.ErrInvalidStatusTransition
	}

	wasCheckedIn := booking.Status == domain.BookingCheckedIn
	if err := s.bookingRepo.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	booking.Status = target

	switch target {
	case domain.BookingCheckedIn:
		s.setRoomStatus(ctx, booking, domain.RoomOccupied)
	case domain.BookingCheckedOut:
		s.setRoomStatus(ctx, booking, domain.RoomAvailable)
	case domain.BookingCancelled:
		if wasCheckedIn {
			s.setRoomStatus(ctx, booking, domain.RoomAvailable)
		}
	}
	return booking, nil
}

// setRoomStatus is best effort: the booking transition already committed, so a
// failed room write is logged rather than failing the request.
func (s *bookingService) setRoomStatus(ctx context.Context, booking *domain.Booking, status domain.RoomStatus) {
	if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, status); err != nil {
		log.Printf("bookingService: room %s status %s after booking %s transition failed: %v",
			booking.RoomID, status, booking.ID, err)
	}
}

func (s *bookingService) Cancel(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.Transition(ctx, id, domain.BookingCancelled)
}
