package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lodgeos/internal/domain"
)

// UserRepository persists staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Count(ctx context.Context) (int, error)
}

// CustomerRepository persists guest records.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Customer, int, error)
	SetPhotoKey(ctx context.Context, id uuid.UUID, key string) error
}

// RoomTypeRepository persists tariff classes.
type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *domain.RoomType) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RoomType, error)
	List(ctx context.Context) ([]domain.RoomType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoomRepository persists rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RoomStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingRepository persists reservations.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, status domain.BookingStatus, offset, limit int) ([]domain.Booking, int, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
	// CountOverlapping counts non-cancelled bookings for the room whose date
	// range overlaps [checkIn, checkOut), excluding the given booking ID.
	CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude uuid.UUID) (int, error)
}

// BillRepository persists bills and payments. Number issuance happens inside
// the same transaction as the bill write so two concurrent finalizations can
// never receive the same invoice number.
type BillRepository interface {
	// CreateDraft stores an unnumbered manual bill.
	CreateDraft(ctx context.Context, bill *domain.Bill) error
	// CreateFinalized issues the next number of the series and inserts the
	// bill in a single transaction, filling BillNumber and FinalizedAt.
	CreateFinalized(ctx context.Context, bill *domain.Bill, series domain.CounterSeries) error
	// Finalize issues a number for an existing draft in a single transaction.
	Finalize(ctx context.Context, bill *domain.Bill, series domain.CounterSeries) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.Bill, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Bill, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BillStatus) error
	AddPayment(ctx context.Context, payment *domain.Payment) error
	SumPayments(ctx context.Context, billID uuid.UUID) (float64, error)
	ListPayments(ctx context.Context, billID uuid.UUID) ([]domain.Payment, error)
}

// CounterRepository reads and re-baselines invoice number counters.
type CounterRepository interface {
	List(ctx context.Context) ([]domain.InvoiceCounter, error)
	Get(ctx context.Context, series domain.CounterSeries) (*domain.InvoiceCounter, error)
	// SetStartingNumber re-baselines the series so the next issued number is
	// exactly startingNumber. Unless allowRegression is set, moving the
	// counter backwards returns domain.ErrCounterRegression.
	SetStartingNumber(ctx context.Context, series domain.CounterSeries, startingNumber int64, allowRegression bool) error
}

// SettingsRepository persists the singleton lodge settings record.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.LodgeSettings, error)
	Upsert(ctx context.Context, settings *domain.LodgeSettings) error
}

// ReportRepository runs the filtered rental report query.
type ReportRepository interface {
	RentalRows(ctx context.Context, filters domain.RentalReportFilters) ([]domain.RentalReportRow, error)
}
