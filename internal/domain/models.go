package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff account that can operate the front desk.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Customer is a guest record. Customers are immutable once created; only the
// ID-proof photo reference may be attached afterwards.
type Customer struct {
	ID            uuid.UUID `db:"id" json:"id"`
	FullName      string    `db:"full_name" json:"full_name"`
	Phone         string    `db:"phone" json:"phone"`
	Email         string    `db:"email" json:"email,omitempty"`
	Address       string    `db:"address" json:"address"`
	IDProofType   string    `db:"id_proof_type" json:"id_proof_type,omitempty"`
	IDProofNumber string    `db:"id_proof_number" json:"id_proof_number,omitempty"`
	PhotoKey      string    `db:"photo_key" json:"photo_key,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// RoomType is a named tariff class with a default nightly rate.
type RoomType struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	DefaultRate float64   `db:"default_rate" json:"default_rate"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Room is a physical room bound to exactly one room type.
type Room struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	RoomNumber string     `db:"room_number" json:"room_number"`
	RoomTypeID uuid.UUID  `db:"room_type_id" json:"room_type_id"`
	Status     RoomStatus `db:"status" json:"status"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`

	// Joined from room_types on reads.
	RoomTypeName string `db:"room_type_name" json:"room_type_name,omitempty"`
}

// Booking links one customer to one room for a date range at a nightly rate.
// Nights and TotalAmount are derived at write time and never recomputed on read.
type Booking struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	CustomerID    uuid.UUID     `db:"customer_id" json:"customer_id"`
	RoomID        uuid.UUID     `db:"room_id" json:"room_id"`
	CheckIn       time.Time     `db:"check_in" json:"check_in"`
	CheckOut      time.Time     `db:"check_out" json:"check_out"`
	PricePerNight float64       `db:"price_per_night" json:"price_per_night"`
	Nights        int           `db:"nights" json:"nights"`
	TotalAmount   float64       `db:"total_amount" json:"total_amount"`
	Status        BookingStatus `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`

	// Joined for list/detail reads.
	CustomerName string `db:"customer_name" json:"customer_name,omitempty"`
	RoomNumber   string `db:"room_number" json:"room_number,omitempty"`
	RoomTypeName string `db:"room_type_name" json:"room_type_name,omitempty"`
}

// Bill is a numbered invoice. Generated from exactly one booking, or manually
// for walk-in charges unrelated to a stay (BookingID nil). Immutable once
// finalized, except for payments layered on top.
type Bill struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	BookingID      *uuid.UUID `db:"booking_id" json:"booking_id,omitempty"`
	CustomerID     *uuid.UUID `db:"customer_id" json:"customer_id,omitempty"`
	BillNumber     string     `db:"bill_number" json:"bill_number,omitempty"`
	Description    string     `db:"description" json:"description,omitempty"`
	Nights         int        `db:"nights" json:"nights"`
	Subtotal       float64    `db:"subtotal" json:"subtotal"`
	GSTIncluded    bool       `db:"gst_included" json:"gst_included"`
	GSTPercent     float64    `db:"gst_percent" json:"gst_percent"`
	GSTAmount      float64    `db:"gst_amount" json:"gst_amount"`
	DiscountAmount float64    `db:"discount_amount" json:"discount_amount"`
	TotalAmount    float64    `db:"total_amount" json:"total_amount"`
	Status         BillStatus `db:"status" json:"status"`
	FinalizedAt    *time.Time `db:"finalized_at" json:"finalized_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// Payment records money received against a finalized bill.
type Payment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	BillID    uuid.UUID `db:"bill_id" json:"bill_id"`
	Amount    float64   `db:"amount" json:"amount"`
	Method    string    `db:"method" json:"method"`
	Reference string    `db:"reference" json:"reference,omitempty"`
	PaidAt    time.Time `db:"paid_at" json:"paid_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// InvoiceCounter holds the last issued number for one series. The next issued
// number is CurrentNumber+1, formatted as {Prefix}-{number zero-padded to 6}.
type InvoiceCounter struct {
	Series        CounterSeries `db:"series" json:"series"`
	Prefix        string        `db:"prefix" json:"prefix"`
	CurrentNumber int64         `db:"current_number" json:"current_number"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// LodgeSettings is the singleton business record printed on every invoice.
type LodgeSettings struct {
	ID         int       `db:"id" json:"-"`
	Name       string    `db:"name" json:"name"`
	Address    string    `db:"address" json:"address"`
	Phone      string    `db:"phone" json:"phone"`
	Email      string    `db:"email" json:"email,omitempty"`
	GSTIN      string    `db:"gstin" json:"gstin"`
	GSTPercent float64   `db:"gst_percent" json:"gst_percent"`
	StateName  string    `db:"state_name" json:"state_name,omitempty"`
	StateCode  string    `db:"state_code" json:"state_code,omitempty"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// CustomerHistory is the stay/bill history plus stats for one customer.
type CustomerHistory struct {
	Customer    *Customer `json:"customer"`
	Bookings    []Booking `json:"bookings"`
	Bills       []Bill    `json:"bills"`
	TotalStays  int       `json:"total_stays"`
	TotalNights int       `json:"total_nights"`
	TotalSpent  float64   `json:"total_spent"`
	LastStay    *time.Time `json:"last_stay,omitempty"`
}

// RentalReportRow is one bill in the rental report detail table.
type RentalReportRow struct {
	BillID       uuid.UUID  `db:"bill_id" json:"bill_id"`
	BillNumber   string     `db:"bill_number" json:"bill_number"`
	BillDate     time.Time  `db:"bill_date" json:"bill_date"`
	CustomerID   *uuid.UUID `db:"customer_id" json:"customer_id,omitempty"`
	CustomerName string     `db:"customer_name" json:"customer_name"`
	RoomNumber   string     `db:"room_number" json:"room_number"`
	RoomTypeName string     `db:"room_type_name" json:"room_type_name"`
	CheckIn      *time.Time `db:"check_in" json:"check_in,omitempty"`
	CheckOut     *time.Time `db:"check_out" json:"check_out,omitempty"`
	Nights       int        `db:"nights" json:"nights"`
	Subtotal     float64    `db:"subtotal" json:"subtotal"`
	GSTIncluded  bool       `db:"gst_included" json:"gst_included"`
	GSTAmount    float64    `db:"gst_amount" json:"gst_amount"`
	Discount     float64    `db:"discount_amount" json:"discount_amount"`
	TotalAmount  float64    `db:"total_amount" json:"total_amount"`
	Status       BillStatus `db:"status" json:"status"`
}

// RentalReportSummary aggregates the filtered bill set.
type RentalReportSummary struct {
	TotalBookings     int     `json:"total_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalGSTAmount    float64 `json:"total_gst_amount"`
	TotalNonGST       float64 `json:"total_non_gst"`
	AverageStayNights float64 `json:"average_stay_nights"`
	UniqueCustomers   int     `json:"unique_customers"`
}

// RentalReportFilters selects bills for the rental report.
type RentalReportFilters struct {
	From      *time.Time
	To        *time.Time
	DateBasis ReportDateBasis
	Customer  string
	Room      string
	Status    BillStatus
	GSTMode   ReportGSTMode
	MinAmount *float64
	MaxAmount *float64
}
