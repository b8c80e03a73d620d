package domain

// UserRole defines staff roles. Admins manage settings and invoice counters.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// RoomStatus is the explicit lifecycle state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

// ValidRoomStatuses lists the accepted room status values.
var ValidRoomStatuses = map[RoomStatus]bool{
	RoomAvailable:   true,
	RoomOccupied:    true,
	RoomMaintenance: true,
}

// BookingStatus is the closed set of reservation states.
type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// bookingTransitions is the single transition table for booking states.
// checked_out and cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed: {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn: {BookingCheckedOut, BookingCancelled},
}

// CanTransition reports whether a booking may move from s to target.
func (s BookingStatus) CanTransition(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Terminal reports whether no further booking transitions are possible.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

// BillStatus is the closed set of bill states.
type BillStatus string

const (
	BillDraft     BillStatus = "DRAFT"
	BillFinalized BillStatus = "FINALIZED"
	BillUnpaid    BillStatus = "UNPAID"
	BillPaid      BillStatus = "PAID"
)

// billTransitions: a draft becomes finalized when numbered; payments move a
// finalized bill to UNPAID (partial) or PAID (met or exceeded total), and an
// UNPAID bill to PAID.
var billTransitions = map[BillStatus][]BillStatus{
	BillDraft:     {BillFinalized},
	BillFinalized: {BillUnpaid, BillPaid},
	BillUnpaid:    {BillPaid},
}

// CanTransition reports whether a bill may move from s to target.
func (s BillStatus) CanTransition(target BillStatus) bool {
	for _, t := range billTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Finalized reports whether the bill has been assigned an invoice number.
func (s BillStatus) Finalized() bool {
	return s == BillFinalized || s == BillUnpaid || s == BillPaid
}

// CounterSeries identifies an independent invoice numbering sequence.
type CounterSeries string

const (
	SeriesGST    CounterSeries = "GST"
	SeriesNonGST CounterSeries = "NON_GST"
)

// SeriesFor returns the numbering series for a bill's GST flag.
func SeriesFor(gstIncluded bool) CounterSeries {
	if gstIncluded {
		return SeriesGST
	}
	return SeriesNonGST
}

// ReportDateBasis selects which date field a rental report range filters on.
type ReportDateBasis string

const (
	DateBasisCheckIn  ReportDateBasis = "check_in"
	DateBasisCheckOut ReportDateBasis = "check_out"
	DateBasisBooking  ReportDateBasis = "booking_date"
	DateBasisBill     ReportDateBasis = "bill_date"
)

// ValidDateBases lists the accepted report date basis values.
var ValidDateBases = map[ReportDateBasis]bool{
	DateBasisCheckIn:  true,
	DateBasisCheckOut: true,
	DateBasisBooking:  true,
	DateBasisBill:     true,
}

// ReportGSTMode splits the rental report by GST applicability.
type ReportGSTMode string

const (
	GSTModeAll    ReportGSTMode = "all"
	GSTModeGST    ReportGSTMode = "gst"
	GSTModeNonGST ReportGSTMode = "non_gst"
)

// ValidGSTModes lists the accepted report GST mode values.
var ValidGSTModes = map[ReportGSTMode]bool{
	GSTModeAll:    true,
	GSTModeGST:    true,
	GSTModeNonGST: true,
}
