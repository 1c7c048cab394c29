package model

import (
	"fmt"
	"time"

	"banquet/shared/model"
)

const (
	CustomerPaymentTableName  = "customer_payments"
	CustomerPaymentEntityName = "customer payment"

	LaborPaymentTableName  = "labor_payments"
	LaborPaymentEntityName = "labor payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldSlotIndex = "slot_index"
	FieldType      = "type"
)

// PaymentType is the transaction sub-type on the customer ledger.
type PaymentType string

const (
	TypeDeposit PaymentType = "deposit"
	TypePayment PaymentType = "payment"
	TypeRefund  PaymentType = "refund"
)

// CustomerPayment is one append-only ledger entry. Entries are never edited
// or deleted to reflect a correction; a correction is a new entry.
type CustomerPayment struct {
	ID        string      `db:"id"`
	BookingID string      `db:"booking_id"`
	Date      time.Time   `db:"payment_date"`
	Amount    float64     `db:"amount"`
	Type      PaymentType `db:"type"`
	Method    string      `db:"method"`
	Notes     string      `db:"notes"`
	model.Metadata
}

// LaborPayment is the pay snapshot for one filled staffing slot, written when
// a booking completes. The id is derived from (booking id, slot index) so a
// recomputation replaces prior records instead of duplicating them.
type LaborPayment struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	SlotIndex int     `db:"slot_index"`
	SlotID    string  `db:"slot_id"`
	StaffID   string  `db:"staff_id"`
	Role      string  `db:"role"`
	Amount    float64 `db:"amount"`
	model.Metadata
}

// LaborPaymentID builds the deterministic labor record id.
func LaborPaymentID(bookingID string, slotIndex int) string {
	return fmt.Sprintf("%s#%d", bookingID, slotIndex)
}
