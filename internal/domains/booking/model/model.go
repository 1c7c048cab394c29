package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	pricingModel "banquet/internal/domains/pricing/model"
	staffingModel "banquet/internal/domains/staffing/model"
	"banquet/shared/model"
	"banquet/shared/money"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldCustomerName  = "customer_name"
	FieldEventType     = "event_type"
	FieldEventDate     = "event_date"
	FieldEventTime     = "event_time"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldLocked        = "locked"
	FieldAssignments   = "assignments"
	FieldAmountPaid    = "amount_paid"
	FieldBalanceDue    = "balance_due_amount"
)

// Status is the canonical lifecycle stage of a booking. It is the only
// persisted status field; any legacy mirrored value is reconciled at read
// time through NormalizeStatus.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus maps a raw string onto a known status.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(raw), true
	default:
		return "", false
	}
}

// NormalizeStatus reconciles the canonical status with a legacy mirrored
// field. The canonical value always wins; the legacy value is consulted only
// when the canonical one is absent or unknown.
func NormalizeStatus(canonical, legacy string) Status {
	if status, ok := ParseStatus(canonical); ok {
		return status
	}

	if status, ok := ParseStatus(legacy); ok {
		return status
	}

	return StatusPending
}

// AssignmentStatus tracks an individual staff assignment through the event.
type AssignmentStatus string

const (
	AssignmentScheduled AssignmentStatus = "scheduled"
	AssignmentConfirmed AssignmentStatus = "confirmed"
	AssignmentCompleted AssignmentStatus = "completed"
)

// PaymentStatus is the display-level payment stage. PaidInFull and Refunded
// are explicit terminal states; the remaining values are derived from the
// ledger totals and the calendar.
type PaymentStatus string

const (
	PaymentDepositPending     PaymentStatus = "Deposit Pending"
	PaymentDepositReceived    PaymentStatus = "Deposit Received"
	PaymentBalanceOutstanding PaymentStatus = "Balance Outstanding"
	PaymentPaidInFull         PaymentStatus = "Paid in Full"
	PaymentRefunded           PaymentStatus = "Refunded"
)

// StaffAssignment binds a staffing slot to a staff member. StaffID is empty
// while the slot is unfilled. EstimatedPay is the compensation preview for
// the slot at the time the plan was last computed.
type StaffAssignment struct {
	SlotID       string           `json:"slot_id"`
	Role         string           `json:"role"`
	StaffID      string           `json:"staff_id"`
	Status       AssignmentStatus `json:"status"`
	EstimatedPay float64          `json:"estimated_pay"`
}

// Assignments is the ordered JSONB list of a booking's staff assignments.
type Assignments []StaffAssignment

func (a Assignments) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]StaffAssignment{})
	}

	return json.Marshal(a)
}

func (a *Assignments) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, a)
	case string:
		return json.Unmarshal([]byte(value), a)
	case nil:
		*a = nil

		return nil
	default:
		return fmt.Errorf("unsupported type for assignments: %T", src)
	}
}

// StaffIDs returns the distinct staff ids of the filled assignments, in slot
// order.
func (a Assignments) StaffIDs() []string {
	seen := make(map[string]bool, len(a))

	ids := make([]string, 0, len(a))
	for _, assignment := range a {
		if assignment.StaffID == "" || seen[assignment.StaffID] {
			continue
		}

		seen[assignment.StaffID] = true
		ids = append(ids, assignment.StaffID)
	}

	return ids
}

// WithStatus returns a copy with every filled assignment set to the status.
func (a Assignments) WithStatus(status AssignmentStatus) Assignments {
	out := make(Assignments, len(a))
	copy(out, a)

	for i := range out {
		if out[i].StaffID != "" {
			out[i].Status = status
		}
	}

	return out
}

// PayOverrides is the JSONB list of per-event compensation overrides.
type PayOverrides []staffingModel.PayOverride

func (p PayOverrides) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal([]staffingModel.PayOverride{})
	}

	return json.Marshal(p)
}

func (p *PayOverrides) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, p)
	case string:
		return json.Unmarshal([]byte(value), p)
	case nil:
		*p = nil

		return nil
	default:
		return fmt.Errorf("unsupported type for pay overrides: %T", src)
	}
}

// MenuOverride carries a menu-pricing snapshot that replaces the computed
// subtotal and food-cost estimate. The zero value persists as NULL.
type MenuOverride struct {
	Subtotal *float64 `json:"subtotal,omitempty"`
	FoodCost *float64 `json:"food_cost,omitempty"`
}

func (m MenuOverride) IsZero() bool {
	return m.Subtotal == nil && m.FoodCost == nil
}

func (m MenuOverride) Value() (driver.Value, error) {
	if m.IsZero() {
		return nil, nil
	}

	return json.Marshal(m)
}

func (m *MenuOverride) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, m)
	case string:
		return json.Unmarshal([]byte(value), m)
	case nil:
		*m = MenuOverride{}

		return nil
	default:
		return fmt.Errorf("unsupported type for menu override: %T", src)
	}
}

// Booking is one catering event with its full financial snapshot. Monetary
// columns hold the output of the last pricing run; the ledger recomputes
// AmountPaid and BalanceDueAmount on every payment.
type Booking struct {
	ID            string `db:"id"`
	CustomerName  string `db:"customer_name"`
	CustomerEmail string `db:"customer_email"`
	CustomerPhone string `db:"customer_phone"`

	EventType     string    `db:"event_type"`
	EventDate     time.Time `db:"event_date"`
	EventTime     time.Time `db:"event_time"`
	Adults        int       `db:"adults"`
	Children      int       `db:"children"`
	Location      string    `db:"location"`
	DistanceMiles float64   `db:"distance_miles"`

	DiscountType    string  `db:"discount_type"`
	DiscountValue   float64 `db:"discount_value"`
	PremiumPerGuest float64 `db:"premium_per_guest"`

	Subtotal    float64 `db:"subtotal"`
	Discount    float64 `db:"discount"`
	Gratuity    float64 `db:"gratuity"`
	DistanceFee float64 `db:"distance_fee"`
	Total       float64 `db:"total"`

	Status        Status        `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`

	DepositPercent   float64    `db:"deposit_percent"`
	DepositAmount    float64    `db:"deposit_amount"`
	DepositDueDate   *time.Time `db:"deposit_due_date"`
	BalanceDueDate   *time.Time `db:"balance_due_date"`
	BalanceDueAmount float64    `db:"balance_due_amount"`
	AmountPaid       float64    `db:"amount_paid"`

	ConfirmedAt *time.Time `db:"confirmed_at"`
	Locked      bool       `db:"locked"`

	Assignments  Assignments  `db:"assignments"`
	PayOverrides PayOverrides `db:"pay_overrides"`
	MenuOverride MenuOverride `db:"menu_override"`

	ReconciliationRef string `db:"reconciliation_ref"`
	Notes             string `db:"notes"`
	model.Metadata
}

// GuestCount is the total headcount used for staffing and pricing.
func (b Booking) GuestCount() int {
	return b.Adults + b.Children
}

// DiscountSpec returns the booking's discount in pricing-engine form, or nil
// when none is configured.
func (b Booking) DiscountSpec() *pricingModel.Discount {
	if b.DiscountType == "" || b.DiscountValue <= 0 {
		return nil
	}

	return &pricingModel.Discount{
		Type:  pricingModel.DiscountType(b.DiscountType),
		Value: b.DiscountValue,
	}
}

// QuoteInput rebuilds the pricing-engine input from the booking's stored
// event parameters and menu override.
func (b Booking) QuoteInput() pricingModel.QuoteInput {
	return pricingModel.QuoteInput{
		EventType:        b.EventType,
		EventDate:        b.EventDate,
		Adults:           b.Adults,
		Children:         b.Children,
		DistanceMiles:    b.DistanceMiles,
		PremiumPerGuest:  b.PremiumPerGuest,
		Discount:         b.DiscountSpec(),
		OverrideSubtotal: b.MenuOverride.Subtotal,
		OverrideFoodCost: b.MenuOverride.FoodCost,
	}
}

// RecalculateBalance restores the ledger invariant
// balanceDue = max(0, total - amountPaid).
func (b *Booking) RecalculateBalance() {
	b.BalanceDueAmount = money.RoundCents(max(0, b.Total-b.AmountPaid))
}

// SameOccasion reports whether the booking occupies the given date and time,
// comparing the calendar date and the wall-clock minute only.
func (b Booking) SameOccasion(eventDate, eventTime time.Time) bool {
	sameDate := b.EventDate.Year() == eventDate.Year() &&
		b.EventDate.Month() == eventDate.Month() &&
		b.EventDate.Day() == eventDate.Day()

	sameTime := b.EventTime.Hour() == eventTime.Hour() &&
		b.EventTime.Minute() == eventTime.Minute()

	return sameDate && sameTime
}

// DerivePaymentStatus computes the display-level payment stage. Explicit
// terminal states short-circuit the derivation; otherwise the balance becomes
// outstanding the calendar day after the event. Today is passed in so the
// derivation stays deterministic.
func DerivePaymentStatus(b Booking, today time.Time) PaymentStatus {
	if b.PaymentStatus == PaymentPaidInFull || b.PaymentStatus == PaymentRefunded {
		return b.PaymentStatus
	}

	if b.BalanceDueAmount > money.Epsilon && !beforeDayAfter(today, b.EventDate) {
		return PaymentBalanceOutstanding
	}

	if b.DepositAmount > money.Epsilon && money.GTE(b.AmountPaid, b.DepositAmount) {
		return PaymentDepositReceived
	}

	return PaymentDepositPending
}

// IsBalanceOverdue reports whether an unpaid balance remains past the event.
func IsBalanceOverdue(b Booking, today time.Time) bool {
	return DerivePaymentStatus(b, today) == PaymentBalanceOutstanding
}

func beforeDayAfter(today, eventDate time.Time) bool {
	dayAfter := time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, today.Location())
	dayAfter = dayAfter.AddDate(0, 0, 1)

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	return todayDate.Before(dayAfter)
}
