package dto

import (
	"time"

	"banquet/internal/domains/booking/model"
	staffingModel "banquet/internal/domains/staffing/model"
	"banquet/shared"
	"banquet/shared/constant"
	gDto "banquet/shared/dto"
	gModel "banquet/shared/model"
	"banquet/shared/timezone"

	"github.com/google/uuid"
)

type MenuOverrideRequest struct {
	Subtotal *float64 `json:"subtotal,omitempty"  validate:"omitempty,gte=0"`
	FoodCost *float64 `json:"food_cost,omitempty" validate:"omitempty,gte=0"`
}

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"omitempty,max=30"`

	EventType     string  `json:"event_type"     validate:"required,max=50"`
	EventDate     string  `json:"event_date"     validate:"required"`
	EventTime     string  `json:"event_time"     validate:"required"`
	Adults        int     `json:"adults"         validate:"gte=0"`
	Children      int     `json:"children"       validate:"gte=0"`
	Location      string  `json:"location"       validate:"omitempty,max=200"`
	DistanceMiles float64 `json:"distance_miles" validate:"gte=0"`

	DiscountType    string  `json:"discount_type"     validate:"omitempty,oneof=percent flat"`
	DiscountValue   float64 `json:"discount_value"    validate:"gte=0"`
	PremiumPerGuest float64 `json:"premium_per_guest" validate:"gte=0"`

	MenuOverride *MenuOverrideRequest        `json:"menu_override,omitempty" validate:"omitempty"`
	PayOverrides []staffingModel.PayOverride `json:"pay_overrides,omitempty" validate:"omitempty,dive"`

	Notes string `json:"notes" validate:"omitempty"`
}

// ToModel builds the booking shell; the service fills the pricing snapshot,
// assignments and deposit terms before persisting.
func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	eventDate, err := time.Parse(constant.EventDateFormat, c.EventDate)
	if err != nil {
		return model.Booking{}, err
	}

	eventTime, err := time.Parse(constant.EventTimeFormat, c.EventTime)
	if err != nil {
		return model.Booking{}, err
	}

	booking := model.Booking{
		ID:              uuid.NewString(),
		CustomerName:    c.CustomerName,
		CustomerEmail:   c.CustomerEmail,
		CustomerPhone:   c.CustomerPhone,
		EventType:       c.EventType,
		EventDate:       eventDate,
		EventTime:       eventTime,
		Adults:          c.Adults,
		Children:        c.Children,
		Location:        c.Location,
		DistanceMiles:   c.DistanceMiles,
		DiscountType:    c.DiscountType,
		DiscountValue:   c.DiscountValue,
		PremiumPerGuest: c.PremiumPerGuest,
		PayOverrides:    model.PayOverrides(c.PayOverrides),
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentDepositPending,
		Notes:           c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if c.MenuOverride != nil {
		booking.MenuOverride = model.MenuOverride{
			Subtotal: c.MenuOverride.Subtotal,
			FoodCost: c.MenuOverride.FoodCost,
		}
	}

	return booking, nil
}

type UpdateBookingRequest struct {
	CustomerName  string `db:"customer_name"  json:"customer_name"  validate:"omitempty,max=100"`
	CustomerEmail string `db:"customer_email" json:"customer_email" validate:"omitempty,email,max=100"`
	CustomerPhone string `db:"customer_phone" json:"customer_phone" validate:"omitempty,max=30"`

	EventType     string   `json:"event_type"     validate:"omitempty,max=50"`
	EventDate     string   `json:"event_date"     validate:"omitempty"`
	EventTime     string   `json:"event_time"     validate:"omitempty"`
	Adults        *int     `json:"adults"         validate:"omitempty,gte=0"`
	Children      *int     `json:"children"       validate:"omitempty,gte=0"`
	Location      string   `db:"location"        json:"location" validate:"omitempty,max=200"`
	DistanceMiles *float64 `json:"distance_miles" validate:"omitempty,gte=0"`

	DiscountType    *string  `json:"discount_type"     validate:"omitempty,oneof=percent flat"`
	DiscountValue   *float64 `json:"discount_value"    validate:"omitempty,gte=0"`
	PremiumPerGuest *float64 `json:"premium_per_guest" validate:"omitempty,gte=0"`

	MenuOverride *MenuOverrideRequest         `json:"menu_override,omitempty" validate:"omitempty"`
	PayOverrides *[]staffingModel.PayOverride `json:"pay_overrides,omitempty" validate:"omitempty,dive"`

	Notes *string `db:"notes" json:"notes" validate:"omitempty"`
}

type AssignmentInput struct {
	SlotID  string `json:"slot_id"  validate:"required"`
	StaffID string `json:"staff_id" validate:"omitempty"`
}

type AssignStaffRequest struct {
	Assignments []AssignmentInput `json:"assignments" validate:"required,min=1,dive"`
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type ConflictCheckRequest struct {
	EventDate        string   `json:"event_date" validate:"required"`
	EventTime        string   `json:"event_time" validate:"required"`
	StaffIDs         []string `json:"staff_ids"  validate:"required,min=1"`
	ExcludeBookingID string   `json:"exclude_booking_id" validate:"omitempty"`
}

type ConflictCheckResponse struct {
	Conflicts []model.Conflict `json:"conflicts"`
}

type StaffAssignmentResponse struct {
	SlotID       string  `json:"slot_id"`
	Role         string  `json:"role"`
	StaffID      string  `json:"staff_id"`
	Status       string  `json:"status"`
	EstimatedPay float64 `json:"estimated_pay"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	EventType     string  `json:"event_type"`
	EventDate     string  `json:"event_date"`
	EventTime     string  `json:"event_time"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	GuestCount    int     `json:"guest_count"`
	Location      string  `json:"location"`
	DistanceMiles float64 `json:"distance_miles"`

	DiscountType    string  `json:"discount_type,omitempty"`
	DiscountValue   float64 `json:"discount_value,omitempty"`
	PremiumPerGuest float64 `json:"premium_per_guest,omitempty"`

	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	Gratuity    float64 `json:"gratuity"`
	DistanceFee float64 `json:"distance_fee"`
	Total       float64 `json:"total"`

	Status         string `json:"status"`
	PaymentStatus  string `json:"payment_status"`
	BalanceOverdue bool   `json:"balance_overdue"`

	DepositPercent   float64 `json:"deposit_percent"`
	DepositAmount    float64 `json:"deposit_amount"`
	DepositDueDate   string  `json:"deposit_due_date,omitempty"`
	BalanceDueDate   string  `json:"balance_due_date,omitempty"`
	BalanceDueAmount float64 `json:"balance_due_amount"`
	AmountPaid       float64 `json:"amount_paid"`

	ConfirmedAt string `json:"confirmed_at,omitempty"`
	Locked      bool   `json:"locked"`

	Assignments []StaffAssignmentResponse `json:"assignments"`

	Notes string `json:"notes,omitempty"`
	gDto.Metadata
}

// FromModel maps a booking for display. The payment status is derived from
// the ledger totals against today, so the stored terminal states and the
// calendar can never disagree in a response.
func (r *BookingResponse) FromModel(booking model.Booking, today time.Time) {
	r.ID = booking.ID
	r.CustomerName = booking.CustomerName
	r.CustomerEmail = booking.CustomerEmail
	r.CustomerPhone = booking.CustomerPhone
	r.EventType = booking.EventType
	r.EventDate = booking.EventDate.Format(constant.EventDateFormat)
	r.EventTime = booking.EventTime.Format(constant.EventTimeFormat)
	r.Adults = booking.Adults
	r.Children = booking.Children
	r.GuestCount = booking.GuestCount()
	r.Location = booking.Location
	r.DistanceMiles = booking.DistanceMiles
	r.DiscountType = booking.DiscountType
	r.DiscountValue = booking.DiscountValue
	r.PremiumPerGuest = booking.PremiumPerGuest
	r.Subtotal = booking.Subtotal
	r.Discount = booking.Discount
	r.Gratuity = booking.Gratuity
	r.DistanceFee = booking.DistanceFee
	r.Total = booking.Total
	r.Status = string(model.NormalizeStatus(string(booking.Status), ""))
	r.PaymentStatus = string(model.DerivePaymentStatus(booking, today))
	r.BalanceOverdue = model.IsBalanceOverdue(booking, today)
	r.DepositPercent = booking.DepositPercent
	r.DepositAmount = booking.DepositAmount
	r.BalanceDueAmount = booking.BalanceDueAmount
	r.AmountPaid = booking.AmountPaid
	r.Locked = booking.Locked
	r.Notes = booking.Notes

	if booking.DepositDueDate != nil {
		r.DepositDueDate = booking.DepositDueDate.Format(constant.EventDateFormat)
	}

	if booking.BalanceDueDate != nil {
		r.BalanceDueDate = booking.BalanceDueDate.Format(constant.EventDateFormat)
	}

	if booking.ConfirmedAt != nil {
		r.ConfirmedAt = booking.ConfirmedAt.Format(constant.DateFormat)
	}

	r.Assignments = make([]StaffAssignmentResponse, len(booking.Assignments))
	for i, assignment := range booking.Assignments {
		r.Assignments[i] = StaffAssignmentResponse{
			SlotID:       assignment.SlotID,
			Role:         assignment.Role,
			StaffID:      assignment.StaffID,
			Status:       string(assignment.Status),
			EstimatedPay: assignment.EstimatedPay,
		}
	}

	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int, today time.Time) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, today)
	}
}
