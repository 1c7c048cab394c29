package dto

import (
	"time"

	"banquet/internal/domains/payment/model"
	"banquet/shared"
	"banquet/shared/constant"
	gDto "banquet/shared/dto"
	gModel "banquet/shared/model"
	"banquet/shared/money"
	"banquet/shared/timezone"

	"github.com/google/uuid"
)

type ApplyPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required"`
	Date   string  `json:"date"   validate:"omitempty,datetime=2006-01-02"`
	Type   string  `json:"type"   validate:"omitempty,oneof=deposit payment"`
	Method string  `json:"method" validate:"omitempty,max=50"`
	Notes  string  `json:"notes"  validate:"omitempty,max=500"`
}

// ToModel builds the ledger entry. The entry type defaults from the booking's
// paid-so-far state when the request leaves it blank: the first money in is
// the deposit, everything after is a payment.
func (r *ApplyPaymentRequest) ToModel(bookingID string, firstPayment bool, user string) model.CustomerPayment {
	entryType := model.PaymentType(r.Type)
	if entryType == "" {
		entryType = model.TypePayment
		if firstPayment {
			entryType = model.TypeDeposit
		}
	}

	return model.CustomerPayment{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Date:      parseDateOrNow(r.Date),
		Amount:    r.Amount,
		Type:      entryType,
		Method:    r.Method,
		Notes:     r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ApplyRefundRequest struct {
	Amount float64 `json:"amount" validate:"required"`
	Date   string  `json:"date"   validate:"omitempty,datetime=2006-01-02"`
	Method string  `json:"method" validate:"omitempty,max=50"`
	Notes  string  `json:"notes"  validate:"omitempty,max=500"`
}

func (r *ApplyRefundRequest) ToModel(bookingID, user string) model.CustomerPayment {
	return model.CustomerPayment{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Date:      parseDateOrNow(r.Date),
		Amount:    r.Amount,
		Type:      model.TypeRefund,
		Method:    r.Method,
		Notes:     r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func parseDateOrNow(date string) time.Time {
	if date == "" {
		return timezone.Now()
	}

	parsed, err := time.Parse(constant.EventDateFormat, date)
	if err != nil {
		return timezone.Now()
	}

	return parsed
}

type PaymentResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	Method    string  `json:"method,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(payment model.CustomerPayment) {
	r.ID = payment.ID
	r.BookingID = payment.BookingID
	r.Date = timezone.Format(payment.Date, constant.EventDateFormat)
	r.Amount = payment.Amount
	r.Type = string(payment.Type)
	r.Method = payment.Method
	r.Notes = payment.Notes
	r.Metadata.FromModel(payment.Metadata)
}

// LedgerResponse reports the booking's money position after a ledger
// mutation, so clients can refresh their view without a second round trip.
type LedgerResponse struct {
	Payment       PaymentResponse `json:"payment"`
	AmountPaid    float64         `json:"amount_paid"`
	Balance       float64         `json:"balance"`
	PaymentStatus string          `json:"payment_status"`
	BookingStatus string          `json:"booking_status"`
	ReceiptURL    string          `json:"receipt_url,omitempty"`
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.CustomerPayment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

type LaborPaymentResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	SlotID    string  `json:"slot_id"`
	StaffID   string  `json:"staff_id"`
	Role      string  `json:"role"`
	Amount    float64 `json:"amount"`
}

type GetLaborPaymentsResponse struct {
	Records  []LaborPaymentResponse `json:"records"`
	TotalPay float64                `json:"total_pay"`
}

func (r *GetLaborPaymentsResponse) FromModels(models []model.LaborPayment) {
	r.Records = make([]LaborPaymentResponse, len(models))

	for i, mod := range models {
		r.Records[i] = LaborPaymentResponse{
			ID:        mod.ID,
			BookingID: mod.BookingID,
			SlotID:    mod.SlotID,
			StaffID:   mod.StaffID,
			Role:      mod.Role,
			Amount:    mod.Amount,
		}
		r.TotalPay += mod.Amount
	}

	r.TotalPay = money.RoundCents(r.TotalPay)
}
