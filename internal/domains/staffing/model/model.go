package model

// PlanSource records how a staffing plan's role list was chosen.
type PlanSource string

const (
	PlanSourceProfile PlanSource = "profile"
	PlanSourceDefault PlanSource = "default"
	PlanSourceNone    PlanSource = "none"
)

// Slot is one required role position in a staffing plan. The ID is assigned
// when the plan is generated and stays stable for the life of the booking, so
// assignments and pay overrides reference a slot directly instead of "the Nth
// occurrence of role R".
type Slot struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// Plan is the ordered list of role slots required for one event.
type Plan struct {
	Slots  []Slot     `json:"slots"`
	Source PlanSource `json:"source"`
}

// Roles returns the plan's role labels in slot order.
func (p Plan) Roles() []string {
	roles := make([]string, 0, len(p.Slots))
	for _, slot := range p.Slots {
		roles = append(roles, slot.Role)
	}

	return roles
}

// PayOverride replaces the configured compensation terms for a single slot.
type PayOverride struct {
	SlotID               string   `json:"slot_id" validate:"required"`
	BasePayPercent       *float64 `json:"base_pay_percent,omitempty"       validate:"omitempty,gte=0,lte=100"`
	GratuitySplitPercent *float64 `json:"gratuity_split_percent,omitempty" validate:"omitempty,gte=0,lte=100"`
	Cap                  *float64 `json:"cap,omitempty"                    validate:"omitempty,gte=0"`
}

// SlotPay is the computed compensation for one staffing slot.
type SlotPay struct {
	SlotID         string  `json:"slot_id"`
	Role           string  `json:"role"`
	BasePay        float64 `json:"base_pay"`
	GratuityShare  float64 `json:"gratuity_share"`
	FinalPay       float64 `json:"final_pay"`
	ExcessToProfit float64 `json:"excess_to_profit"`
}

// Compensation is the full labor payout breakdown for one event.
type Compensation struct {
	Slots          []SlotPay `json:"slots"`
	TotalPay       float64   `json:"total_pay"`
	ExcessToProfit float64   `json:"excess_to_profit"`
}
