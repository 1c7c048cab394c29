package model

import (
	"time"

	rulesModel "banquet/internal/domains/rules/model"
)

// DiscountType is how a discount value is interpreted.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFlat    DiscountType = "flat"
)

// Discount reduces the subtotal only; gratuity and distance fee are computed
// from the undiscounted subtotal.
type Discount struct {
	Type  DiscountType `json:"type"  validate:"required,oneof=percent flat"`
	Value float64      `json:"value" validate:"gte=0"`
}

// QuoteInput is everything the pricing engine needs for one event.
type QuoteInput struct {
	EventType       string
	EventDate       time.Time
	Adults          int
	Children        int
	DistanceMiles   float64
	PremiumPerGuest float64
	Discount        *Discount

	// Overrides carry a prior menu-pricing snapshot into the quote.
	OverrideSubtotal *float64
	OverrideFoodCost *float64
}

// OwnerCut is one owner's share of the gross profit.
type OwnerCut struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Quote is the full revenue breakdown for one event. All amounts are rounded
// to cents.
type Quote struct {
	GuestCount  int                    `json:"guest_count"`
	PricingSlot rulesModel.PricingSlot `json:"pricing_slot"`

	AdultPrice float64 `json:"adult_price"`
	ChildPrice float64 `json:"child_price"`

	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	Gratuity    float64 `json:"gratuity"`
	DistanceFee float64 `json:"distance_fee"`
	Total       float64 `json:"total"`

	FoodCost      float64 `json:"food_cost"`
	SuppliesCost  float64 `json:"supplies_cost"`
	TransportCost float64 `json:"transport_cost"`
	GrossProfit   float64 `json:"gross_profit"`

	OwnerDistribution []OwnerCut `json:"owner_distribution"`
}

// Revenue is the pre-labor revenue base (subtotal + gratuity) used by the
// labor compensation calculator.
func (q Quote) Revenue() float64 {
	return q.Subtotal + q.Gratuity
}
