package dto

import (
	"time"

	"banquet/internal/domains/pricing/model"
	"banquet/shared/constant"
)

type QuoteRequest struct {
	EventType       string          `json:"event_type" validate:"required"`
	EventDate       string          `json:"event_date" validate:"required"`
	Adults          int             `json:"adults"     validate:"gte=0"`
	Children        int             `json:"children"   validate:"gte=0"`
	DistanceMiles   float64         `json:"distance_miles"    validate:"gte=0"`
	PremiumPerGuest float64         `json:"premium_per_guest" validate:"gte=0"`
	Discount        *model.Discount `json:"discount,omitempty"`

	OverrideSubtotal *float64 `json:"override_subtotal,omitempty"`
	OverrideFoodCost *float64 `json:"override_food_cost,omitempty"`
}

func (r *QuoteRequest) ToInput() (model.QuoteInput, error) {
	eventDate, err := time.Parse(constant.EventDateFormat, r.EventDate)
	if err != nil {
		return model.QuoteInput{}, err
	}

	return model.QuoteInput{
		EventType:        r.EventType,
		EventDate:        eventDate,
		Adults:           r.Adults,
		Children:         r.Children,
		DistanceMiles:    r.DistanceMiles,
		PremiumPerGuest:  r.PremiumPerGuest,
		Discount:         r.Discount,
		OverrideSubtotal: r.OverrideSubtotal,
		OverrideFoodCost: r.OverrideFoodCost,
	}, nil
}

type QuoteResponse struct {
	Quote model.Quote `json:"quote"`
}
