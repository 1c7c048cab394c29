package dto

import (
	pricingDto "banquet/internal/domains/pricing/model/dto"
	"banquet/internal/domains/staffing/model"
)

type PlanRequest struct {
	EventType string `json:"event_type" validate:"required"`
	Adults    int    `json:"adults"     validate:"gte=0"`
	Children  int    `json:"children"   validate:"gte=0"`
}

type PlanResponse struct {
	GuestCount int        `json:"guest_count"`
	Plan       model.Plan `json:"plan"`
}

// CompensationRequest prices the event and breaks the labor payout down per
// staffing slot in one call.
type CompensationRequest struct {
	pricingDto.QuoteRequest

	Overrides []model.PayOverride `json:"overrides,omitempty" validate:"dive"`
}

type CompensationResponse struct {
	Plan         model.Plan         `json:"plan"`
	Revenue      float64            `json:"revenue"`
	GratuityPool float64            `json:"gratuity_pool"`
	Compensation model.Compensation `json:"compensation"`
}
