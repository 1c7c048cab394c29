package service

import (
	rulesModel "banquet/internal/domains/rules/model"
	"banquet/internal/domains/staffing/model"
	"banquet/shared/money"
)

// Compensate computes the payout for each staffing slot. Base pay is a
// percentage of the pre-labor revenue (subtotal plus gratuity) and the
// gratuity share is a percentage of the gratuity pool. A configured cap
// clamps the slot's total; the clamped amount is tracked as excess to profit,
// never paid out. Overrides replace the configured terms for the slot they
// name.
func Compensate(doc rulesModel.Document, plan model.Plan, revenue, gratuityPool float64, overrides []model.PayOverride) model.Compensation {
	byslot := make(map[string]model.PayOverride, len(overrides))
	for _, override := range overrides {
		byslot[override.SlotID] = override
	}

	comp := model.Compensation{
		Slots: make([]model.SlotPay, 0, len(plan.Slots)),
	}

	for _, slot := range plan.Slots {
		terms := doc.TermsFor(slot.Role)
		if override, ok := byslot[slot.ID]; ok {
			terms = applyOverride(terms, override)
		}

		basePay := money.Percent(revenue, terms.BasePayPercent)
		gratuityShare := money.Percent(gratuityPool, terms.GratuitySplitPercent)
		finalPay := money.RoundCents(basePay + gratuityShare)

		var excess float64
		if terms.Cap != nil && finalPay > *terms.Cap {
			excess = money.RoundCents(finalPay - *terms.Cap)
			finalPay = money.RoundCents(*terms.Cap)
		}

		comp.Slots = append(comp.Slots, model.SlotPay{
			SlotID:         slot.ID,
			Role:           slot.Role,
			BasePay:        basePay,
			GratuityShare:  gratuityShare,
			FinalPay:       finalPay,
			ExcessToProfit: excess,
		})

		comp.TotalPay = money.RoundCents(comp.TotalPay + finalPay)
		comp.ExcessToProfit = money.RoundCents(comp.ExcessToProfit + excess)
	}

	return comp
}

func applyOverride(terms rulesModel.LaborTerms, override model.PayOverride) rulesModel.LaborTerms {
	if override.BasePayPercent != nil {
		terms.BasePayPercent = *override.BasePayPercent
	}

	if override.GratuitySplitPercent != nil {
		terms.GratuitySplitPercent = *override.GratuitySplitPercent
	}

	if override.Cap != nil {
		terms.Cap = override.Cap
	}

	return terms
}
