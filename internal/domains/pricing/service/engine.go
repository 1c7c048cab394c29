package service

import (
	"banquet/internal/domains/pricing/model"
	rulesModel "banquet/internal/domains/rules/model"
	"banquet/shared/money"
)

// Compute prices one event from the rules document. It is deterministic and
// free of side effects; callers supply everything it reads.
func Compute(doc rulesModel.Document, in model.QuoteInput) model.Quote {
	rates := doc.RatesFor(in.EventType)

	adultPrice := money.RoundCents(rates.AdultPrice + in.PremiumPerGuest)
	childPrice := money.RoundCents(rates.AdultPrice*(1-rates.ChildDiscountPercent/100) + in.PremiumPerGuest)

	guests := in.Adults + in.Children

	subtotal := money.RoundCents(float64(in.Adults)*adultPrice + float64(in.Children)*childPrice)
	if in.OverrideSubtotal != nil {
		subtotal = money.RoundCents(*in.OverrideSubtotal)
	}

	discount := discountAmount(subtotal, in.Discount)

	gratuity := money.Percent(subtotal, doc.GratuityPercent)

	chargeableMiles := max(0, in.DistanceMiles-doc.FreeMiles)
	distanceFee := money.RoundCents(chargeableMiles * doc.PerMileRate)

	total := money.RoundCents(subtotal - discount + gratuity + distanceFee)

	foodCost := money.Percent(subtotal, doc.FoodCostPercent)
	if in.OverrideFoodCost != nil {
		foodCost = money.RoundCents(*in.OverrideFoodCost)
	}

	suppliesCost := money.Percent(subtotal, doc.SuppliesCostPercent)
	transportCost := money.RoundCents(in.DistanceMiles * doc.TransportCostPerMile)

	grossProfit := money.RoundCents(total - foodCost - suppliesCost - transportCost)

	return model.Quote{
		GuestCount:        guests,
		PricingSlot:       doc.SlotFor(in.EventType),
		AdultPrice:        adultPrice,
		ChildPrice:        childPrice,
		Subtotal:          subtotal,
		Discount:          discount,
		Gratuity:          gratuity,
		DistanceFee:       distanceFee,
		Total:             total,
		FoodCost:          foodCost,
		SuppliesCost:      suppliesCost,
		TransportCost:     transportCost,
		GrossProfit:       grossProfit,
		OwnerDistribution: ownerDistribution(doc.OwnerSplit, grossProfit),
	}
}

// discountAmount never exceeds the subtotal it reduces.
func discountAmount(subtotal float64, discount *model.Discount) float64 {
	if discount == nil {
		return 0
	}

	var amount float64

	switch discount.Type {
	case model.DiscountPercent:
		amount = money.Percent(subtotal, discount.Value)
	case model.DiscountFlat:
		amount = money.RoundCents(discount.Value)
	}

	return min(amount, subtotal)
}

func ownerDistribution(split []rulesModel.OwnerShare, grossProfit float64) []model.OwnerCut {
	if len(split) == 0 {
		return nil
	}

	cuts := make([]model.OwnerCut, 0, len(split))
	for _, share := range split {
		cuts = append(cuts, model.OwnerCut{
			Name:   share.Name,
			Amount: money.Percent(grossProfit, share.Percent),
		})
	}

	return cuts
}
