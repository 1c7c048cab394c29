package service

import (
	"testing"

	rulesModel "banquet/internal/domains/rules/model"
	"banquet/internal/domains/staffing/model"
	"banquet/shared/money"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestCompensate(t *testing.T) {
	doc := rulesModel.Document{
		LaborTerms: []rulesModel.LaborTerms{
			{Role: "lead", BasePayPercent: 10, GratuitySplitPercent: 40},
			{Role: "assistant", BasePayPercent: 5, GratuitySplitPercent: 20, Cap: floatPtr(150)},
		},
	}
	plan := model.Plan{
		Source: model.PlanSourceProfile,
		Slots: []model.Slot{
			{ID: "lead-1", Role: "lead"},
			{ID: "assistant-1", Role: "assistant"},
		},
	}

	t.Run("base pay from revenue and gratuity share from the pool", func(t *testing.T) {
		comp := Compensate(doc, plan, 1680, 280, nil)

		lead := comp.Slots[0]
		assert.InDelta(t, 168.00, lead.BasePay, money.Epsilon)
		assert.InDelta(t, 112.00, lead.GratuityShare, money.Epsilon)
		assert.InDelta(t, 280.00, lead.FinalPay, money.Epsilon)
		assert.InDelta(t, 0.00, lead.ExcessToProfit, money.Epsilon)
	})

	t.Run("cap clamps final pay and tracks the overflow", func(t *testing.T) {
		comp := Compensate(doc, plan, 1680, 280, nil)

		assistant := comp.Slots[1]
		assert.InDelta(t, 84.00, assistant.BasePay, money.Epsilon)
		assert.InDelta(t, 56.00, assistant.GratuityShare, money.Epsilon)
		assert.InDelta(t, 140.00, assistant.FinalPay, money.Epsilon)
		assert.InDelta(t, 0.00, assistant.ExcessToProfit, money.Epsilon)

		comp = Compensate(doc, plan, 2400, 400, nil)

		assistant = comp.Slots[1]
		assert.InDelta(t, 200.00, assistant.BasePay+assistant.GratuityShare, money.Epsilon)
		assert.InDelta(t, 150.00, assistant.FinalPay, money.Epsilon)
		assert.InDelta(t, 50.00, assistant.ExcessToProfit, money.Epsilon)
		assert.InDelta(t, 50.00, comp.ExcessToProfit, money.Epsilon)
	})

	t.Run("override replaces terms for the slot it names only", func(t *testing.T) {
		overrides := []model.PayOverride{
			{SlotID: "lead-1", BasePayPercent: floatPtr(15), GratuitySplitPercent: floatPtr(0)},
		}

		comp := Compensate(doc, plan, 1680, 280, overrides)

		assert.InDelta(t, 252.00, comp.Slots[0].FinalPay, money.Epsilon)
		assert.InDelta(t, 140.00, comp.Slots[1].FinalPay, money.Epsilon)
	})

	t.Run("override can add a cap", func(t *testing.T) {
		overrides := []model.PayOverride{
			{SlotID: "lead-1", Cap: floatPtr(200)},
		}

		comp := Compensate(doc, plan, 1680, 280, overrides)

		assert.InDelta(t, 200.00, comp.Slots[0].FinalPay, money.Epsilon)
		assert.InDelta(t, 80.00, comp.Slots[0].ExcessToProfit, money.Epsilon)
	})

	t.Run("role without configured terms is paid nothing", func(t *testing.T) {
		bare := model.Plan{Slots: []model.Slot{{ID: "driver-1", Role: "driver"}}}

		comp := Compensate(doc, bare, 1680, 280, nil)

		assert.InDelta(t, 0.00, comp.Slots[0].FinalPay, money.Epsilon)
		assert.InDelta(t, 0.00, comp.TotalPay, money.Epsilon)
	})

	t.Run("totals sum across slots", func(t *testing.T) {
		comp := Compensate(doc, plan, 1680, 280, nil)

		assert.InDelta(t, 420.00, comp.TotalPay, money.Epsilon)
	})
}
