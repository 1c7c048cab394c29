package service

import (
	"testing"

	rulesModel "banquet/internal/domains/rules/model"
	"banquet/internal/domains/staffing/model"

	"github.com/stretchr/testify/assert"
)

func staffingDocument() rulesModel.Document {
	return rulesModel.Document{
		StaffingProfiles: []rulesModel.StaffingProfile{
			{MinGuests: 0, MaxGuests: 25, Roles: []string{"lead", "assistant"}},
			{MinGuests: 26, MaxGuests: 75, Roles: []string{"lead", "full", "buffet", "assistant"}},
		},
		DefaultStaffing: map[string][]string{
			"drop_off": {"lead"},
		},
	}
}

func TestBuildPlan(t *testing.T) {
	t.Run("first matching profile range wins", func(t *testing.T) {
		plan := BuildPlan(staffingDocument(), "wedding", 20)

		assert.Equal(t, model.PlanSourceProfile, plan.Source)
		assert.Equal(t, []string{"lead", "assistant"}, plan.Roles())
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		assert.Len(t, BuildPlan(staffingDocument(), "wedding", 25).Slots, 2)
		assert.Len(t, BuildPlan(staffingDocument(), "wedding", 26).Slots, 4)
	})

	t.Run("falls back to the event type default when no range matches", func(t *testing.T) {
		plan := BuildPlan(staffingDocument(), "drop_off", 200)

		assert.Equal(t, model.PlanSourceDefault, plan.Source)
		assert.Equal(t, []string{"lead"}, plan.Roles())
	})

	t.Run("no profile and no default yields an empty plan", func(t *testing.T) {
		plan := BuildPlan(staffingDocument(), "wedding", 200)

		assert.Equal(t, model.PlanSourceNone, plan.Source)
		assert.Empty(t, plan.Slots)
	})

	t.Run("repeated roles get distinct stable slot ids", func(t *testing.T) {
		doc := rulesModel.Document{
			StaffingProfiles: []rulesModel.StaffingProfile{
				{MinGuests: 0, MaxGuests: 100, Roles: []string{"lead", "server", "server", "server"}},
			},
		}

		plan := BuildPlan(doc, "wedding", 40)

		ids := make([]string, 0, len(plan.Slots))
		for _, slot := range plan.Slots {
			ids = append(ids, slot.ID)
		}

		assert.Equal(t, []string{"lead-1", "server-1", "server-2", "server-3"}, ids)
		assert.Equal(t, plan, BuildPlan(doc, "wedding", 40))
	})
}
