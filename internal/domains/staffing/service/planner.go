package service

import (
	"fmt"

	rulesModel "banquet/internal/domains/rules/model"
	"banquet/internal/domains/staffing/model"
)

// BuildPlan derives the required role slots for an event. The first staffing
// profile whose guest-count range contains guestCount wins; when none matches,
// the default role list for the event type is used. Slot ids are derived from
// the role and its ordinal within the plan, so regenerating the plan for the
// same inputs yields the same ids.
func BuildPlan(doc rulesModel.Document, eventType string, guestCount int) model.Plan {
	for _, profile := range doc.StaffingProfiles {
		if guestCount >= profile.MinGuests && guestCount <= profile.MaxGuests {
			return model.Plan{
				Slots:  buildSlots(profile.Roles),
				Source: model.PlanSourceProfile,
			}
		}
	}

	if roles, ok := doc.DefaultStaffing[eventType]; ok && len(roles) > 0 {
		return model.Plan{
			Slots:  buildSlots(roles),
			Source: model.PlanSourceDefault,
		}
	}

	return model.Plan{Source: model.PlanSourceNone}
}

func buildSlots(roles []string) []model.Slot {
	counts := make(map[string]int, len(roles))

	slots := make([]model.Slot, 0, len(roles))
	for _, role := range roles {
		counts[role]++
		slots = append(slots, model.Slot{
			ID:   fmt.Sprintf("%s-%d", role, counts[role]),
			Role: role,
		})
	}

	return slots
}
