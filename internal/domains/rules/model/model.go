package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"banquet/shared/model"
)

const (
	TableName  = "business_rules"
	EntityName = "business rules"

	FieldID     = "id"
	FieldActive = "active"
	FieldDoc    = "doc"
)

// PricingSlot selects which base-rate table applies to an event type.
type PricingSlot string

const (
	PricingSlotPrimary   PricingSlot = "primary"
	PricingSlotSecondary PricingSlot = "secondary"
)

// RateTable holds the per-guest base prices for one pricing slot.
type RateTable struct {
	AdultPrice           float64 `json:"adult_price"            validate:"required"`
	ChildDiscountPercent float64 `json:"child_discount_percent" validate:"gte=0,lte=100"`
}

// LaborTerms holds the default compensation percentages for one role.
// Cap is an optional ceiling on a slot's total pay; amounts above it are
// tracked as profit overflow, never paid out.
type LaborTerms struct {
	Role                 string   `json:"role" validate:"required"`
	BasePayPercent       float64  `json:"base_pay_percent"       validate:"gte=0,lte=100"`
	GratuitySplitPercent float64  `json:"gratuity_split_percent" validate:"gte=0,lte=100"`
	Cap                  *float64 `json:"cap,omitempty"`
}

// StaffingProfile maps a guest-count range to an ordered list of role slots.
// The first profile whose [min,max] contains the guest count wins.
type StaffingProfile struct {
	MinGuests int      `json:"min_guests" validate:"gte=0"`
	MaxGuests int      `json:"max_guests" validate:"gtefield=MinGuests"`
	Roles     []string `json:"roles"      validate:"required,min=1"`
}

// OwnerShare is one line of the owner-distribution split of gross profit.
type OwnerShare struct {
	Name    string  `json:"name"    validate:"required"`
	Percent float64 `json:"percent" validate:"gte=0,lte=100"`
}

// Document is the full business-rules document driving pricing, staffing and
// deposit terms. It is validated structurally on save; the engine does not
// judge the configured values.
type Document struct {
	Primary   RateTable `json:"primary"   validate:"required"`
	Secondary RateTable `json:"secondary" validate:"required"`

	// EventTypeSlots picks the rate table per event type. Unlisted event
	// types price from the primary table.
	EventTypeSlots map[string]PricingSlot `json:"event_type_slots" validate:"dive,oneof=primary secondary"`

	GratuityPercent float64 `json:"gratuity_percent" validate:"gte=0,lte=100"`
	DepositPercent  float64 `json:"deposit_percent"  validate:"gte=0,lte=100"`

	FreeMiles   float64 `json:"free_miles"    validate:"gte=0"`
	PerMileRate float64 `json:"per_mile_rate" validate:"gte=0"`

	FoodCostPercent      float64 `json:"food_cost_percent"      validate:"gte=0,lte=100"`
	SuppliesCostPercent  float64 `json:"supplies_cost_percent"  validate:"gte=0,lte=100"`
	TransportCostPerMile float64 `json:"transport_cost_per_mile" validate:"gte=0"`

	OwnerSplit []OwnerShare `json:"owner_split" validate:"dive"`

	StaffingProfiles []StaffingProfile `json:"staffing_profiles" validate:"dive"`

	// DefaultStaffing is the fallback role list per event type, used when no
	// profile range matches the guest count.
	DefaultStaffing map[string][]string `json:"default_staffing"`

	LaborTerms []LaborTerms `json:"labor_terms" validate:"dive"`
}

// SlotFor returns the pricing slot configured for the event type.
func (d Document) SlotFor(eventType string) PricingSlot {
	if slot, ok := d.EventTypeSlots[eventType]; ok && slot == PricingSlotSecondary {
		return PricingSlotSecondary
	}

	return PricingSlotPrimary
}

// RatesFor returns the rate table for the event type's pricing slot.
func (d Document) RatesFor(eventType string) RateTable {
	if d.SlotFor(eventType) == PricingSlotSecondary {
		return d.Secondary
	}

	return d.Primary
}

// TermsFor returns the labor terms for a role, or zero terms when the role
// has none configured.
func (d Document) TermsFor(role string) LaborTerms {
	for _, terms := range d.LaborTerms {
		if terms.Role == role {
			return terms
		}
	}

	return LaborTerms{Role: role}
}

// Rules is the persisted row wrapping one rules document. A single active row
// drives the whole engine.
type Rules struct {
	ID     string   `db:"id"`
	Active bool     `db:"active"`
	Doc    Document `db:"doc"`
	model.Metadata
}

// Value implements driver.Valuer so the document persists as JSONB.
func (d Document) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for the JSONB document column.
func (d *Document) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, d)
	case string:
		return json.Unmarshal([]byte(value), d)
	case nil:
		*d = Document{}

		return nil
	default:
		return fmt.Errorf("unsupported type for rules document: %T", src)
	}
}
