package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"banquet/shared/model"
)

const (
	TableName  = "shopping_lists"
	EntityName = "shopping list"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldName      = "name"
	FieldItems     = "items"
)

// Item is one line of a shopping list.
type Item struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Purchased bool    `json:"purchased"`
}

// Items is the JSONB item list.
type Items []Item

func (i Items) Value() (driver.Value, error) {
	if i == nil {
		return json.Marshal([]Item{})
	}

	return json.Marshal(i)
}

func (i *Items) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, i)
	case string:
		return json.Unmarshal([]byte(value), i)
	case nil:
		*i = nil

		return nil
	default:
		return fmt.Errorf("unsupported type for shopping list items: %T", src)
	}
}

// ShoppingList is the purchasing checklist linked to one booking. At most one
// list exists per booking; it is created on confirmation and removed with the
// booking.
type ShoppingList struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	Name      string `db:"name"`
	Items     Items  `db:"items"`
	model.Metadata
}
