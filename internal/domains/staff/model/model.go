package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"banquet/shared/model"
)

const (
	TableName  = "staff_members"
	EntityName = "staff member"

	FieldID             = "id"
	FieldName           = "name"
	FieldPhone          = "phone"
	FieldPrimaryRole    = "primary_role"
	FieldSecondaryRoles = "secondary_roles"
	FieldActive         = "active"
)

// Roles is a JSONB list of role labels.
type Roles []string

func (r Roles) Value() (driver.Value, error) {
	if r == nil {
		return json.Marshal([]string{})
	}

	return json.Marshal(r)
}

func (r *Roles) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, r)
	case string:
		return json.Unmarshal([]byte(value), r)
	case nil:
		*r = nil

		return nil
	default:
		return fmt.Errorf("unsupported type for roles: %T", src)
	}
}

// Staff is one member of the staffing registry. Only active members may be
// assigned to a booking's staffing slots.
type Staff struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	Phone          string `db:"phone"`
	PrimaryRole    string `db:"primary_role"`
	SecondaryRoles Roles  `db:"secondary_roles"`
	Active         bool   `db:"active"`
	model.Metadata
}

// HasRole reports whether the member covers the role as primary or secondary.
func (s Staff) HasRole(role string) bool {
	if s.PrimaryRole == role {
		return true
	}

	for _, secondary := range s.SecondaryRoles {
		if secondary == role {
			return true
		}
	}

	return false
}
