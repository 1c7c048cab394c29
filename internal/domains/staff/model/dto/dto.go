package dto

import (
	"banquet/internal/domains/staff/model"
	"banquet/shared"
	gDto "banquet/shared/dto"
	gModel "banquet/shared/model"
	"banquet/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Name           string   `json:"name"            validate:"required,max=100"`
	Phone          string   `json:"phone"           validate:"omitempty,max=30"`
	PrimaryRole    string   `json:"primary_role"    validate:"required,max=50"`
	SecondaryRoles []string `json:"secondary_roles" validate:"omitempty,dive,max=50"`
	Active         *bool    `json:"active"          validate:"omitempty"`
}

func (c *CreateStaffRequest) ToModel(user string) model.Staff {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Staff{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Phone:          c.Phone,
		PrimaryRole:    c.PrimaryRole,
		SecondaryRoles: model.Roles(c.SecondaryRoles),
		Active:         active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStaffRequest struct {
	Name           string       `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Phone          *string      `db:"phone"           json:"phone"           validate:"omitempty,max=30"`
	PrimaryRole    string       `db:"primary_role"    json:"primary_role"    validate:"omitempty,max=50"`
	SecondaryRoles *model.Roles `db:"secondary_roles" json:"secondary_roles" validate:"omitempty,dive,max=50"`
	Active         *bool        `db:"active"          json:"active"          validate:"omitempty"`
}

type StaffResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	PrimaryRole    string   `json:"primary_role"`
	SecondaryRoles []string `json:"secondary_roles"`
	Active         bool     `json:"active"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.PrimaryRole = model.PrimaryRole
	r.SecondaryRoles = model.SecondaryRoles
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffsResponse struct {
	Staffs    []StaffResponse `json:"staffs"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffsResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staffs = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staffs[i].FromModel(mod)
	}
}
