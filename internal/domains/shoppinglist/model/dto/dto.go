package dto

import (
	"banquet/internal/domains/shoppinglist/model"
	"banquet/shared"
	gDto "banquet/shared/dto"
	gModel "banquet/shared/model"
	"banquet/shared/timezone"

	"github.com/google/uuid"
)

type CreateShoppingListRequest struct {
	BookingID string       `json:"booking_id" validate:"required"`
	Name      string       `json:"name"       validate:"required,max=150"`
	Items     []model.Item `json:"items"      validate:"omitempty,dive"`
}

func (c *CreateShoppingListRequest) ToModel(user string) model.ShoppingList {
	return model.ShoppingList{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		Name:      c.Name,
		Items:     model.Items(c.Items),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateShoppingListRequest struct {
	Name  string       `db:"name"  json:"name"  validate:"omitempty,max=150"`
	Items *model.Items `db:"items" json:"items" validate:"omitempty,dive"`
}

type ShoppingListResponse struct {
	ID        string       `json:"id"`
	BookingID string       `json:"booking_id"`
	Name      string       `json:"name"`
	Items     []model.Item `json:"items"`
	gDto.Metadata
}

func (r *ShoppingListResponse) FromModel(model model.ShoppingList) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Name = model.Name
	r.Items = model.Items
	r.Metadata.FromModel(model.Metadata)
}

type GetShoppingListsResponse struct {
	ShoppingLists []ShoppingListResponse `json:"shopping_lists"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetShoppingListsResponse) FromModels(models []model.ShoppingList, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ShoppingLists = make([]ShoppingListResponse, len(models))
	for i, mod := range models {
		r.ShoppingLists[i].FromModel(mod)
	}
}
