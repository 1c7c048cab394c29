package dto

import (
	"banquet/internal/domains/rules/model"
	gDto "banquet/shared/dto"
	gModel "banquet/shared/model"
	"banquet/shared/timezone"

	"github.com/google/uuid"
)

type UpdateRulesRequest struct {
	Doc model.Document `json:"doc" validate:"required"`
}

func (r *UpdateRulesRequest) ToModel(user string) model.Rules {
	return model.Rules{
		ID:     uuid.NewString(),
		Active: true,
		Doc:    r.Doc,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RulesResponse struct {
	ID  string         `json:"id"`
	Doc model.Document `json:"doc"`
	gDto.Metadata
}

func (r *RulesResponse) FromModel(mod model.Rules) {
	r.ID = mod.ID
	r.Doc = mod.Doc
	r.Metadata.FromModel(mod.Metadata)
}
