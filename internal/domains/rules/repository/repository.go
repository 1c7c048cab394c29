package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Rules=MockRulesRepository

import (
	"context"

	"banquet/infras/otel"
	"banquet/infras/postgres"
	"banquet/internal/domains/rules/model"
	gDto "banquet/shared/dto"
	gRepo "banquet/shared/repository"
)

type Rules interface {
	Insert(ctx context.Context, model model.Rules) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Rules, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Rules]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rules {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rules](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
