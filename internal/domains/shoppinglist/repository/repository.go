package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=ShoppingList=MockShoppingListRepository

import (
	"context"

	"banquet/infras/otel"
	"banquet/infras/postgres"
	"banquet/internal/domains/shoppinglist/model"
	gDto "banquet/shared/dto"
	gRepo "banquet/shared/repository"
)

type ShoppingList interface {
	Insert(ctx context.Context, model model.ShoppingList) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ShoppingList, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ShoppingList, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ShoppingList]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ShoppingList {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ShoppingList](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
