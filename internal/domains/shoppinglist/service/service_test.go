package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"banquet/config"
	"banquet/infras/otel/mocks"
	listMocks "banquet/internal/domains/shoppinglist/mocks"
	"banquet/internal/domains/shoppinglist/model"
	"banquet/internal/domains/shoppinglist/service"
)

func newShoppingListService(t *testing.T) (service.ShoppingList, *listMocks.MockShoppingListRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := listMocks.NewMockShoppingListRepository(ctrl)

	return service.New(mockRepo, &config.Config{}, mocks.NewOtel()), mockRepo
}

func TestShoppingListService_EnsureForBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("creates list when none exists", func(t *testing.T) {
		svc, repo := newShoppingListService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, list model.ShoppingList) error {
				assert.NotEmpty(t, list.ID)
				assert.Equal(t, "booking-id-123", list.BookingID)
				assert.Equal(t, "wedding (40 guests)", list.Name)
				return nil
			})

		err := svc.EnsureForBooking(ctx, "booking-id-123", "wedding", 40)
		assert.NoError(t, err)
	})

	t.Run("does nothing when list already exists", func(t *testing.T) {
		svc, repo := newShoppingListService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.EnsureForBooking(ctx, "booking-id-123", "wedding", 40)
		assert.NoError(t, err)
	})

	t.Run("existence check failure", func(t *testing.T) {
		svc, repo := newShoppingListService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("database error"))

		err := svc.EnsureForBooking(ctx, "booking-id-123", "wedding", 40)
		assert.Error(t, err)
	})
}

func TestShoppingListService_RemoveForBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("removes existing list", func(t *testing.T) {
		svc, repo := newShoppingListService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.RemoveForBooking(ctx, "booking-id-123")
		assert.NoError(t, err)
	})

	t.Run("no list is not an error", func(t *testing.T) {
		svc, repo := newShoppingListService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.RemoveForBooking(ctx, "booking-id-123")
		assert.NoError(t, err)
	})
}

func TestShoppingListService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setupMock func(repo *listMocks.MockShoppingListRepository)
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(repo *listMocks.MockShoppingListRepository) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.ShoppingList{
						ID:        "list-id-123",
						BookingID: "booking-id-123",
						Name:      "wedding (40 guests)",
						Items: model.Items{
							{Name: "chafing fuel", Quantity: 12, Unit: "cans"},
						},
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func(repo *listMocks.MockShoppingListRepository) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.ShoppingList{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func(repo *listMocks.MockShoppingListRepository) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.ShoppingList{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newShoppingListService(t)
			tt.setupMock(repo)

			res, err := svc.Get(ctx, "list-id-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "list-id-123", res.ID)
				assert.Len(t, res.Items, 1)
			}
		})
	}
}
