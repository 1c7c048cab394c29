package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"banquet/config"
	"banquet/infras/otel/mocks"
	staffMocks "banquet/internal/domains/staff/mocks"
	"banquet/internal/domains/staff/model"
	"banquet/internal/domains/staff/model/dto"
	"banquet/internal/domains/staff/service"
	cacheMocks "banquet/shared/cache/mocks"
	"banquet/shared/constant"
	gModel "banquet/shared/model"
	"banquet/shared/timezone"
)

func newStaffService(t *testing.T) (service.Staff, *staffMocks.MockStaff, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := staffMocks.NewMockStaff(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func activeStaff() model.Staff {
	return model.Staff{
		ID:             "staff-id-123",
		Name:           "Ana Ruiz",
		Phone:          "555-0100",
		PrimaryRole:    "lead",
		SecondaryRoles: model.Roles{"server"},
		Active:         true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestStaffService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	tests := []struct {
		name      string
		req       dto.CreateStaffRequest
		setupMock func(repo *staffMocks.MockStaff)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateStaffRequest{
				Name:           "Ana Ruiz",
				PrimaryRole:    "lead",
				SecondaryRoles: []string{"server"},
			},
			setupMock: func(repo *staffMocks.MockStaff) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, staff model.Staff) error {
						assert.True(t, staff.Active)
						assert.Equal(t, "lead", staff.PrimaryRole)
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateStaffRequest{
				Name:        "Ana Ruiz",
				PrimaryRole: "lead",
			},
			setupMock: func(repo *staffMocks.MockStaff) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newStaffService(t)
			tt.setupMock(repo)

			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStaffService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *staffMocks.MockStaff, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache miss, found in db",
			id:   "staff-id-123",
			setupMock: func(repo *staffMocks.MockStaff, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeStaff(), nil)
			},
			wantErr: false,
			wantID:  "staff-id-123",
		},
		{
			name: "not found",
			id:   "nonexistent-id",
			setupMock: func(repo *staffMocks.MockStaff, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Staff{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "staff-id-123",
			setupMock: func(repo *staffMocks.MockStaff, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Staff{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newStaffService(t)
			tt.setupMock(repo, cache)

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
			}
		})
	}
}

func TestStaffService_Update(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("successful update", func(t *testing.T) {
		svc, repo, _ := newStaffService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(ctx, dto.UpdateStaffRequest{Name: "Ana R."}, "staff-id-123")
		assert.NoError(t, err)
	})

	t.Run("unknown staff member", func(t *testing.T) {
		svc, repo, _ := newStaffService(t)

		repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(ctx, dto.UpdateStaffRequest{Name: "Ana R."}, "nonexistent-id")
		assert.Error(t, err)
	})
}
