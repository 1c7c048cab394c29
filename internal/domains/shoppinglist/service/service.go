package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"banquet/config"
	"banquet/infras/otel"
	"banquet/internal/domains/shoppinglist/model"
	"banquet/internal/domains/shoppinglist/model/dto"
	"banquet/internal/domains/shoppinglist/repository"
	"banquet/shared"
	"banquet/shared/constant"
	gDto "banquet/shared/dto"
	"banquet/shared/failure"
	gModel "banquet/shared/model"
	"banquet/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Syncer is the narrow hook the booking workflow calls to keep a booking's
// shopping list in step with its lifecycle.
type Syncer interface {
	EnsureForBooking(ctx context.Context, bookingID, eventType string, guestCount int) error
	RemoveForBooking(ctx context.Context, bookingID string) error
}

type ShoppingList interface {
	Syncer

	Create(ctx context.Context, req dto.CreateShoppingListRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetShoppingListsResponse, error)
	Get(ctx context.Context, id string) (dto.ShoppingListResponse, error)
	Update(ctx context.Context, req dto.UpdateShoppingListRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.ShoppingList
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.ShoppingList, cfg *config.Config, otel otel.Otel) ShoppingList {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateShoppingListRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create shopping list")

		return fmt.Errorf("failed to create shopping list: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetShoppingListsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count shopping lists")

		return res, fmt.Errorf("failed to count shopping lists: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shopping lists")

		return res, fmt.Errorf("failed to get shopping lists: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ShoppingListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	list, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get shopping list")

		return res, fmt.Errorf("failed to get shopping list: %w", err)
	}

	if list.ID == constant.Empty {
		return res, failure.NotFound("shopping list not found") // nolint:wrapcheck
	}

	res.FromModel(list)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateShoppingListRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if shopping list exists")

		return fmt.Errorf("failed to check if shopping list exists: %w", err)
	}

	if !exist {
		log.Error().Msg("shopping list not found")

		return failure.NotFound("shopping list not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update shopping list")

		return fmt.Errorf("failed to update shopping list: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if shopping list exists")

		return fmt.Errorf("failed to check if shopping list exists: %w", err)
	}

	if !exist {
		log.Error().Msg("shopping list not found")

		return failure.NotFound("shopping list not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete shopping list")

		return fmt.Errorf("failed to delete shopping list: %w", err)
	}

	return nil
}

// EnsureForBooking creates the booking's list if it does not exist yet. It is
// idempotent so repeated confirm or complete transitions leave one list.
func (s *serviceImpl) EnsureForBooking(ctx context.Context, bookingID, eventType string, guestCount int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := filterByBooking(bookingID)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if shopping list exists for booking")

		return fmt.Errorf("failed to check if shopping list exists for booking: %w", err)
	}

	if exist {
		return nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	list := model.ShoppingList{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Name:      fmt.Sprintf("%s (%d guests)", eventType, guestCount),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, list); err != nil {
		log.Error().Err(err).Msg("failed to create shopping list for booking")

		return fmt.Errorf("failed to create shopping list for booking: %w", err)
	}

	return nil
}

// RemoveForBooking drops the booking's list, if any.
func (s *serviceImpl) RemoveForBooking(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := filterByBooking(bookingID)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if shopping list exists for booking")

		return fmt.Errorf("failed to check if shopping list exists for booking: %w", err)
	}

	if !exist {
		return nil
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to remove shopping list for booking")

		return fmt.Errorf("failed to remove shopping list for booking: %w", err)
	}

	return nil
}

func filterByBooking(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
