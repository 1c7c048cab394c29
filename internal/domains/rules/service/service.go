package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"banquet/config"
	"banquet/infras/otel"
	"banquet/internal/domains/rules/model"
	"banquet/internal/domains/rules/model/dto"
	"banquet/internal/domains/rules/repository"
	"banquet/shared"
	"banquet/shared/cache"
	"banquet/shared/constant"
	gDto "banquet/shared/dto"
	"banquet/shared/failure"
	"banquet/shared/timezone"
	"banquet/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheActiveRules = "rules:active"
)

type Rules interface {
	Active(ctx context.Context) (model.Document, error)
	Get(ctx context.Context) (dto.RulesResponse, error)
	Update(ctx context.Context, req dto.UpdateRulesRequest) error
}

type serviceImpl struct {
	repo  repository.Rules
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Rules, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Rules {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func activeFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}
}

// Active returns the rules document driving pricing, staffing and deposit
// terms. Deposit percent falls back to the configured engine default when the
// document leaves it unset.
func (s *serviceImpl) Active(ctx context.Context) (doc model.Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Active")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheActiveRules, &doc)
	if err == nil {
		return s.withDefaults(doc), nil
	}

	rules, err := s.repo.Get(ctx, activeFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get active business rules")

		return doc, fmt.Errorf("failed to get active business rules: %w", err)
	}

	if rules.ID == constant.Empty {
		return doc, failure.NotFound("active business rules") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheActiveRules, rules.Doc, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save business rules to cache")
		}
	}()

	return s.withDefaults(rules.Doc), nil
}

func (s *serviceImpl) withDefaults(doc model.Document) model.Document {
	if doc.DepositPercent == 0 {
		doc.DepositPercent = s.cfg.Engine.DefaultDepositPercent
	}

	return doc
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.RulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	rules, err := s.repo.Get(ctx, activeFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get business rules")

		return res, fmt.Errorf("failed to get business rules: %w", err)
	}

	if rules.ID == constant.Empty {
		return res, failure.NotFound("active business rules") // nolint:wrapcheck
	}

	res.FromModel(rules)

	return res, nil
}

// Update replaces the active rules document. Only structural consistency is
// checked; the configured values themselves are the operator's business.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRulesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req.Doc); err != nil {
		return err // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.Exist(ctx, activeFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to check if business rules exist")

		return fmt.Errorf("failed to check if business rules exist: %w", err)
	}

	if exists {
		updated := map[string]any{
			model.FieldDoc:           req.Doc,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err = s.repo.Update(ctx, updated, activeFilter()); err != nil {
			log.Error().Err(err).Msg("failed to update business rules")

			return fmt.Errorf("failed to update business rules: %w", err)
		}
	} else {
		if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
			log.Error().Err(err).Msg("failed to create business rules")

			return fmt.Errorf("failed to create business rules: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheActiveRules)
	}()

	return nil
}
