package service

import (
	"context"
	"fmt"

	"banquet/infras/otel"
	pricingService "banquet/internal/domains/pricing/service"
	"banquet/internal/domains/staffing/model/dto"
	rulesService "banquet/internal/domains/rules/service"
	"banquet/shared/constant"
	"banquet/shared/failure"

	"github.com/rs/zerolog/log"
)

type Staffing interface {
	Plan(ctx context.Context, req dto.PlanRequest) (dto.PlanResponse, error)
	Compensation(ctx context.Context, req dto.CompensationRequest) (dto.CompensationResponse, error)
}

type serviceImpl struct {
	rules rulesService.Rules
	otel  otel.Otel
}

func New(rules rulesService.Rules, otel otel.Otel) Staffing {
	return &serviceImpl{
		rules: rules,
		otel:  otel,
	}
}

func (s *serviceImpl) Plan(ctx context.Context, req dto.PlanRequest) (res dto.PlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Plan")
	defer scope.End()
	defer scope.TraceIfError(err)

	doc, err := s.rules.Active(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load business rules for staffing plan")

		return res, fmt.Errorf("failed to load business rules for staffing plan: %w", err)
	}

	res.GuestCount = req.Adults + req.Children
	res.Plan = BuildPlan(doc, req.EventType, res.GuestCount)

	return res, nil
}

func (s *serviceImpl) Compensation(ctx context.Context, req dto.CompensationRequest) (res dto.CompensationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Compensation")
	defer scope.End()
	defer scope.TraceIfError(err)

	input, err := req.ToInput()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse compensation request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid event date: %v", err)) // nolint:wrapcheck
	}

	doc, err := s.rules.Active(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load business rules for compensation")

		return res, fmt.Errorf("failed to load business rules for compensation: %w", err)
	}

	quote := pricingService.Compute(doc, input)

	res.Plan = BuildPlan(doc, input.EventType, quote.GuestCount)
	res.Revenue = quote.Revenue()
	res.GratuityPool = quote.Gratuity
	res.Compensation = Compensate(doc, res.Plan, res.Revenue, res.GratuityPool, req.Overrides)

	return res, nil
}
