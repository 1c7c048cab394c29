package service

import (
	"context"
	"fmt"

	"banquet/infras/otel"
	"banquet/internal/domains/pricing/model/dto"
	rulesService "banquet/internal/domains/rules/service"
	"banquet/shared/constant"
	"banquet/shared/failure"

	"github.com/rs/zerolog/log"
)

type Pricing interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	rules rulesService.Rules
	otel  otel.Otel
}

func New(rules rulesService.Rules, otel otel.Otel) Pricing {
	return &serviceImpl{
		rules: rules,
		otel:  otel,
	}
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	input, err := req.ToInput()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse quote request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid event date: %v", err)) // nolint:wrapcheck
	}

	doc, err := s.rules.Active(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load business rules for quote")

		return res, fmt.Errorf("failed to load business rules for quote: %w", err)
	}

	res.Quote = Compute(doc, input)

	return res, nil
}
