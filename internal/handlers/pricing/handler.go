package pricing

import (
	"net/http"

	"banquet/infras/otel"
	"banquet/internal/domains/pricing/model/dto"
	"banquet/internal/domains/pricing/service"
	"banquet/shared/constant"
	"banquet/shared/validator"
	"banquet/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quotes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Quote)
	})
}

// Quote computes an event price quote without persisting anything.
// @Summary Compute a price quote
// @Description Compute the full price breakdown for an event using the active business rules.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Price breakdown"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes [post]
func (handler *Handler) Quote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute quote")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Quote computed successfully")

	response.WithJSON(writer, http.StatusOK, quote)
}
