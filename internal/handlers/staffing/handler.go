package staffing

import (
	"net/http"

	"banquet/infras/otel"
	"banquet/internal/domains/staffing/model/dto"
	"banquet/internal/domains/staffing/service"
	"banquet/shared/constant"
	"banquet/shared/validator"
	"banquet/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Staffing
	otel    otel.Otel
}

func New(service service.Staffing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staffing", func(routerGroup chi.Router) {
		routerGroup.Post("/plan", handler.Plan)
		routerGroup.Post("/compensation", handler.Compensation)
	})
}

// Plan builds a default staffing plan for an event.
// @Summary Build a staffing plan
// @Description Build the default role slots for an event type and guest count using the active business rules.
// @Tags Staffing
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Plan Request"
// @Success 200 {object} response.Data[dto.PlanResponse] "Staffing plan"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staffing/plan [post]
func (handler *Handler) Plan(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Plan")
	defer scope.End()

	req := dto.PlanRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	plan, err := handler.service.Plan(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build staffing plan")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Staffing plan built successfully")

	response.WithJSON(writer, http.StatusOK, plan)
}

// Compensation computes per-role labor pay for an event.
// @Summary Compute labor compensation
// @Description Compute estimated pay per role slot from the event revenue and the active labor terms.
// @Tags Staffing
// @Accept json
// @Produce json
// @Param request body dto.CompensationRequest true "Compensation Request"
// @Success 200 {object} response.Data[dto.CompensationResponse] "Labor compensation breakdown"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staffing/compensation [post]
func (handler *Handler) Compensation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Compensation")
	defer scope.End()

	req := dto.CompensationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	compensation, err := handler.service.Compensation(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute labor compensation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Labor compensation computed successfully")

	response.WithJSON(writer, http.StatusOK, compensation)
}
