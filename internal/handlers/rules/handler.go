package rules

import (
	"net/http"

	"banquet/infras/otel"
	"banquet/internal/domains/rules/model/dto"
	"banquet/internal/domains/rules/service"
	"banquet/shared/constant"
	"banquet/shared/validator"
	"banquet/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rules
	otel    otel.Otel
}

func New(service service.Rules, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rules", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRules)
		routerGroup.Put("/", handler.UpdateRules)
	})
}

// GetRules retrieves the active business rules document.
// @Summary Get the business rules
// @Description Retrieve the active pricing, staffing and deposit rules.
// @Tags Rules
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.RulesResponse] "Active business rules"
// @Failure 500 {object} response.Error
// @Router /v1/rules [get]
func (handler *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRules")
	defer scope.End()

	rules, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get business rules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Business rules retrieved successfully")

	response.WithJSON(w, http.StatusOK, rules)
}

// UpdateRules replaces the active business rules document.
// @Summary Update the business rules
// @Description Replace the active rules. Existing bookings keep their pricing snapshots; only new quotes use the updated rules.
// @Tags Rules
// @Accept json
// @Produce json
// @Param request body dto.UpdateRulesRequest true "Update Rules Request"
// @Success 200 {object} response.Message "Business rules updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rules [put]
// @Security BearerAuth
func (handler *Handler) UpdateRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRules")
	defer scope.End()

	req := dto.UpdateRulesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update business rules")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Business rules updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Business rules updated successfully")
}
