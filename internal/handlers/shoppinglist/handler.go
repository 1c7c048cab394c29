package shoppinglist

import (
	"net/http"

	"banquet/infras/otel"
	"banquet/internal/domains/shoppinglist/model"
	"banquet/internal/domains/shoppinglist/model/dto"
	"banquet/internal/domains/shoppinglist/service"
	"banquet/shared/constant"
	gDto "banquet/shared/dto"
	"banquet/shared/validator"
	"banquet/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ShoppingList
	otel    otel.Otel
}

func New(service service.ShoppingList, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/shopping-lists", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateShoppingList)
		routerGroup.Get("/", handler.GetShoppingLists)
		routerGroup.Get("/{id}", handler.GetShoppingListByID)
		routerGroup.Patch("/{id}", handler.UpdateShoppingList)
		routerGroup.Delete("/{id}", handler.DeleteShoppingList)
	})
}

// CreateShoppingList handles the creation of a new shopping list.
// @Summary Create a shopping list
// @Description Create a shopping list linked to a booking.
// @Tags ShoppingList
// @Accept json
// @Produce json
// @Param request body dto.CreateShoppingListRequest true "Create Shopping List Request"
// @Success 201 {object} response.Message "Shopping list created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shopping-lists [post]
// @Security BearerAuth
func (handler *Handler) CreateShoppingList(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateShoppingList")
	defer scope.End()

	req := dto.CreateShoppingListRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create shopping list")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Shopping list created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Shopping list created successfully")
}

// GetShoppingLists retrieves all shopping lists based on query parameters.
// @Summary Get all shopping lists
// @Description Retrieve all shopping lists with optional filtering and pagination.
// @Tags ShoppingList
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_id query string false "Filter by booking"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetShoppingListsResponse] "List of shopping lists"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shopping-lists [get]
func (handler *Handler) GetShoppingLists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShoppingLists")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookingID := r.URL.Query().Get(model.FieldBookingID)
	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if bookingID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.TableName,
		})
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	lists, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shopping lists")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shopping lists retrieved successfully")

	response.WithJSON(w, http.StatusOK, lists)
}

// GetShoppingListByID retrieves a shopping list by its ID.
// @Summary Get a shopping list by ID
// @Description Retrieve a shopping list by its unique identifier.
// @Tags ShoppingList
// @Accept json
// @Produce json
// @Param id path string true "Shopping List ID"
// @Success 200 {object} response.Data[dto.ShoppingListResponse] "Shopping list details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shopping-lists/{id} [get]
func (handler *Handler) GetShoppingListByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShoppingListByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	list, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shopping list by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shopping list retrieved successfully")

	response.WithJSON(w, http.StatusOK, list)
}

// UpdateShoppingList updates an existing shopping list by its ID.
// @Summary Update a shopping list by ID
// @Description Update the name or items of an existing shopping list.
// @Tags ShoppingList
// @Accept json
// @Produce json
// @Param id path string true "Shopping List ID"
// @Param request body dto.UpdateShoppingListRequest true "Update Shopping List Request"
// @Success 200 {object} response.Message "Shopping list updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shopping-lists/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateShoppingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateShoppingList")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateShoppingListRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update shopping list")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Shopping list updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Shopping list updated successfully")
}

// DeleteShoppingList deletes a shopping list by its ID.
// @Summary Delete a shopping list by ID
// @Description Delete a shopping list using its unique identifier.
// @Tags ShoppingList
// @Accept json
// @Produce json
// @Param id path string true "Shopping List ID"
// @Success 200 {object} response.Message "Shopping list deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shopping-lists/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteShoppingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteShoppingList")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete shopping list")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Shopping list deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Shopping list deleted successfully")
}
