package payment

import (
	"net/http"

	"banquet/infras/otel"
	"banquet/internal/domains/payment/model"
	"banquet/internal/domains/payment/model/dto"
	"banquet/internal/domains/payment/service"
	"banquet/shared/constant"
	gDto "banquet/shared/dto"
	"banquet/shared/validator"
	"banquet/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Ledger
	otel    otel.Otel
}

func New(service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPayments)
	})

	// Booking-scoped ledger routes are registered directly so they do not
	// mount over the booking subrouter.
	router.Post("/bookings/{id}/payments", handler.ApplyPayment)
	router.Post("/bookings/{id}/refunds", handler.ApplyRefund)
	router.Get("/bookings/{id}/labor", handler.GetLaborPayments)
}

// ApplyPayment records a customer payment against a booking.
// @Summary Record a customer payment
// @Description Record a deposit or balance payment. Fully paid pending bookings are promoted to confirmed.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ApplyPaymentRequest true "Apply Payment Request"
// @Success 201 {object} response.Data[dto.LedgerResponse] "Payment recorded with the updated ledger state"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments [post]
// @Security BearerAuth
func (handler *Handler) ApplyPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApplyPayment")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	req := dto.ApplyPaymentRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	ledger, err := handler.service.ApplyPayment(ctx, req, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to apply payment")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payment recorded successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, ledger)
}

// ApplyRefund records a refund and cancels the booking.
// @Summary Record a refund
// @Description Refund up to the amount paid. The booking is cancelled and its labor records are released.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ApplyRefundRequest true "Apply Refund Request"
// @Success 201 {object} response.Data[dto.LedgerResponse] "Refund recorded with the updated ledger state"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/refunds [post]
// @Security BearerAuth
func (handler *Handler) ApplyRefund(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApplyRefund")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	req := dto.ApplyRefundRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	ledger, err := handler.service.ApplyRefund(ctx, req, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to apply refund")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Refund recorded successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, ledger)
}

// GetPayments retrieves customer payments based on query parameters.
// @Summary Get customer payments
// @Description Retrieve customer payments with optional filtering and pagination.
// @Tags Payment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_id query string false "Filter by booking"
// @Param type query string false "Filter by entry type (deposit, payment, refund)"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "List of payments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [get]
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookingID := r.URL.Query().Get(model.FieldBookingID)
	paymentType := r.URL.Query().Get(model.FieldType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if bookingID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.CustomerPaymentTableName,
		})
	}

	if paymentType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    paymentType,
			Table:    model.CustomerPaymentTableName,
		})
	}

	payments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payments retrieved successfully")

	response.WithJSON(w, http.StatusOK, payments)
}

// GetLaborPayments retrieves the labor payment records of a booking.
// @Summary Get labor payments for a booking
// @Description Retrieve the per-slot labor payment records generated when the booking was completed.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.GetLaborPaymentsResponse] "Labor payment records"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/labor [get]
func (handler *Handler) GetLaborPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLaborPayments")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamID)

	labor, err := handler.service.GetLaborForBooking(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get labor payments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Labor payments retrieved successfully")

	response.WithJSON(w, http.StatusOK, labor)
}
