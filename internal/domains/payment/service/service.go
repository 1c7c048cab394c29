package service

import (
	"context"
	"encoding/json"
	"fmt"

	"banquet/config"
	"banquet/infras/otel"
	"banquet/infras/s3"
	bookingModel "banquet/internal/domains/booking/model"
	bookingRepo "banquet/internal/domains/booking/repository"
	"banquet/internal/domains/payment/model"
	"banquet/internal/domains/payment/model/dto"
	"banquet/internal/domains/payment/repository"
	"banquet/internal/events"
	"banquet/shared"
	"banquet/shared/cache"
	"banquet/shared/constant"
	gDto "banquet/shared/dto"
	"banquet/shared/failure"
	"banquet/shared/money"
	"banquet/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllPayment = "payment:gets"
	cacheCountPayment  = "payment:count"

	// Bookings cache their money snapshot, so every ledger mutation clears
	// the whole booking prefix alongside the payment keys.
	cacheBookingPrefix = "booking:"

	receiptDirectory   = "receipts"
	receiptContentType = "application/json"
)

// Ledger is the money side of a booking: an append-only payment history plus
// the derived paid/balance position. Recorded amounts are never edited in
// place; corrections enter as new entries or refunds.
type Ledger interface {
	ApplyPayment(ctx context.Context, req dto.ApplyPaymentRequest, bookingID string) (dto.LedgerResponse, error)
	ApplyRefund(ctx context.Context, req dto.ApplyRefundRequest, bookingID string) (dto.LedgerResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetLaborForBooking(ctx context.Context, bookingID string) (dto.GetLaborPaymentsResponse, error)
}

type serviceImpl struct {
	payRepo     repository.CustomerPayment
	laborRepo   repository.LaborPayment
	bookingRepo bookingRepo.Booking
	publisher   events.Publisher
	s3          s3.S3
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	payRepo repository.CustomerPayment,
	laborRepo repository.LaborPayment,
	bookingRepo bookingRepo.Booking,
	publisher events.Publisher,
	s3 s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Ledger {
	return &serviceImpl{
		payRepo:     payRepo,
		laborRepo:   laborRepo,
		bookingRepo: bookingRepo,
		publisher:   publisher,
		s3:          s3,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) ApplyPayment(ctx context.Context, req dto.ApplyPaymentRequest, bookingID string) (res dto.LedgerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if !money.IsFinite(req.Amount) || req.Amount <= 0 {
		return res, failure.UnprocessableEntity("payment amount must be a positive finite number") // nolint:wrapcheck
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.Locked {
		return res, failure.Forbidden("booking is locked; unlock it before recording payments") // nolint:wrapcheck
	}

	if booking.Status == bookingModel.StatusCancelled {
		return res, failure.UnprocessableEntity("cannot record a payment on a cancelled booking") // nolint:wrapcheck
	}

	firstPayment := booking.AmountPaid <= money.Epsilon
	payment := req.ToModel(bookingID, firstPayment, user)

	if err = s.payRepo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to record payment")

		return res, fmt.Errorf("failed to record payment: %w", err)
	}

	now := timezone.Now()

	booking.AmountPaid = money.RoundCents(booking.AmountPaid + payment.Amount)
	booking.RecalculateBalance()

	if booking.BalanceDueAmount <= money.Epsilon {
		booking.PaymentStatus = bookingModel.PaymentPaidInFull
	} else {
		// A stale terminal status short-circuits derivation, so clear it
		// before recomputing from the new position.
		booking.PaymentStatus = bookingModel.PaymentDepositPending
		booking.PaymentStatus = bookingModel.DerivePaymentStatus(booking, now)
	}

	// Full payment on a pending booking confirms it without a separate
	// workflow call. The conflict gate is skipped here: money already
	// changed hands, so the operator resolves any clash afterwards.
	if booking.Status == bookingModel.StatusPending && booking.PaymentStatus == bookingModel.PaymentPaidInFull {
		booking.Status = bookingModel.StatusConfirmed
		booking.Assignments = booking.Assignments.WithStatus(bookingModel.AssignmentConfirmed)

		if booking.ConfirmedAt == nil {
			booking.ConfirmedAt = &now
		}
	}

	if err = s.persistLedgerState(ctx, booking, user); err != nil {
		return res, err
	}

	receiptURL := s.archiveReceipt(ctx, booking, payment)

	s.afterChange(ctx, booking, payment, events.TypePaymentRecorded, receiptURL)

	res.Payment.FromModel(payment)
	res.AmountPaid = booking.AmountPaid
	res.Balance = booking.BalanceDueAmount
	res.PaymentStatus = string(booking.PaymentStatus)
	res.BookingStatus = string(booking.Status)
	res.ReceiptURL = receiptURL

	return res, nil
}

// ApplyRefund reverses money out of the ledger and cancels the booking. A
// refund larger than what was actually paid is refused outright.
func (s *serviceImpl) ApplyRefund(ctx context.Context, req dto.ApplyRefundRequest, bookingID string) (res dto.LedgerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyRefund")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if !money.IsFinite(req.Amount) || req.Amount <= 0 {
		return res, failure.UnprocessableEntity("refund amount must be a positive finite number") // nolint:wrapcheck
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.Locked {
		return res, failure.Forbidden("booking is locked; unlock it before recording a refund") // nolint:wrapcheck
	}

	if req.Amount > booking.AmountPaid+money.Epsilon {
		return res, failure.UnprocessableEntity(fmt.Sprintf("refund %.2f exceeds amount paid %.2f", req.Amount, booking.AmountPaid)) // nolint:wrapcheck
	}

	refund := req.ToModel(bookingID, user)

	if err = s.payRepo.Insert(ctx, refund); err != nil {
		log.Error().Err(err).Msg("failed to record refund")

		return res, fmt.Errorf("failed to record refund: %w", err)
	}

	booking.AmountPaid = money.RoundCents(booking.AmountPaid - refund.Amount)
	if booking.AmountPaid < 0 {
		booking.AmountPaid = 0
	}

	booking.Status = bookingModel.StatusCancelled
	booking.PaymentStatus = bookingModel.PaymentRefunded
	booking.RecalculateBalance()

	// A cancelled booking owes its staff nothing.
	if err = s.laborRepo.DeleteByBooking(ctx, bookingID); err != nil {
		log.Error().Err(err).Msg("failed to release labor payments")

		return res, fmt.Errorf("failed to release labor payments: %w", err)
	}

	if err = s.persistLedgerState(ctx, booking, user); err != nil {
		return res, err
	}

	s.afterChange(ctx, booking, refund, events.TypePaymentRefunded, "")

	res.Payment.FromModel(refund)
	res.AmountPaid = booking.AmountPaid
	res.Balance = booking.BalanceDueAmount
	res.PaymentStatus = string(booking.PaymentStatus)
	res.BookingStatus = string(booking.Status)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.payRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPayment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payment count")

		return res, nil
	}

	res, err = s.payRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetLaborForBooking(ctx context.Context, bookingID string) (res dto.GetLaborPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLaborForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	records, err := s.laborRepo.GetAll(ctx, gDto.QueryParams{}, filterLaborByBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get labor payments")

		return res, fmt.Errorf("failed to get labor payments: %w", err)
	}

	res.FromModels(records)

	return res, nil
}

func (s *serviceImpl) loadBooking(ctx context.Context, id string) (bookingModel.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	booking.Status = bookingModel.NormalizeStatus(string(booking.Status), "")

	return booking, nil
}

func (s *serviceImpl) persistLedgerState(ctx context.Context, booking bookingModel.Booking, user string) error {
	fields := map[string]any{
		"amount_paid":        booking.AmountPaid,
		"balance_due_amount": booking.BalanceDueAmount,
		"payment_status":     booking.PaymentStatus,
		"status":             booking.Status,
		"confirmed_at":       booking.ConfirmedAt,
		"assignments":        booking.Assignments,
	}
	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user

	err := s.bookingRepo.Update(ctx, fields, shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking ledger state")

		return fmt.Errorf("failed to update booking ledger state: %w", err)
	}

	return nil
}

// archiveReceipt uploads a JSON receipt for the recorded payment. Archiving
// is best effort: the ledger entry stands whether or not the upload works.
func (s *serviceImpl) archiveReceipt(ctx context.Context, booking bookingModel.Booking, payment model.CustomerPayment) string {
	receipt := map[string]any{
		"payment_id":     payment.ID,
		"booking_id":     booking.ID,
		"customer_name":  booking.CustomerName,
		"amount":         payment.Amount,
		"type":           payment.Type,
		"method":         payment.Method,
		"amount_paid":    booking.AmountPaid,
		"balance":        booking.BalanceDueAmount,
		"payment_status": booking.PaymentStatus,
		"recorded_at":    payment.Date,
	}

	data, err := json.Marshal(receipt)
	if err != nil {
		log.Error().Err(err).Str("paymentID", payment.ID).Msg("failed to marshal receipt")

		return constant.Empty
	}

	directory := fmt.Sprintf("%s/%s", receiptDirectory, booking.ID)
	fileName := payment.ID + ".json"

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.AWS.S3.ReceiptBucket, directory, fileName, receiptContentType, data)
	if err != nil {
		log.Error().Err(err).Str("paymentID", payment.ID).Msg("failed to archive receipt")

		return constant.Empty
	}

	return url
}

func (s *serviceImpl) afterChange(ctx context.Context, booking bookingModel.Booking, payment model.CustomerPayment, eventType events.Type, receiptURL string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayment)
		shared.InvalidateCaches(c, s.cache, cacheCountPayment)
		shared.InvalidateCaches(c, s.cache, cacheBookingPrefix)

		event := events.PaymentEvent{
			Type:       eventType,
			BookingID:  booking.ID,
			PaymentID:  payment.ID,
			Amount:     payment.Amount,
			ReceiptURL: receiptURL,
			OccurredAt: timezone.Now(),
		}

		if err := s.publisher.PaymentRecorded(c, event); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish payment event")
		}
	}()
}

func filterLaborByBooking(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.LaborPaymentTableName,
			},
		},
	}
}
