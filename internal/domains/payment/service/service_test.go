package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"banquet/config"
	"banquet/infras/otel/mocks"
	s3Mocks "banquet/infras/s3/mocks"
	bookingMocks "banquet/internal/domains/booking/mocks"
	bookingModel "banquet/internal/domains/booking/model"
	paymentMocks "banquet/internal/domains/payment/mocks"
	"banquet/internal/domains/payment/model"
	"banquet/internal/domains/payment/model/dto"
	"banquet/internal/domains/payment/service"
	eventMocks "banquet/internal/events/mocks"
	cacheMocks "banquet/shared/cache/mocks"
	"banquet/shared/constant"
	"banquet/shared/failure"
)

type ledgerFixture struct {
	payRepo     *paymentMocks.MockCustomerPayment
	laborRepo   *paymentMocks.MockLaborPayment
	bookingRepo *bookingMocks.MockBooking
	publisher   *eventMocks.MockPublisher
	s3          *s3Mocks.MockS3
	cache       *cacheMocks.MockRedisCache
	svc         service.Ledger
}

func newLedgerFixture(t *testing.T) ledgerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := ledgerFixture{
		payRepo:     paymentMocks.NewMockCustomerPayment(ctrl),
		laborRepo:   paymentMocks.NewMockLaborPayment(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		publisher:   eventMocks.NewMockPublisher(ctrl),
		s3:          s3Mocks.NewMockS3(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.AWS.S3.ReceiptBucket = "receipts"

	f.svc = service.New(f.payRepo, f.laborRepo, f.bookingRepo, f.publisher, f.s3, cfg, f.cache, mocks.NewOtel())

	// Cache invalidation and event publishing run in the background after a
	// committed mutation, so no test asserts on their timing.
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().PaymentRecorded(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func openBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:               "bk-1",
		CustomerName:     "Harris Wedding",
		EventDate:        time.Date(2031, 10, 17, 0, 0, 0, 0, time.UTC),
		EventTime:        time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
		Status:           bookingModel.StatusConfirmed,
		PaymentStatus:    bookingModel.PaymentDepositPending,
		Total:            1680,
		DepositPercent:   30,
		DepositAmount:    504,
		BalanceDueAmount: 1680,
	}
}

func TestLedgerService_ApplyPayment(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("deposit payment reaches deposit received", func(t *testing.T) {
		f := newLedgerFixture(t)

		f.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(openBooking(), nil)

		var recorded model.CustomerPayment
		f.payRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payment model.CustomerPayment) error {
				recorded = payment
				return nil
			})

		f.bookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.InDelta(t, 504.0, fields["amount_paid"], 0.001)
				assert.InDelta(t, 1176.0, fields["balance_due_amount"], 0.001)
				assert.Equal(t, bookingModel.PaymentDepositReceived, fields["payment_status"])
				return nil
			})

		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), "receipts", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://files.example.com/receipts/bk-1/r.json", nil)

		res, err := f.svc.ApplyPayment(ctx, dto.ApplyPaymentRequest{Amount: 504}, "bk-1")
		require.NoError(t, err)

		assert.Equal(t, string(model.TypeDeposit), res.Payment.Type)
		assert.Equal(t, model.TypeDeposit, recorded.Type)
		assert.InDelta(t, 504.0, res.AmountPaid, 0.001)
		assert.InDelta(t, 1176.0, res.Balance, 0.001)
		assert.Equal(t, string(bookingModel.PaymentDepositReceived), res.PaymentStatus)
		assert.NotEmpty(t, res.ReceiptURL)
	})

	t.Run("second payment defaults to payment type", func(t *testing.T) {
		f := newLedgerFixture(t)

		booking := openBooking()
		booking.AmountPaid = 504
		booking.RecalculateBalance()

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		f.payRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payment model.CustomerPayment) error {
				assert.Equal(t, model.TypePayment, payment.Type)
				return nil
			})

		f.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("bucket unavailable"))

		res, err := f.svc.ApplyPayment(ctx, dto.ApplyPaymentRequest{Amount: 500}, "bk-1")
		require.NoError(t, err)

		// A failed receipt upload never blocks the ledger entry.
		assert.Empty(t, res.ReceiptURL)
		assert.InDelta(t, 1004.0, res.AmountPaid, 0.001)
	})

	t.Run("full payment promotes a pending booking", func(t *testing.T) {
		f := newLedgerFixture(t)

		booking := openBooking()
		booking.Status = bookingModel.StatusPending
		booking.Assignments = bookingModel.Assignments{
			{SlotID: "lead-1", Role: "lead", StaffID: "staff-a", Status: bookingModel.AssignmentScheduled},
		}

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.payRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		f.bookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, bookingModel.StatusConfirmed, fields["status"])
				assert.Equal(t, bookingModel.PaymentPaidInFull, fields["payment_status"])
				assert.NotNil(t, fields["confirmed_at"])
				return nil
			})

		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("url", nil)

		res, err := f.svc.ApplyPayment(ctx, dto.ApplyPaymentRequest{Amount: 1680}, "bk-1")
		require.NoError(t, err)

		assert.Equal(t, string(bookingModel.StatusConfirmed), res.BookingStatus)
		assert.Equal(t, string(bookingModel.PaymentPaidInFull), res.PaymentStatus)
		assert.Zero(t, res.Balance)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		f := newLedgerFixture(t)

		for _, amount := range []float64{0, -50} {
			_, err := f.svc.ApplyPayment(ctx, dto.ApplyPaymentRequest{Amount: amount}, "bk-1")
			require.Error(t, err)
			assert.Equal(t, 422, failure.GetCode(err))
		}
	})

	t.Run("rejects a locked booking", func(t *testing.T) {
		f := newLedgerFixture(t)

		booking := openBooking()
		booking.Locked = true

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := f.svc.ApplyPayment(ctx, dto.ApplyPaymentRequest{Amount: 100}, "bk-1")
		require.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("rejects a cancelled booking", func(t *testing.T) {
		f := newLedgerFixture(t)

		booking := openBooking()
		booking.Status = bookingModel.StatusCancelled

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := f.svc.ApplyPayment(ctx, dto.ApplyPaymentRequest{Amount: 100}, "bk-1")
		require.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newLedgerFixture(t)

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)

		_, err := f.svc.ApplyPayment(ctx, dto.ApplyPaymentRequest{Amount: 100}, "missing")
		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestLedgerService_ApplyRefund(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("refund exceeding amount paid is refused", func(t *testing.T) {
		f := newLedgerFixture(t)

		booking := openBooking()
		booking.AmountPaid = 1680
		booking.RecalculateBalance()

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := f.svc.ApplyRefund(ctx, dto.ApplyRefundRequest{Amount: 1700}, "bk-1")
		require.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("full refund cancels the booking and releases labor", func(t *testing.T) {
		f := newLedgerFixture(t)

		booking := openBooking()
		booking.AmountPaid = 1680
		booking.PaymentStatus = bookingModel.PaymentPaidInFull
		booking.RecalculateBalance()

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		f.payRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payment model.CustomerPayment) error {
				assert.Equal(t, model.TypeRefund, payment.Type)
				assert.InDelta(t, 1680.0, payment.Amount, 0.001)
				return nil
			})

		f.laborRepo.EXPECT().DeleteByBooking(gomock.Any(), "bk-1").Return(nil)

		f.bookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, bookingModel.StatusCancelled, fields["status"])
				assert.Equal(t, bookingModel.PaymentRefunded, fields["payment_status"])
				assert.InDelta(t, 0.0, fields["amount_paid"], 0.001)
				return nil
			})

		res, err := f.svc.ApplyRefund(ctx, dto.ApplyRefundRequest{Amount: 1680}, "bk-1")
		require.NoError(t, err)

		assert.Equal(t, string(bookingModel.StatusCancelled), res.BookingStatus)
		assert.Equal(t, string(bookingModel.PaymentRefunded), res.PaymentStatus)
		assert.Zero(t, res.AmountPaid)
	})

	t.Run("refund within tolerance of amount paid is allowed", func(t *testing.T) {
		f := newLedgerFixture(t)

		booking := openBooking()
		booking.AmountPaid = 504
		booking.RecalculateBalance()

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.payRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.laborRepo.EXPECT().DeleteByBooking(gomock.Any(), "bk-1").Return(nil)
		f.bookingRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.ApplyRefund(ctx, dto.ApplyRefundRequest{Amount: 504.005}, "bk-1")
		require.NoError(t, err)
		assert.Zero(t, res.AmountPaid)
	})
}
