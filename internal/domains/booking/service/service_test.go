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
	bookingMocks "banquet/internal/domains/booking/mocks"
	"banquet/internal/domains/booking/model"
	"banquet/internal/domains/booking/model/dto"
	"banquet/internal/domains/booking/service"
	paymentMocks "banquet/internal/domains/payment/mocks"
	rulesMocks "banquet/internal/domains/rules/mocks"
	rulesModel "banquet/internal/domains/rules/model"
	shoppingMocks "banquet/internal/domains/shoppinglist/mocks"
	staffMocks "banquet/internal/domains/staff/mocks"
	staffModel "banquet/internal/domains/staff/model"
	eventMocks "banquet/internal/events/mocks"
	cacheMocks "banquet/shared/cache/mocks"
	"banquet/shared/constant"
	"banquet/shared/failure"
)

type bookingFixture struct {
	repo      *bookingMocks.MockBooking
	staffRepo *staffMocks.MockStaff
	laborRepo *paymentMocks.MockLaborPayment
	payRepo   *paymentMocks.MockCustomerPayment
	rules     *rulesMocks.MockRules
	shopping  *shoppingMocks.MockSyncer
	publisher *eventMocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
	svc       service.Booking
}

func newBookingFixture(t *testing.T) bookingFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := bookingFixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		staffRepo: staffMocks.NewMockStaff(ctrl),
		laborRepo: paymentMocks.NewMockLaborPayment(ctrl),
		payRepo:   paymentMocks.NewMockCustomerPayment(ctrl),
		rules:     rulesMocks.NewMockRules(ctrl),
		shopping:  shoppingMocks.NewMockSyncer(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Engine.DefaultDepositPercent = 30
	cfg.Engine.DepositDueDays = 7
	cfg.Engine.BalanceDueDays = 3

	f.svc = service.New(
		f.repo, f.staffRepo, f.laborRepo, f.payRepo,
		f.rules, f.shopping, f.publisher,
		cfg, f.cache, mocks.NewOtel(),
	)

	// Cache invalidation, event publishing and shopping-list sync all run in
	// the background after a committed mutation.
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().BookingChanged(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.shopping.EXPECT().EnsureForBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func testRules() rulesModel.Document {
	return rulesModel.Document{
		Primary:         rulesModel.RateTable{AdultPrice: 70, ChildDiscountPercent: 50},
		Secondary:       rulesModel.RateTable{AdultPrice: 55, ChildDiscountPercent: 50},
		GratuityPercent: 20,
		DepositPercent:  30,
		FreeMiles:       15,
		PerMileRate:     2.5,
		DefaultStaffing: map[string][]string{"wedding": {"lead", "server"}},
		LaborTerms: []rulesModel.LaborTerms{
			{Role: "lead", BasePayPercent: 10, GratuitySplitPercent: 40},
			{Role: "server", BasePayPercent: 6, GratuitySplitPercent: 30},
		},
	}
}

func pricedBooking() model.Booking {
	return model.Booking{
		ID:             "bk-1",
		CustomerName:   "Harris Wedding",
		EventType:      "wedding",
		EventDate:      time.Date(2031, 10, 17, 0, 0, 0, 0, time.UTC),
		EventTime:      time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
		Adults:         20,
		Status:         model.StatusPending,
		PaymentStatus:  model.PaymentDepositPending,
		Subtotal:       1400,
		Gratuity:       280,
		Total:          1680,
		DepositPercent: 30,
		Assignments: model.Assignments{
			{SlotID: "lead-1", Role: "lead", StaffID: "staff-a", Status: model.AssignmentScheduled, EstimatedPay: 280},
			{SlotID: "server-1", Role: "server", StaffID: "staff-b", Status: model.AssignmentScheduled, EstimatedPay: 184.80},
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("prices and plans the booking before insert", func(t *testing.T) {
		f := newBookingFixture(t)

		f.rules.EXPECT().Active(gomock.Any()).Return(testRules(), nil)

		var inserted model.Booking
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking
				return nil
			})

		res, err := f.svc.Create(ctx, dto.CreateBookingRequest{
			CustomerName: "Harris Wedding",
			EventType:    "wedding",
			EventDate:    "2031-10-17",
			EventTime:    "18:00",
			Adults:       20,
		})
		require.NoError(t, err)

		assert.InDelta(t, 1400.0, inserted.Subtotal, 0.001)
		assert.InDelta(t, 280.0, inserted.Gratuity, 0.001)
		assert.InDelta(t, 1680.0, inserted.Total, 0.001)
		assert.InDelta(t, 30.0, inserted.DepositPercent, 0.001)
		assert.InDelta(t, 1680.0, inserted.BalanceDueAmount, 0.001)

		require.Len(t, inserted.Assignments, 2)
		assert.Equal(t, "lead-1", inserted.Assignments[0].SlotID)
		assert.Equal(t, "server-1", inserted.Assignments[1].SlotID)

		assert.Equal(t, "pending", res.Status)
	})

	t.Run("invalid event date", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.Create(ctx, dto.CreateBookingRequest{
			CustomerName: "Harris Wedding",
			EventType:    "wedding",
			EventDate:    "17/10/2031",
			EventTime:    "18:00",
		})
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("rules lookup failure aborts", func(t *testing.T) {
		f := newBookingFixture(t)

		f.rules.EXPECT().Active(gomock.Any()).Return(rulesModel.Document{}, errors.New("no active rules"))

		_, err := f.svc.Create(ctx, dto.CreateBookingRequest{
			CustomerName: "Harris Wedding",
			EventType:    "wedding",
			EventDate:    "2031-10-17",
			EventTime:    "18:00",
		})
		require.Error(t, err)
	})
}

func TestBookingService_Transition(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("confirm snapshots the deposit schedule", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pricedBooking(), nil)
		f.repo.EXPECT().Snapshot(gomock.Any()).Return(nil, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusConfirmed, fields["status"])
				assert.InDelta(t, 504.0, fields["deposit_amount"], 0.001)
				assert.NotNil(t, fields["deposit_due_date"])
				return nil
			})

		res, err := f.svc.Transition(ctx, dto.TransitionRequest{Status: "confirmed"}, "bk-1")
		require.NoError(t, err)
		assert.Equal(t, "confirmed", res.Status)
	})

	t.Run("confirm refused on a staffing conflict", func(t *testing.T) {
		f := newBookingFixture(t)

		other := pricedBooking()
		other.ID = "bk-2"
		other.CustomerName = "Nguyen Gala"
		other.Status = model.StatusConfirmed

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pricedBooking(), nil)
		f.repo.EXPECT().Snapshot(gomock.Any()).Return([]model.Booking{other}, nil)

		_, err := f.svc.Transition(ctx, dto.TransitionRequest{Status: "confirmed"}, "bk-1")
		require.Error(t, err)

		var transitionErr *model.TransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Len(t, transitionErr.Violations, 2)
	})

	t.Run("complete snapshots labor payments", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := pricedBooking()
		booking.Status = model.StatusConfirmed

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.repo.EXPECT().Snapshot(gomock.Any()).Return(nil, nil)
		f.staffRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]staffModel.Staff{
				{ID: "staff-a", Name: "Ana", Active: true},
				{ID: "staff-b", Name: "Ben", Active: true},
			}, nil)

		f.laborRepo.EXPECT().
			ReplaceForBooking(gomock.Any(), "bk-1", gomock.Len(2)).
			Return(nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCompleted, fields["status"])
				assert.Equal(t, true, fields["locked"])
				return nil
			})

		res, err := f.svc.Transition(ctx, dto.TransitionRequest{Status: "completed"}, "bk-1")
		require.NoError(t, err)
		assert.Equal(t, "completed", res.Status)
		assert.True(t, res.Locked)
	})

	t.Run("complete refused with unfilled slots", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := pricedBooking()
		booking.Status = model.StatusConfirmed
		booking.Assignments[1].StaffID = ""

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.repo.EXPECT().Snapshot(gomock.Any()).Return(nil, nil)
		f.staffRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]staffModel.Staff{{ID: "staff-a", Name: "Ana", Active: true}}, nil)

		_, err := f.svc.Transition(ctx, dto.TransitionRequest{Status: "completed"}, "bk-1")
		require.Error(t, err)

		var transitionErr *model.TransitionError
		require.ErrorAs(t, err, &transitionErr)
		require.Len(t, transitionErr.Violations, 1)
		assert.Equal(t, model.ViolationMissingAssignment, transitionErr.Violations[0].Kind)
	})

	t.Run("locked booking refuses everything but re-completion", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := pricedBooking()
		booking.Status = model.StatusCompleted
		booking.Locked = true

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := f.svc.Transition(ctx, dto.TransitionRequest{Status: "pending"}, "bk-1")
		require.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("demote from completed releases labor", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := pricedBooking()
		booking.Status = model.StatusCompleted

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.laborRepo.EXPECT().DeleteByBooking(gomock.Any(), "bk-1").Return(nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Transition(ctx, dto.TransitionRequest{Status: "cancelled"}, "bk-1")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", res.Status)
	})

	t.Run("stepping back from completed to confirmed releases labor", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := pricedBooking()
		booking.Status = model.StatusCompleted
		booking.Assignments = booking.Assignments.WithStatus(model.AssignmentCompleted)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.laborRepo.EXPECT().DeleteByBooking(gomock.Any(), "bk-1").Return(nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusConfirmed, fields["status"])
				assert.Equal(t, false, fields["locked"])

				assignments, ok := fields["assignments"].(model.Assignments)
				require.True(t, ok)
				for _, assignment := range assignments {
					assert.Equal(t, model.AssignmentConfirmed, assignment.Status)
				}

				return nil
			})

		res, err := f.svc.Transition(ctx, dto.TransitionRequest{Status: "confirmed"}, "bk-1")
		require.NoError(t, err)
		assert.Equal(t, "confirmed", res.Status)
		assert.False(t, res.Locked)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.Transition(ctx, dto.TransitionRequest{Status: "archived"}, "bk-1")
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_AssignStaff(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("fills a slot", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := pricedBooking()
		booking.Assignments[1].StaffID = ""

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assignments, ok := fields["assignments"].(model.Assignments)
				require.True(t, ok)
				assert.Equal(t, "staff-c", assignments[1].StaffID)
				return nil
			})

		err := f.svc.AssignStaff(ctx, dto.AssignStaffRequest{
			Assignments: []dto.AssignmentInput{{SlotID: "server-1", StaffID: "staff-c"}},
		}, "bk-1")
		require.NoError(t, err)
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pricedBooking(), nil)

		err := f.svc.AssignStaff(ctx, dto.AssignStaffRequest{
			Assignments: []dto.AssignmentInput{{SlotID: "dishwasher-1", StaffID: "staff-c"}},
		}, "bk-1")
		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("duplicate staff across slots", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pricedBooking(), nil)

		err := f.svc.AssignStaff(ctx, dto.AssignStaffRequest{
			Assignments: []dto.AssignmentInput{{SlotID: "server-1", StaffID: "staff-a"}},
		}, "bk-1")
		require.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("cascades through the ledgers and shopping list", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pricedBooking(), nil)
		f.laborRepo.EXPECT().DeleteByBooking(gomock.Any(), "bk-1").Return(nil)
		f.payRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.shopping.EXPECT().RemoveForBooking(gomock.Any(), "bk-1").Return(nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(ctx, "bk-1")
		require.NoError(t, err)
	})

	t.Run("locked booking refuses deletion", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := pricedBooking()
		booking.Locked = true

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := f.svc.Delete(ctx, "bk-1")
		require.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestBookingService_CheckConflicts(t *testing.T) {
	ctx := context.Background()

	t.Run("reports the clash", func(t *testing.T) {
		f := newBookingFixture(t)

		other := pricedBooking()
		other.ID = "bk-2"

		f.repo.EXPECT().Snapshot(gomock.Any()).Return([]model.Booking{other}, nil)

		res, err := f.svc.CheckConflicts(ctx, dto.ConflictCheckRequest{
			EventDate: "2031-10-17",
			EventTime: "18:00",
			StaffIDs:  []string{"staff-a"},
		})
		require.NoError(t, err)
		require.Len(t, res.Conflicts, 1)
		assert.Equal(t, "staff-a", res.Conflicts[0].StaffID)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().Snapshot(gomock.Any()).Return(nil, nil)

		res, err := f.svc.CheckConflicts(ctx, dto.ConflictCheckRequest{
			EventDate: "2031-10-17",
			EventTime: "18:00",
			StaffIDs:  []string{"staff-a"},
		})
		require.NoError(t, err)
		assert.NotNil(t, res.Conflicts)
		assert.Empty(t, res.Conflicts)
	})
}
