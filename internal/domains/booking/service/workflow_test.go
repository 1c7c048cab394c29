package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banquet/internal/domains/booking/model"
	paymentModel "banquet/internal/domains/payment/model"
	staffModel "banquet/internal/domains/staff/model"
)

var testTerms = depositTerms{
	DefaultPercent: 30,
	DepositDueDays: 7,
	BalanceDueDays: 3,
}

func confirmableBooking() model.Booking {
	return model.Booking{
		ID:           "bk-1",
		CustomerName: "Harris Wedding",
		EventDate:    time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		EventTime:    time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
		Status:       model.StatusPending,
		Subtotal:     1400,
		Gratuity:     280,
		Total:        1680,
		Assignments: model.Assignments{
			{SlotID: "lead-1", Role: "lead", StaffID: "staff-a", Status: model.AssignmentScheduled, EstimatedPay: 280},
			{SlotID: "server-1", Role: "server", StaffID: "staff-b", Status: model.AssignmentScheduled, EstimatedPay: 120},
		},
	}
}

func TestApplyConfirm(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("snapshots deposit from default percent", func(t *testing.T) {
		booking := confirmableBooking()

		confirmed, err := applyConfirm(booking, nil, testTerms, now)
		require.Nil(t, err)

		assert.Equal(t, model.StatusConfirmed, confirmed.Status)
		assert.InDelta(t, 30.0, confirmed.DepositPercent, 0.001)
		assert.InDelta(t, 504.0, confirmed.DepositAmount, 0.001)

		require.NotNil(t, confirmed.DepositDueDate)
		assert.Equal(t, now.AddDate(0, 0, 7), *confirmed.DepositDueDate)

		require.NotNil(t, confirmed.BalanceDueDate)
		assert.Equal(t, booking.EventDate.AddDate(0, 0, -3), *confirmed.BalanceDueDate)

		require.NotNil(t, confirmed.ConfirmedAt)
		assert.Equal(t, now, *confirmed.ConfirmedAt)

		for _, assignment := range confirmed.Assignments {
			assert.Equal(t, model.AssignmentConfirmed, assignment.Status)
		}
	})

	t.Run("keeps an explicit deposit percent", func(t *testing.T) {
		booking := confirmableBooking()
		booking.DepositPercent = 50

		confirmed, err := applyConfirm(booking, nil, testTerms, now)
		require.Nil(t, err)

		assert.InDelta(t, 840.0, confirmed.DepositAmount, 0.001)
	})

	t.Run("keeps due dates already agreed with the customer", func(t *testing.T) {
		booking := confirmableBooking()
		agreed := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
		booking.DepositDueDate = &agreed

		confirmed, err := applyConfirm(booking, nil, testTerms, now)
		require.Nil(t, err)

		assert.Equal(t, agreed, *confirmed.DepositDueDate)
	})

	t.Run("refuses on a scheduling conflict and reports every clash", func(t *testing.T) {
		booking := confirmableBooking()

		other := confirmableBooking()
		other.ID = "bk-2"
		other.CustomerName = "Nguyen Gala"
		other.Status = model.StatusConfirmed

		_, err := applyConfirm(booking, []model.Booking{other}, testTerms, now)
		require.NotNil(t, err)

		assert.Equal(t, model.StatusConfirmed, err.To)
		assert.Len(t, err.Violations, 2)

		for _, violation := range err.Violations {
			assert.Equal(t, model.ViolationSchedulingConflict, violation.Kind)
		}
	})

	t.Run("ignores cancelled bookings at the same occasion", func(t *testing.T) {
		booking := confirmableBooking()

		other := confirmableBooking()
		other.ID = "bk-2"
		other.Status = model.StatusCancelled

		confirmed, err := applyConfirm(booking, []model.Booking{other}, testTerms, now)
		require.Nil(t, err)
		assert.Equal(t, model.StatusConfirmed, confirmed.Status)
	})
}

func TestValidateCompletion(t *testing.T) {
	registry := map[string]staffModel.Staff{
		"staff-a": {ID: "staff-a", Name: "Ana", Active: true},
		"staff-b": {ID: "staff-b", Name: "Ben", Active: true},
		"staff-c": {ID: "staff-c", Name: "Cleo", Active: false},
	}

	t.Run("clean booking passes", func(t *testing.T) {
		booking := confirmableBooking()

		violations := validateCompletion(booking, registry, nil)
		assert.Empty(t, violations)
	})

	t.Run("collects every violation in one pass", func(t *testing.T) {
		booking := confirmableBooking()
		booking.Assignments = model.Assignments{
			{SlotID: "lead-1", Role: "lead", StaffID: ""},
			{SlotID: "server-1", Role: "server", StaffID: "staff-c"},
			{SlotID: "server-2", Role: "server", StaffID: "staff-b"},
			{SlotID: "server-3", Role: "server", StaffID: "staff-b"},
		}

		other := confirmableBooking()
		other.ID = "bk-2"
		other.Assignments = model.Assignments{
			{SlotID: "lead-1", Role: "lead", StaffID: "staff-b"},
		}

		violations := validateCompletion(booking, registry, []model.Booking{other})

		kinds := make(map[model.ViolationKind]int)
		for _, violation := range violations {
			kinds[violation.Kind]++
		}

		assert.Equal(t, 1, kinds[model.ViolationMissingAssignment])
		assert.Equal(t, 1, kinds[model.ViolationUnresolvedStaffReference])
		assert.Equal(t, 1, kinds[model.ViolationDuplicateAssignment])
		assert.Equal(t, 1, kinds[model.ViolationSchedulingConflict])
	})

	t.Run("unknown staff id is unresolved", func(t *testing.T) {
		booking := confirmableBooking()
		booking.Assignments[0].StaffID = "ghost"

		violations := validateCompletion(booking, registry, nil)

		require.Len(t, violations, 1)
		assert.Equal(t, model.ViolationUnresolvedStaffReference, violations[0].Kind)
		assert.Equal(t, "ghost", violations[0].StaffID)
	})
}

func TestApplyComplete(t *testing.T) {
	booking := confirmableBooking()
	booking.Status = model.StatusConfirmed

	completed := applyComplete(booking)

	assert.Equal(t, model.StatusCompleted, completed.Status)
	assert.True(t, completed.Locked)

	for _, assignment := range completed.Assignments {
		assert.Equal(t, model.AssignmentCompleted, assignment.Status)
	}
}

func TestBuildLaborRecords(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	booking := confirmableBooking()
	booking.Assignments = model.Assignments{
		{SlotID: "lead-1", Role: "lead", StaffID: "staff-a", EstimatedPay: 280},
		{SlotID: "server-1", Role: "server", StaffID: "", EstimatedPay: 120},
		{SlotID: "server-2", Role: "server", StaffID: "staff-b", EstimatedPay: 120},
	}

	records := buildLaborRecords(booking, now, "admin")

	require.Len(t, records, 2)

	assert.Equal(t, paymentModel.LaborPaymentID("bk-1", 0), records[0].ID)
	assert.Equal(t, 0, records[0].SlotIndex)
	assert.Equal(t, "staff-a", records[0].StaffID)
	assert.InDelta(t, 280.0, records[0].Amount, 0.001)

	// The unfilled slot is skipped but its index is not reused, so a
	// re-completion with unchanged assignments yields identical ids.
	assert.Equal(t, paymentModel.LaborPaymentID("bk-1", 2), records[1].ID)
	assert.Equal(t, 2, records[1].SlotIndex)

	again := buildLaborRecords(booking, now.Add(time.Hour), "admin")
	require.Len(t, again, 2)
	assert.Equal(t, records[0].ID, again[0].ID)
	assert.Equal(t, records[1].ID, again[1].ID)
}

func TestApplyDemote(t *testing.T) {
	booking := confirmableBooking()
	booking.Status = model.StatusCompleted
	booking.Locked = true
	booking.Assignments = booking.Assignments.WithStatus(model.AssignmentCompleted)

	demoted := applyDemote(booking, model.StatusPending)

	assert.Equal(t, model.StatusPending, demoted.Status)
	assert.False(t, demoted.Locked)

	for _, assignment := range demoted.Assignments {
		assert.Equal(t, model.AssignmentScheduled, assignment.Status)
	}
}
