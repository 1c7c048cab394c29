package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"banquet/internal/domains/booking/model"
)

func eventBooking() model.Booking {
	return model.Booking{
		ID:             "bk-1",
		EventDate:      time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		EventTime:      time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
		Status:         model.StatusConfirmed,
		Total:          1680,
		DepositPercent: 30,
		DepositAmount:  504,
	}
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "completed", "cancelled"} {
		status, ok := model.ParseStatus(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, model.Status(raw), status)
	}

	_, ok := model.ParseStatus("archived")
	assert.False(t, ok)
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, model.StatusConfirmed, model.NormalizeStatus("confirmed", "pending"))
	assert.Equal(t, model.StatusCompleted, model.NormalizeStatus("", "completed"))
	assert.Equal(t, model.StatusPending, model.NormalizeStatus("", ""))
	assert.Equal(t, model.StatusPending, model.NormalizeStatus("bogus", "bogus"))
}

func TestRecalculateBalance(t *testing.T) {
	booking := eventBooking()
	booking.AmountPaid = 504

	booking.RecalculateBalance()
	assert.InDelta(t, 1176.0, booking.BalanceDueAmount, 0.001)

	// Overpayment clamps at zero instead of going negative.
	booking.AmountPaid = 1700
	booking.RecalculateBalance()
	assert.Zero(t, booking.BalanceDueAmount)
}

func TestDerivePaymentStatus(t *testing.T) {
	beforeEvent := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	eventDay := time.Date(2026, 10, 17, 23, 0, 0, 0, time.UTC)
	dayAfter := time.Date(2026, 10, 18, 0, 30, 0, 0, time.UTC)

	t.Run("nothing paid yet", func(t *testing.T) {
		booking := eventBooking()
		booking.RecalculateBalance()

		assert.Equal(t, model.PaymentDepositPending, model.DerivePaymentStatus(booking, beforeEvent))
	})

	t.Run("deposit received once paid meets the snapshot", func(t *testing.T) {
		booking := eventBooking()
		booking.AmountPaid = 504
		booking.RecalculateBalance()

		assert.Equal(t, model.PaymentDepositReceived, model.DerivePaymentStatus(booking, beforeEvent))
	})

	t.Run("near-miss within the tolerance still counts", func(t *testing.T) {
		booking := eventBooking()
		booking.AmountPaid = 503.995
		booking.RecalculateBalance()

		assert.Equal(t, model.PaymentDepositReceived, model.DerivePaymentStatus(booking, beforeEvent))
	})

	t.Run("no deposit snapshot means still pending", func(t *testing.T) {
		booking := eventBooking()
		booking.DepositAmount = 0
		booking.RecalculateBalance()

		assert.Equal(t, model.PaymentDepositPending, model.DerivePaymentStatus(booking, beforeEvent))
	})

	t.Run("balance becomes outstanding the day after the event", func(t *testing.T) {
		booking := eventBooking()
		booking.AmountPaid = 504
		booking.RecalculateBalance()

		assert.Equal(t, model.PaymentDepositReceived, model.DerivePaymentStatus(booking, eventDay))
		assert.Equal(t, model.PaymentBalanceOutstanding, model.DerivePaymentStatus(booking, dayAfter))
		assert.True(t, model.IsBalanceOverdue(booking, dayAfter))
	})

	t.Run("terminal states short-circuit", func(t *testing.T) {
		booking := eventBooking()
		booking.PaymentStatus = model.PaymentPaidInFull

		assert.Equal(t, model.PaymentPaidInFull, model.DerivePaymentStatus(booking, dayAfter))

		booking.PaymentStatus = model.PaymentRefunded
		assert.Equal(t, model.PaymentRefunded, model.DerivePaymentStatus(booking, dayAfter))
	})

	t.Run("fully paid booking never goes outstanding", func(t *testing.T) {
		booking := eventBooking()
		booking.AmountPaid = 1680
		booking.RecalculateBalance()

		assert.Equal(t, model.PaymentDepositReceived, model.DerivePaymentStatus(booking, dayAfter))
	})
}

func TestSameOccasion(t *testing.T) {
	booking := eventBooking()

	sameDate := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	sameTime := time.Date(2026, 10, 17, 18, 0, 0, 0, time.UTC)

	assert.True(t, booking.SameOccasion(sameDate, sameTime))
	assert.False(t, booking.SameOccasion(sameDate, sameTime.Add(30*time.Minute)))
	assert.False(t, booking.SameOccasion(sameDate.AddDate(0, 0, 1), sameTime))
}

func TestAssignmentsStaffIDs(t *testing.T) {
	assignments := model.Assignments{
		{SlotID: "lead-1", StaffID: "staff-a"},
		{SlotID: "server-1", StaffID: ""},
		{SlotID: "server-2", StaffID: "staff-a"},
		{SlotID: "server-3", StaffID: "staff-b"},
	}

	assert.Equal(t, []string{"staff-a", "staff-b"}, assignments.StaffIDs())
}
