package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banquet/internal/domains/booking/model"
	"banquet/internal/domains/booking/service"
)

func occasion(day, hour int) (time.Time, time.Time) {
	date := time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC)
	clock := time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC)

	return date, clock
}

func bookingAt(id string, day, hour int, staffIDs ...string) model.Booking {
	date, clock := occasion(day, hour)

	assignments := make(model.Assignments, len(staffIDs))
	for i, staffID := range staffIDs {
		assignments[i] = model.StaffAssignment{
			SlotID:  "server-1",
			Role:    "server",
			StaffID: staffID,
		}
	}

	return model.Booking{
		ID:           id,
		CustomerName: "Customer " + id,
		EventDate:    date,
		EventTime:    clock,
		Status:       model.StatusConfirmed,
		Assignments:  assignments,
	}
}

func TestFindConflicts(t *testing.T) {
	date, clock := occasion(12, 17)

	t.Run("flags exactly the staff shared with an overlapping booking", func(t *testing.T) {
		snapshot := []model.Booking{
			bookingAt("bk-1", 12, 17, "staff-a", "staff-b"),
			bookingAt("bk-2", 12, 19, "staff-a"),
			bookingAt("bk-3", 13, 17, "staff-b"),
		}

		conflicts := service.FindConflicts(snapshot, date, clock, []string{"staff-a", "staff-c"}, "")

		require.Len(t, conflicts, 1)
		assert.Equal(t, "staff-a", conflicts[0].StaffID)
		assert.Equal(t, "bk-1", conflicts[0].BookingID)
		assert.Equal(t, "2026-09-12", conflicts[0].EventDate)
		assert.Equal(t, "17:00", conflicts[0].EventTime)
	})

	t.Run("excludes the booking being edited", func(t *testing.T) {
		snapshot := []model.Booking{bookingAt("bk-1", 12, 17, "staff-a")}

		conflicts := service.FindConflicts(snapshot, date, clock, []string{"staff-a"}, "bk-1")
		assert.Empty(t, conflicts)
	})

	t.Run("ignores cancelled bookings", func(t *testing.T) {
		cancelled := bookingAt("bk-1", 12, 17, "staff-a")
		cancelled.Status = model.StatusCancelled

		conflicts := service.FindConflicts([]model.Booking{cancelled}, date, clock, []string{"staff-a"}, "")
		assert.Empty(t, conflicts)
	})

	t.Run("no staff requested means no conflicts", func(t *testing.T) {
		snapshot := []model.Booking{bookingAt("bk-1", 12, 17, "staff-a")}

		conflicts := service.FindConflicts(snapshot, date, clock, nil, "")
		assert.Empty(t, conflicts)
	})

	t.Run("unfilled slots never conflict", func(t *testing.T) {
		snapshot := []model.Booking{bookingAt("bk-1", 12, 17, "")}

		conflicts := service.FindConflicts(snapshot, date, clock, []string{"staff-a"}, "")
		assert.Empty(t, conflicts)
	})
}
