package service

import (
	"time"

	"banquet/internal/domains/booking/model"
	"banquet/shared/constant"
)

// FindConflicts scans a booking snapshot for staff double-bookings: every
// (staffId, booking) pair where another non-cancelled booking occupies the
// same date and time and assigns that staff member. The snapshot is taken
// fresh per call; no index is carried between calls. Both the pre-submit
// check and the workflow transitions run this exact scan so they can never
// disagree.
func FindConflicts(bookings []model.Booking, eventDate, eventTime time.Time, staffIDs []string, excludeBookingID string) []model.Conflict {
	if len(staffIDs) == 0 {
		return nil
	}

	wanted := make(map[string]bool, len(staffIDs))
	for _, id := range staffIDs {
		if id != "" {
			wanted[id] = true
		}
	}

	seen := make(map[string]bool)

	var conflicts []model.Conflict

	for _, other := range bookings {
		if other.ID == excludeBookingID || other.Status == model.StatusCancelled {
			continue
		}

		if !other.SameOccasion(eventDate, eventTime) {
			continue
		}

		for _, assignment := range other.Assignments {
			if assignment.StaffID == "" || !wanted[assignment.StaffID] {
				continue
			}

			key := assignment.StaffID + "|" + other.ID
			if seen[key] {
				continue
			}
			seen[key] = true

			conflicts = append(conflicts, model.Conflict{
				StaffID:      assignment.StaffID,
				BookingID:    other.ID,
				CustomerName: other.CustomerName,
				EventDate:    other.EventDate.Format(constant.EventDateFormat),
				EventTime:    other.EventTime.Format(constant.EventTimeFormat),
			})
		}
	}

	return conflicts
}
