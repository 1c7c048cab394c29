package service

import (
	"fmt"
	"time"

	"banquet/internal/domains/booking/model"
	paymentModel "banquet/internal/domains/payment/model"
	staffModel "banquet/internal/domains/staff/model"
	gModel "banquet/shared/model"
	"banquet/shared/money"
)

// depositTerms is the configured payment schedule applied on confirmation.
type depositTerms struct {
	DefaultPercent float64
	DepositDueDays int
	BalanceDueDays int
}

// applyConfirm runs the pending-to-confirmed transition on a copy of the
// booking. The scheduling-conflict gate runs first; when it refuses, the
// returned error carries every conflict and the booking is left untouched.
func applyConfirm(b model.Booking, others []model.Booking, terms depositTerms, now time.Time) (model.Booking, *model.TransitionError) {
	conflicts := FindConflicts(others, b.EventDate, b.EventTime, b.Assignments.StaffIDs(), b.ID)
	if len(conflicts) > 0 {
		return b, &model.TransitionError{
			BookingID:  b.ID,
			From:       b.Status,
			To:         model.StatusConfirmed,
			Violations: conflictViolations(conflicts),
		}
	}

	if b.DepositPercent == 0 {
		b.DepositPercent = terms.DefaultPercent
	}

	b.DepositAmount = money.Percent(b.Total, b.DepositPercent)

	if b.DepositDueDate == nil {
		due := now.AddDate(0, 0, terms.DepositDueDays)
		b.DepositDueDate = &due
	}

	if b.BalanceDueDate == nil {
		due := b.EventDate.AddDate(0, 0, -terms.BalanceDueDays)
		b.BalanceDueDate = &due
	}

	if b.ConfirmedAt == nil {
		b.ConfirmedAt = &now
	}

	b.Status = model.StatusConfirmed
	b.Assignments = b.Assignments.WithStatus(model.AssignmentConfirmed)

	return b, nil
}

// validateCompletion collects every reason the booking cannot complete, so
// the caller can fix all of them at once instead of one per attempt.
func validateCompletion(b model.Booking, staffByID map[string]staffModel.Staff, others []model.Booking) []model.Violation {
	var violations []model.Violation

	for _, assignment := range b.Assignments {
		if assignment.StaffID == "" {
			violations = append(violations, model.Violation{
				Kind:    model.ViolationMissingAssignment,
				Message: fmt.Sprintf("slot %s (%s) has no staff assigned", assignment.SlotID, assignment.Role),
				SlotID:  assignment.SlotID,
			})
		}
	}

	seen := make(map[string]bool, len(b.Assignments))

	for _, assignment := range b.Assignments {
		if assignment.StaffID == "" {
			continue
		}

		staff, known := staffByID[assignment.StaffID]
		if !known || !staff.Active {
			violations = append(violations, model.Violation{
				Kind:    model.ViolationUnresolvedStaffReference,
				Message: fmt.Sprintf("staff %s is not an active staff member", assignment.StaffID),
				SlotID:  assignment.SlotID,
				StaffID: assignment.StaffID,
			})
		}

		if seen[assignment.StaffID] {
			violations = append(violations, model.Violation{
				Kind:    model.ViolationDuplicateAssignment,
				Message: fmt.Sprintf("staff %s is assigned more than once", assignment.StaffID),
				SlotID:  assignment.SlotID,
				StaffID: assignment.StaffID,
			})
		}
		seen[assignment.StaffID] = true
	}

	conflicts := FindConflicts(others, b.EventDate, b.EventTime, b.Assignments.StaffIDs(), b.ID)

	return append(violations, conflictViolations(conflicts)...)
}

// applyComplete marks the booking completed and locks it. Callers must have
// run validateCompletion first.
func applyComplete(b model.Booking) model.Booking {
	b.Status = model.StatusCompleted
	b.Assignments = b.Assignments.WithStatus(model.AssignmentCompleted)
	b.Locked = true

	return b
}

// buildLaborRecords snapshots one labor payment per filled slot. Record ids
// derive from (booking id, slot index), so re-running a completion with
// unchanged assignments produces an identical set.
func buildLaborRecords(b model.Booking, now time.Time, user string) []paymentModel.LaborPayment {
	var records []paymentModel.LaborPayment

	for i, assignment := range b.Assignments {
		if assignment.StaffID == "" {
			continue
		}

		records = append(records, paymentModel.LaborPayment{
			ID:        paymentModel.LaborPaymentID(b.ID, i),
			BookingID: b.ID,
			SlotIndex: i,
			SlotID:    assignment.SlotID,
			StaffID:   assignment.StaffID,
			Role:      assignment.Role,
			Amount:    assignment.EstimatedPay,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	return records
}

// applyDemote downgrades a booking to confirmed, pending or cancelled. When
// the booking was completed the caller releases the labor snapshot before
// persisting the result.
func applyDemote(b model.Booking, target model.Status) model.Booking {
	b.Status = target
	b.Locked = false

	assignmentStatus := model.AssignmentScheduled
	if target == model.StatusConfirmed {
		assignmentStatus = model.AssignmentConfirmed
	}

	b.Assignments = b.Assignments.WithStatus(assignmentStatus)

	return b
}

func conflictViolations(conflicts []model.Conflict) []model.Violation {
	violations := make([]model.Violation, 0, len(conflicts))
	for _, conflict := range conflicts {
		violations = append(violations, model.Violation{
			Kind: model.ViolationSchedulingConflict,
			Message: fmt.Sprintf(
				"staff %s is already booked for %s on %s at %s",
				conflict.StaffID, conflict.CustomerName, conflict.EventDate, conflict.EventTime,
			),
			StaffID: conflict.StaffID,
		})
	}

	return violations
}
