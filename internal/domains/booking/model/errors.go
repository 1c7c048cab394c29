package model

import (
	"fmt"
	"strings"
)

// Conflict is one scheduling collision: another non-cancelled booking already
// uses the staff member at the same event date and time.
type Conflict struct {
	StaffID      string `json:"staff_id"`
	BookingID    string `json:"booking_id"`
	CustomerName string `json:"customer_name"`
	EventDate    string `json:"event_date"`
	EventTime    string `json:"event_time"`
}

// ViolationKind classifies why a workflow transition was refused.
type ViolationKind string

const (
	ViolationMissingAssignment        ViolationKind = "missing_assignment"
	ViolationUnresolvedStaffReference ViolationKind = "unresolved_staff_reference"
	ViolationDuplicateAssignment      ViolationKind = "duplicate_assignment"
	ViolationSchedulingConflict       ViolationKind = "scheduling_conflict"
)

// Violation is one reason a transition was refused.
type Violation struct {
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
	SlotID  string        `json:"slot_id,omitempty"`
	StaffID string        `json:"staff_id,omitempty"`
}

// TransitionError carries every violation found during a single transition
// attempt, so the caller can fix all of them at once. The booking is never
// partially mutated when one is returned.
type TransitionError struct {
	BookingID  string      `json:"booking_id"`
	From       Status      `json:"from"`
	To         Status      `json:"to"`
	Violations []Violation `json:"violations"`
}

func (e *TransitionError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, violation := range e.Violations {
		msgs = append(msgs, violation.Message)
	}

	return fmt.Sprintf("cannot transition booking from %s to %s: %s", e.From, e.To, strings.Join(msgs, "; "))
}
