package domain

import "time"

// ShiftProfileAssignment is one row of the append-mostly audit log of
// which profile applied to a shift over time. A nil EndDate marks the
// single currently active assignment for the shift; superseding sets
// the prior row's EndDate to the day before the new start.
type ShiftProfileAssignment struct {
	ID         string
	ShiftID    string
	ProfileID  string
	StartDate  Date
	EndDate    *Date
	Reason     string
	AssignedBy string
	CreatedAt  time.Time
}

func (a *ShiftProfileAssignment) Range() DateRange {
	return DateRange{Start: a.StartDate, End: a.EndDate}
}

func (a *ShiftProfileAssignment) ActiveOn(on Date) bool {
	return a.Range().Contains(on)
}

func (a *ShiftProfileAssignment) IsOpen() bool {
	return a.EndDate == nil
}

type AssignmentRepository interface {
	// Assign atomically ends the shift's current open assignment (end
	// date = new start minus one day, old profile usage decremented),
	// creates the new assignment, increments the new profile's usage
	// counter and updates the shift's current-profile pointer. The whole
	// read-modify-write runs in one transaction.
	Assign(assignment *ShiftProfileAssignment) error
	// EndActive closes the shift's open assignment on the given day,
	// decrements the profile usage counter and clears the shift pointer,
	// atomically. Returns ErrAssignmentNotFound when no assignment is open.
	EndActive(shiftID string, end Date) error
	GetActiveByShiftID(shiftID string) (*ShiftProfileAssignment, error)
	GetHistoryByShiftID(shiftID string) ([]*ShiftProfileAssignment, error)
	FindOpenAssignments() ([]*ShiftProfileAssignment, error)
}
