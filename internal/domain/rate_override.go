package domain

import "time"

// Specificity weights. A more specific override always outranks a
// broader one regardless of creation order.
const (
	PriorityCab       = 50
	PriorityShiftType = 30
	PriorityDayOfWeek = 20
)

// RateOverride is a custom lease-rate rule superseding the default
// rate plan for a narrower scope and time window. Nil filters match
// any value.
type RateOverride struct {
	ID        string
	OwnerID   string
	CabID     *string
	ShiftType *string
	DayOfWeek *DayOfWeek
	Rate      float64
	StartDate Date
	EndDate   *Date
	Active    bool
	Priority  int
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComputePriority derives the priority from the override's non-nil
// filters. The stored value is recomputed on every create and update,
// never taken from input.
func (o *RateOverride) ComputePriority() int {
	priority := 0
	if o.CabID != nil {
		priority += PriorityCab
	}
	if o.ShiftType != nil {
		priority += PriorityShiftType
	}
	if o.DayOfWeek != nil {
		priority += PriorityDayOfWeek
	}
	return priority
}

func (o *RateOverride) Range() DateRange {
	return DateRange{Start: o.StartDate, End: o.EndDate}
}

// ActiveOn reports whether the override applies on the given day.
func (o *RateOverride) ActiveOn(on Date) bool {
	return o.Active && o.Range().Contains(on)
}

// SameKey reports whether two overrides compete for the same
// (owner, cab, shift type, day of week) scope. Only overrides with the
// same key are checked for window conflicts.
func (o *RateOverride) SameKey(other *RateOverride) bool {
	return o.OwnerID == other.OwnerID &&
		equalPtr(o.CabID, other.CabID) &&
		equalPtr(o.ShiftType, other.ShiftType) &&
		equalPtr(o.DayOfWeek, other.DayOfWeek)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// OverrideFilter narrows candidate lookups. Nil fields are not
// filtered on.
type OverrideFilter struct {
	OwnerID   string
	CabID     *string
	ShiftType *string
	DayOfWeek *DayOfWeek
}

type OverrideRepository interface {
	CreateOverride(override *RateOverride) error
	UpdateOverride(override *RateOverride) error
	DeleteOverride(overrideID string) error
	GetOverrideByID(overrideID string) (*RateOverride, error)
	// FindActiveMatching returns active overrides valid on the given day
	// whose cab, shift-type and day-of-week filters are each nil or equal
	// to the requested value.
	FindActiveMatching(ownerID string, cabID, shiftType string, day DayOfWeek, on Date) ([]*RateOverride, error)
	// FindSameKey returns overrides sharing the exact filter key,
	// regardless of temporal validity. Used for conflict detection.
	FindSameKey(ownerID string, cabID *string, shiftType *string, day *DayOfWeek) ([]*RateOverride, error)
	// FindOpenEndedByOwnerCab returns active open-ended overrides for the
	// owner+cab pair, for the auto-close rule on creation.
	FindOpenEndedByOwnerCab(ownerID string, cabID *string) ([]*RateOverride, error)
	GetOverridesByOwnerID(ownerID string, page, limit int, sortBy, sortOrder string) ([]*RateOverride, int64, error)
}
