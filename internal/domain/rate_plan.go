package domain

import "time"

// RatePlan is the default rate source: a named, date-bounded container
// of immutable entries. At most one plan is active for any given day.
// Plans are never edited after creation; corrections close the current
// plan and open a new one.
type RatePlan struct {
	ID        string
	Name      string
	StartDate Date
	EndDate   *Date
	Active    bool
	Entries   []RateEntry
	CreatedAt time.Time
}

func (p *RatePlan) Range() DateRange {
	return DateRange{Start: p.StartDate, End: p.EndDate}
}

func (p *RatePlan) ActiveOn(on Date) bool {
	return p.Active && p.Range().Contains(on)
}

// FindEntry returns the entry matching the full key, or nil.
func (p *RatePlan) FindEntry(cabCategory string, hasAirportLicense bool, shiftType string, day DayOfWeek) *RateEntry {
	for i := range p.Entries {
		e := &p.Entries[i]
		if e.CabCategory == cabCategory &&
			e.HasAirportLicense == hasAirportLicense &&
			e.ShiftType == shiftType &&
			e.DayOfWeek == day {
			return e
		}
	}
	return nil
}

// RateEntry is an immutable rate line owned by its plan.
type RateEntry struct {
	ID                string
	PlanID            string
	CabCategory       string
	HasAirportLicense bool
	ShiftType         string
	DayOfWeek         DayOfWeek
	BaseAmount        float64
	RatePerKm         float64
}

// Total is the lease amount for the given driven distance.
func (e *RateEntry) Total(distanceKm float64) float64 {
	return e.BaseAmount + e.RatePerKm*distanceKm
}

type RatePlanRepository interface {
	CreatePlan(plan *RatePlan) error
	ClosePlan(planID string, end Date) error
	GetPlanByID(planID string) (*RatePlan, error)
	// FindPlanActiveOn returns the plan whose window contains the day,
	// or a NotFoundError.
	FindPlanActiveOn(on Date) (*RatePlan, error)
	FindAllPlans() ([]*RatePlan, error)
}
