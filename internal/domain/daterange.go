package domain

import "time"

// Date is a calendar day without time-of-day. All rate and profile
// validity windows are day-precision.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

func Today() Date {
	return DateOf(time.Now())
}

func (d Date) Time() time.Time { return d.t }

func (d Date) Year() int        { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int         { return d.t.Day() }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) String() string { return d.t.Format("2006-01-02") }

// DayOfWeek is the day-of-week filter value stored on overrides and
// rate entries.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

var weekdayNames = map[time.Weekday]DayOfWeek{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

func (d Date) DayOfWeek() DayOfWeek {
	return weekdayNames[d.t.Weekday()]
}

// DateRange is a validity window. A nil End means open-ended.
type DateRange struct {
	Start Date
	End   *Date
}

// Overlaps reports whether two windows share at least one day.
// An open end counts as unbounded.
func (r DateRange) Overlaps(other DateRange) bool {
	if other.End != nil && other.End.Before(r.Start) {
		return false
	}
	if r.End != nil && r.End.Before(other.Start) {
		return false
	}
	return true
}

// Contains reports whether the given day falls inside the window.
func (r DateRange) Contains(on Date) bool {
	if on.Before(r.Start) {
		return false
	}
	if r.End != nil && on.After(*r.End) {
		return false
	}
	return true
}

// Validate rejects windows whose end precedes their start.
func (r DateRange) Validate() error {
	if r.End != nil && r.End.Before(r.Start) {
		return NewValidationError("end_date", "end date is before start date")
	}
	return nil
}
