package domain

import "time"

// Shift is one driver logon on a cab. The static attributes are
// snapshotted from the cab at logon time so profile matching is stable
// for the shift's lifetime. CurrentProfileID is a denormalized cache
// of the open assignment; the assignment table is the source of truth.
type Shift struct {
	ID                string
	CabID             string
	DriverID          string
	ShiftType         string
	CabCategory       string
	ShareCategory     string
	HasAirportLicense bool
	CurrentProfileID  *string
	LogonAt           time.Time
	LogoffAt          *time.Time
}

// ShiftAttributeValue is one dynamic key/value property currently
// attached to a shift. A nil ValidTo means the value is current.
type ShiftAttributeValue struct {
	ID              string
	ShiftID         string
	AttributeTypeID string
	Value           string
	ValidFrom       Date
	ValidTo         *Date
}

type ShiftRepository interface {
	CreateShift(shift *Shift) error
	GetShiftByID(shiftID string) (*Shift, error)
	UpdateCurrentProfile(shiftID string, profileID *string) error
	CloseShift(shiftID string, logoffAt time.Time) error
	FindOpenShifts() ([]*Shift, error)
}

type AttributeValueRepository interface {
	// FindCurrentValues returns the shift's current attribute set keyed
	// by attribute type id.
	FindCurrentValues(shiftID string) (map[string]string, error)
	// FindValuesOn returns the attribute set valid on the given day. A
	// value's end day is exclusive: the superseding value owns it.
	FindValuesOn(shiftID string, on Date) (map[string]string, error)
	SetValue(value *ShiftAttributeValue) error
	EndValue(shiftID, attributeTypeID string, to Date) error
}
