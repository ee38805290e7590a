package models

import "time"

type ShiftModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	CabID             string `gorm:"index;type:uuid;not null"`
	DriverID          string `gorm:"index;type:uuid;not null"`
	ShiftType         string `gorm:"not null"`
	CabCategory       string
	ShareCategory     string
	HasAirportLicense bool
	CurrentProfileID  *string `gorm:"type:uuid"`
	LogonAt           time.Time
	LogoffAt          *time.Time
}

func (ShiftModel) TableName() string {
	return "shifts"
}

type ShiftAttributeValueModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	ShiftID         string `gorm:"index;type:uuid;not null"`
	AttributeTypeID string `gorm:"index;not null"`
	Value           string
	ValidFrom       time.Time `gorm:"not null"`
	ValidTo         *time.Time
}

func (ShiftAttributeValueModel) TableName() string {
	return "shift_attribute_values"
}
