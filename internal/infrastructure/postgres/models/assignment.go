package models

import "time"

type ShiftProfileAssignmentModel struct {
	ID         string `gorm:"primaryKey"`
	ShiftID    string `gorm:"index;type:uuid;not null"`
	ProfileID  string `gorm:"index;type:uuid;not null"`
	StartDate  time.Time `gorm:"not null"`
	EndDate    *time.Time
	Reason     string
	AssignedBy string
	CreatedAt  time.Time
}

func (ShiftProfileAssignmentModel) TableName() string {
	return "shift_profile_assignments"
}
