package models

import (
	"time"

	"gorm.io/gorm"
)

type RateOverrideModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	OwnerID   string  `gorm:"index;not null"`
	CabID     *string `gorm:"index"`
	ShiftType *string
	DayOfWeek *string
	Rate      float64 `gorm:"not null"`
	StartDate time.Time `gorm:"index;not null"`
	EndDate   *time.Time
	Active    bool `gorm:"default:true"`
	Priority  int  `gorm:"not null"`
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (RateOverrideModel) TableName() string {
	return "rate_overrides"
}
