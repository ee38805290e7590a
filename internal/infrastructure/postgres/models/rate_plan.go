package models

import "time"

type RatePlanModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"not null"`
	StartDate time.Time `gorm:"index;not null"`
	EndDate   *time.Time
	Active    bool             `gorm:"default:true"`
	Entries   []RateEntryModel `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

func (RatePlanModel) TableName() string {
	return "rate_plans"
}

type RateEntryModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	PlanID            string `gorm:"index;type:uuid;not null"`
	CabCategory       string `gorm:"not null"`
	HasAirportLicense bool
	ShiftType         string `gorm:"not null"`
	DayOfWeek         string `gorm:"not null"`
	BaseAmount        float64
	RatePerKm         float64
}

func (RateEntryModel) TableName() string {
	return "rate_entries"
}
