package models

import (
	"time"

	"gorm.io/gorm"
)

type ShiftProfileModel struct {
	ID                string  `gorm:"primaryKey;type:uuid"`
	Code              string  `gorm:"uniqueIndex;not null"`
	Name              string  `gorm:"not null"`
	CabCategory       *string
	ShareCategory     *string
	HasAirportLicense *bool
	ShiftType         *string
	Category          string
	DisplayColor      string
	SortOrder         int  `gorm:"default:0"`
	Active            bool `gorm:"default:true"`
	SystemProfile     bool `gorm:"default:false"`
	UsageCount        int  `gorm:"default:0"`
	Requirements      []ProfileRequirementModel `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (ShiftProfileModel) TableName() string {
	return "shift_profiles"
}

type ProfileRequirementModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	ProfileID       string `gorm:"type:uuid;not null;uniqueIndex:idx_profile_attribute"`
	AttributeTypeID string `gorm:"not null;uniqueIndex:idx_profile_attribute"`
	IsRequired      bool
	ExpectedValue   *string
}

func (ProfileRequirementModel) TableName() string {
	return "profile_attribute_requirements"
}
