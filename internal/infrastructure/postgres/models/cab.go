package models

import (
	"time"

	"gorm.io/gorm"
)

type CabModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	OwnerID           string `gorm:"index;not null"`
	PlateNumber       string `gorm:"uniqueIndex;not null"`
	CabCategory       string
	HasAirportLicense bool
	Active            bool `gorm:"default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (CabModel) TableName() string {
	return "cabs"
}

type DriverModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Name          string `gorm:"not null"`
	LicenseNumber string `gorm:"uniqueIndex"`
	Active        bool   `gorm:"default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (DriverModel) TableName() string {
	return "drivers"
}
