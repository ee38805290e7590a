package postgres

import (
	"log"

	"github.com/droschke/fleet-rate-service/internal/config"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.FleetConfig) *gorm.DB {
	dsn := cfg.FleetDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.CabModel{},
		&models.DriverModel{},
		&models.ShiftModel{},
		&models.ShiftAttributeValueModel{},
		&models.RateOverrideModel{},
		&models.RatePlanModel{},
		&models.RateEntryModel{},
		&models.ShiftProfileModel{},
		&models.ProfileRequirementModel{},
		&models.ShiftProfileAssignmentModel{},
	)

	return db
}
