package repository

import (
	"errors"

	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDriverRepository struct {
	DB *gorm.DB
}

func NewDefaultDriverRepository(db *gorm.DB) *DefaultDriverRepository {
	return &DefaultDriverRepository{DB: db}
}

func (r *DefaultDriverRepository) CreateDriver(driver *domain.Driver) error {
	model := &models.DriverModel{
		ID:            driver.ID,
		Name:          driver.Name,
		LicenseNumber: driver.LicenseNumber,
		Active:        driver.Active,
	}
	if err := r.DB.Create(model).Error; err != nil {
		return err
	}
	driver.CreatedAt = model.CreatedAt
	driver.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultDriverRepository) UpdateDriver(driver *domain.Driver) error {
	return r.DB.
		Model(&models.DriverModel{}).
		Where("id = ?", driver.ID).
		Updates(map[string]interface{}{
			"name":           driver.Name,
			"license_number": driver.LicenseNumber,
			"active":         driver.Active,
		}).Error
}

func (r *DefaultDriverRepository) GetDriverByID(driverID string) (*domain.Driver, error) {
	var model models.DriverModel
	if err := r.DB.Where("id = ?", driverID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("driver", driverID)
		}
		return nil, err
	}
	return driverToDomain(&model), nil
}
