package repository

import (
	"errors"

	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCabRepository struct {
	DB *gorm.DB
}

func NewDefaultCabRepository(db *gorm.DB) *DefaultCabRepository {
	return &DefaultCabRepository{DB: db}
}

func (r *DefaultCabRepository) CreateCab(cab *domain.Cab) error {
	model := &models.CabModel{
		ID:                cab.ID,
		OwnerID:           cab.OwnerID,
		PlateNumber:       cab.PlateNumber,
		CabCategory:       cab.CabCategory,
		HasAirportLicense: cab.HasAirportLicense,
		Active:            cab.Active,
	}
	if err := r.DB.Create(model).Error; err != nil {
		return err
	}
	cab.CreatedAt = model.CreatedAt
	cab.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultCabRepository) UpdateCab(cab *domain.Cab) error {
	return r.DB.
		Model(&models.CabModel{}).
		Where("id = ?", cab.ID).
		Updates(map[string]interface{}{
			"cab_category":        cab.CabCategory,
			"has_airport_license": cab.HasAirportLicense,
			"plate_number":        cab.PlateNumber,
			"active":              cab.Active,
		}).Error
}

func (r *DefaultCabRepository) GetCabByID(cabID string) (*domain.Cab, error) {
	var model models.CabModel
	if err := r.DB.Where("id = ?", cabID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("cab", cabID)
		}
		return nil, err
	}
	return cabToDomain(&model), nil
}

func (r *DefaultCabRepository) GetCabsByOwnerID(ownerID string, page, limit int) ([]*domain.Cab, int64, error) {
	var cabModels []models.CabModel
	var total int64

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	offset := (page - 1) * limit

	err := r.DB.
		Model(&models.CabModel{}).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&cabModels).Error
	if err != nil {
		return nil, 0, err
	}

	if err := r.DB.Model(&models.CabModel{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	cabs := make([]*domain.Cab, len(cabModels))
	for i := range cabModels {
		cabs[i] = cabToDomain(&cabModels[i])
	}
	return cabs, total, nil
}
