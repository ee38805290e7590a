package repository

import (
	"errors"
	"fmt"

	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOverrideRepository struct {
	DB *gorm.DB
}

func NewDefaultOverrideRepository(db *gorm.DB) *DefaultOverrideRepository {
	return &DefaultOverrideRepository{DB: db}
}

func (r *DefaultOverrideRepository) CreateOverride(override *domain.RateOverride) error {
	model := overrideToModel(override)
	if err := r.DB.Create(model).Error; err != nil {
		return err
	}
	override.CreatedAt = model.CreatedAt
	override.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultOverrideRepository) UpdateOverride(override *domain.RateOverride) error {
	model := overrideToModel(override)
	// Save writes every column so cleared filters and end dates persist.
	return r.DB.Save(model).Error
}

func (r *DefaultOverrideRepository) DeleteOverride(overrideID string) error {
	return r.DB.Delete(&models.RateOverrideModel{ID: overrideID}).Error
}

func (r *DefaultOverrideRepository) GetOverrideByID(overrideID string) (*domain.RateOverride, error) {
	var model models.RateOverrideModel
	if err := r.DB.Where("id = ?", overrideID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("rate override", overrideID)
		}
		return nil, err
	}
	return overrideToDomain(&model), nil
}

func (r *DefaultOverrideRepository) FindActiveMatching(ownerID string, cabID, shiftType string, day domain.DayOfWeek, on domain.Date) ([]*domain.RateOverride, error) {
	var candidates []models.RateOverrideModel

	err := r.DB.
		Where("owner_id = ?", ownerID).
		Where("active = ?", true).
		Where("cab_id IS NULL OR cab_id = ?", cabID).
		Where("shift_type IS NULL OR shift_type = ?", shiftType).
		Where("day_of_week IS NULL OR day_of_week = ?", string(day)).
		Where("start_date <= ?", dateToTime(on)).
		Where("end_date IS NULL OR end_date >= ?", dateToTime(on)).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	overrides := make([]*domain.RateOverride, len(candidates))
	for i := range candidates {
		overrides[i] = overrideToDomain(&candidates[i])
	}
	return overrides, nil
}

func (r *DefaultOverrideRepository) FindSameKey(ownerID string, cabID *string, shiftType *string, day *domain.DayOfWeek) ([]*domain.RateOverride, error) {
	query := r.DB.Where("owner_id = ?", ownerID)
	query = whereNullableEquals(query, "cab_id", cabID)
	query = whereNullableEquals(query, "shift_type", shiftType)
	query = whereNullableEquals(query, "day_of_week", dayPtrToStringPtr(day))

	var siblings []models.RateOverrideModel
	if err := query.Find(&siblings).Error; err != nil {
		return nil, err
	}

	overrides := make([]*domain.RateOverride, len(siblings))
	for i := range siblings {
		overrides[i] = overrideToDomain(&siblings[i])
	}
	return overrides, nil
}

func (r *DefaultOverrideRepository) FindOpenEndedByOwnerCab(ownerID string, cabID *string) ([]*domain.RateOverride, error) {
	query := r.DB.
		Where("owner_id = ?", ownerID).
		Where("active = ?", true).
		Where("end_date IS NULL")
	query = whereNullableEquals(query, "cab_id", cabID)

	var open []models.RateOverrideModel
	if err := query.Find(&open).Error; err != nil {
		return nil, err
	}

	overrides := make([]*domain.RateOverride, len(open))
	for i := range open {
		overrides[i] = overrideToDomain(&open[i])
	}
	return overrides, nil
}

func (r *DefaultOverrideRepository) GetOverridesByOwnerID(ownerID string, page, limit int, sortBy, sortOrder string) ([]*domain.RateOverride, int64, error) {
	var overrideModels []models.RateOverrideModel
	var total int64

	safeSortBy := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"start_date": true,
		"priority":   true,
	}
	if !safeSortBy[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	offset := (page - 1) * limit
	orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)

	err := r.DB.
		Model(&models.RateOverrideModel{}).
		Where("owner_id = ?", ownerID).
		Order(orderClause).
		Limit(limit).
		Offset(offset).
		Find(&overrideModels).Error
	if err != nil {
		return nil, 0, err
	}

	if err := r.DB.Model(&models.RateOverrideModel{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	overrides := make([]*domain.RateOverride, len(overrideModels))
	for i := range overrideModels {
		overrides[i] = overrideToDomain(&overrideModels[i])
	}
	return overrides, total, nil
}

// whereNullableEquals matches a nullable filter column exactly: a nil
// value matches only NULL rows, a set value only equal rows.
func whereNullableEquals(query *gorm.DB, column string, value *string) *gorm.DB {
	if value == nil {
		return query.Where(column + " IS NULL")
	}
	return query.Where(column+" = ?", *value)
}
