package repository

import (
	"errors"

	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProfileRepository struct {
	DB *gorm.DB
}

func NewDefaultProfileRepository(db *gorm.DB) *DefaultProfileRepository {
	return &DefaultProfileRepository{DB: db}
}

func (r *DefaultProfileRepository) CreateProfile(profile *domain.ShiftProfile) error {
	model := profileToModel(profile)
	if err := r.DB.Create(model).Error; err != nil {
		return err
	}
	profile.CreatedAt = model.CreatedAt
	profile.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DefaultProfileRepository) UpdateProfile(profile *domain.ShiftProfile) error {
	return r.DB.
		Model(&models.ShiftProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"name":                profile.Name,
			"cab_category":        profile.CabCategory,
			"share_category":      profile.ShareCategory,
			"has_airport_license": profile.HasAirportLicense,
			"shift_type":          profile.ShiftType,
			"category":            profile.Category,
			"display_color":       profile.DisplayColor,
			"sort_order":          profile.SortOrder,
			"active":              profile.Active,
		}).Error
}

func (r *DefaultProfileRepository) DeleteProfile(profileID string) error {
	return r.DB.Delete(&models.ShiftProfileModel{ID: profileID}).Error
}

func (r *DefaultProfileRepository) GetProfileByID(profileID string) (*domain.ShiftProfile, error) {
	var model models.ShiftProfileModel
	if err := r.DB.Preload("Requirements").Where("id = ?", profileID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("shift profile", profileID)
		}
		return nil, err
	}
	return profileToDomain(&model), nil
}

func (r *DefaultProfileRepository) GetProfileByCode(code string) (*domain.ShiftProfile, error) {
	var model models.ShiftProfileModel
	if err := r.DB.Preload("Requirements").Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("shift profile", code)
		}
		return nil, err
	}
	return profileToDomain(&model), nil
}

func (r *DefaultProfileRepository) FindActiveMatchingStatic(cabCategory, shareCategory string, hasAirportLicense bool, shiftType string) ([]*domain.ShiftProfile, error) {
	var profileModels []models.ShiftProfileModel

	err := r.DB.
		Preload("Requirements").
		Where("active = ?", true).
		Where("cab_category IS NULL OR cab_category = ?", cabCategory).
		Where("share_category IS NULL OR share_category = ?", shareCategory).
		Where("has_airport_license IS NULL OR has_airport_license = ?", hasAirportLicense).
		Where("shift_type IS NULL OR shift_type = ?", shiftType).
		Order("sort_order asc").
		Find(&profileModels).Error
	if err != nil {
		return nil, err
	}

	profiles := make([]*domain.ShiftProfile, len(profileModels))
	for i := range profileModels {
		profiles[i] = profileToDomain(&profileModels[i])
	}
	return profiles, nil
}

func (r *DefaultProfileRepository) FindAllProfiles() ([]*domain.ShiftProfile, error) {
	var profileModels []models.ShiftProfileModel
	if err := r.DB.Preload("Requirements").Order("sort_order asc").Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]*domain.ShiftProfile, len(profileModels))
	for i := range profileModels {
		profiles[i] = profileToDomain(&profileModels[i])
	}
	return profiles, nil
}

func (r *DefaultProfileRepository) SetUsageCount(profileID string, count int) error {
	return r.DB.
		Model(&models.ShiftProfileModel{}).
		Where("id = ?", profileID).
		Update("usage_count", count).Error
}

func (r *DefaultProfileRepository) AddRequirement(requirement *domain.ProfileAttributeRequirement) error {
	return r.DB.Create(requirementToModel(requirement)).Error
}

func (r *DefaultProfileRepository) RemoveRequirement(requirementID string) error {
	return r.DB.Delete(&models.ProfileRequirementModel{ID: requirementID}).Error
}
