package repository

import (
	"errors"

	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRatePlanRepository struct {
	DB *gorm.DB
}

func NewDefaultRatePlanRepository(db *gorm.DB) *DefaultRatePlanRepository {
	return &DefaultRatePlanRepository{DB: db}
}

func (r *DefaultRatePlanRepository) CreatePlan(plan *domain.RatePlan) error {
	model := planToModel(plan)
	if err := r.DB.Create(model).Error; err != nil {
		return err
	}
	plan.CreatedAt = model.CreatedAt
	return nil
}

func (r *DefaultRatePlanRepository) ClosePlan(planID string, end domain.Date) error {
	result := r.DB.
		Model(&models.RatePlanModel{}).
		Where("id = ?", planID).
		Update("end_date", dateToTime(end))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("rate plan", planID)
	}
	return nil
}

func (r *DefaultRatePlanRepository) GetPlanByID(planID string) (*domain.RatePlan, error) {
	var model models.RatePlanModel
	if err := r.DB.Preload("Entries").Where("id = ?", planID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("rate plan", planID)
		}
		return nil, err
	}
	return planToDomain(&model), nil
}

func (r *DefaultRatePlanRepository) FindPlanActiveOn(on domain.Date) (*domain.RatePlan, error) {
	var model models.RatePlanModel
	err := r.DB.
		Preload("Entries").
		Where("active = ?", true).
		Where("start_date <= ?", dateToTime(on)).
		Where("end_date IS NULL OR end_date >= ?", dateToTime(on)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("rate plan", "active on "+on.String())
		}
		return nil, err
	}
	return planToDomain(&model), nil
}

func (r *DefaultRatePlanRepository) FindAllPlans() ([]*domain.RatePlan, error) {
	var planModels []models.RatePlanModel
	if err := r.DB.Preload("Entries").Order("start_date desc").Find(&planModels).Error; err != nil {
		return nil, err
	}

	plans := make([]*domain.RatePlan, len(planModels))
	for i := range planModels {
		plans[i] = planToDomain(&planModels[i])
	}
	return plans, nil
}
