package repository

import (
	"errors"
	"time"

	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultShiftRepository struct {
	DB *gorm.DB
}

func NewDefaultShiftRepository(db *gorm.DB) *DefaultShiftRepository {
	return &DefaultShiftRepository{DB: db}
}

func (r *DefaultShiftRepository) CreateShift(shift *domain.Shift) error {
	model := &models.ShiftModel{
		ID:                shift.ID,
		CabID:             shift.CabID,
		DriverID:          shift.DriverID,
		ShiftType:         shift.ShiftType,
		CabCategory:       shift.CabCategory,
		ShareCategory:     shift.ShareCategory,
		HasAirportLicense: shift.HasAirportLicense,
		CurrentProfileID:  shift.CurrentProfileID,
		LogonAt:           shift.LogonAt,
	}
	return r.DB.Create(model).Error
}

func (r *DefaultShiftRepository) GetShiftByID(shiftID string) (*domain.Shift, error) {
	var model models.ShiftModel
	if err := r.DB.Where("id = ?", shiftID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("shift", shiftID)
		}
		return nil, err
	}
	return shiftToDomain(&model), nil
}

func (r *DefaultShiftRepository) UpdateCurrentProfile(shiftID string, profileID *string) error {
	return r.DB.
		Model(&models.ShiftModel{}).
		Where("id = ?", shiftID).
		Update("current_profile_id", profileID).Error
}

func (r *DefaultShiftRepository) CloseShift(shiftID string, logoffAt time.Time) error {
	return r.DB.
		Model(&models.ShiftModel{}).
		Where("id = ?", shiftID).
		Update("logoff_at", logoffAt).Error
}

func (r *DefaultShiftRepository) FindOpenShifts() ([]*domain.Shift, error) {
	var shiftModels []models.ShiftModel
	if err := r.DB.Where("logoff_at IS NULL").Find(&shiftModels).Error; err != nil {
		return nil, err
	}

	shifts := make([]*domain.Shift, len(shiftModels))
	for i := range shiftModels {
		shifts[i] = shiftToDomain(&shiftModels[i])
	}
	return shifts, nil
}
