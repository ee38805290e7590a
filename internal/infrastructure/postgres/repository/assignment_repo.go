package repository

import (
	"errors"
	"time"

	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAssignmentRepository struct {
	DB *gorm.DB
}

func NewDefaultAssignmentRepository(db *gorm.DB) *DefaultAssignmentRepository {
	return &DefaultAssignmentRepository{DB: db}
}

// Assign supersedes the shift's open assignment and creates the new
// one inside a single transaction, so the open-assignment invariant
// and the usage counters stay consistent under concurrent callers.
func (r *DefaultAssignmentRepository) Assign(assignment *domain.ShiftProfileAssignment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var current models.ShiftProfileAssignmentModel
		err := tx.
			Where("shift_id = ?", assignment.ShiftID).
			Where("end_date IS NULL").
			First(&current).Error
		switch {
		case err == nil:
			end := assignment.StartDate.AddDays(-1)
			if err := tx.
				Model(&models.ShiftProfileAssignmentModel{}).
				Where("id = ?", current.ID).
				Update("end_date", dateToTime(end)).Error; err != nil {
				return err
			}
			if err := decrementUsage(tx, current.ProfileID); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no open assignment to supersede
		default:
			return err
		}

		model := assignmentToModel(assignment)
		model.CreatedAt = time.Now()
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		assignment.CreatedAt = model.CreatedAt

		if err := tx.
			Model(&models.ShiftProfileModel{}).
			Where("id = ?", assignment.ProfileID).
			Update("usage_count", gorm.Expr("usage_count + 1")).Error; err != nil {
			return err
		}

		return tx.
			Model(&models.ShiftModel{}).
			Where("id = ?", assignment.ShiftID).
			Update("current_profile_id", assignment.ProfileID).Error
	})
}

// EndActive closes the shift's open assignment, releases the profile
// usage and clears the denormalized pointer, atomically.
func (r *DefaultAssignmentRepository) EndActive(shiftID string, end domain.Date) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var current models.ShiftProfileAssignmentModel
		err := tx.
			Where("shift_id = ?", shiftID).
			Where("end_date IS NULL").
			First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAssignmentNotFound
			}
			return err
		}

		if err := tx.
			Model(&models.ShiftProfileAssignmentModel{}).
			Where("id = ?", current.ID).
			Update("end_date", dateToTime(end)).Error; err != nil {
			return err
		}

		if err := decrementUsage(tx, current.ProfileID); err != nil {
			return err
		}

		return tx.
			Model(&models.ShiftModel{}).
			Where("id = ?", shiftID).
			Update("current_profile_id", nil).Error
	})
}

func (r *DefaultAssignmentRepository) GetActiveByShiftID(shiftID string) (*domain.ShiftProfileAssignment, error) {
	var model models.ShiftProfileAssignmentModel
	err := r.DB.
		Where("shift_id = ?", shiftID).
		Where("end_date IS NULL").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, err
	}
	return assignmentToDomain(&model), nil
}

func (r *DefaultAssignmentRepository) GetHistoryByShiftID(shiftID string) ([]*domain.ShiftProfileAssignment, error) {
	var assignmentModels []models.ShiftProfileAssignmentModel
	err := r.DB.
		Where("shift_id = ?", shiftID).
		Order("start_date desc").
		Find(&assignmentModels).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]*domain.ShiftProfileAssignment, len(assignmentModels))
	for i := range assignmentModels {
		assignments[i] = assignmentToDomain(&assignmentModels[i])
	}
	return assignments, nil
}

func (r *DefaultAssignmentRepository) FindOpenAssignments() ([]*domain.ShiftProfileAssignment, error) {
	var assignmentModels []models.ShiftProfileAssignmentModel
	if err := r.DB.Where("end_date IS NULL").Find(&assignmentModels).Error; err != nil {
		return nil, err
	}

	assignments := make([]*domain.ShiftProfileAssignment, len(assignmentModels))
	for i := range assignmentModels {
		assignments[i] = assignmentToDomain(&assignmentModels[i])
	}
	return assignments, nil
}

// decrementUsage never lets a counter drop below zero.
func decrementUsage(tx *gorm.DB, profileID string) error {
	return tx.
		Model(&models.ShiftProfileModel{}).
		Where("id = ?", profileID).
		Update("usage_count", gorm.Expr("GREATEST(usage_count - 1, 0)")).Error
}
