package repository

import (
	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAttributeValueRepository struct {
	DB *gorm.DB
}

func NewDefaultAttributeValueRepository(db *gorm.DB) *DefaultAttributeValueRepository {
	return &DefaultAttributeValueRepository{DB: db}
}

func (r *DefaultAttributeValueRepository) FindCurrentValues(shiftID string) (map[string]string, error) {
	var valueModels []models.ShiftAttributeValueModel
	err := r.DB.
		Where("shift_id = ?", shiftID).
		Where("valid_to IS NULL").
		Find(&valueModels).Error
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(valueModels))
	for _, value := range valueModels {
		values[value.AttributeTypeID] = value.Value
	}
	return values, nil
}

func (r *DefaultAttributeValueRepository) FindValuesOn(shiftID string, on domain.Date) (map[string]string, error) {
	var valueModels []models.ShiftAttributeValueModel
	err := r.DB.
		Where("shift_id = ?", shiftID).
		Where("valid_from <= ?", dateToTime(on)).
		Where("valid_to IS NULL OR valid_to > ?", dateToTime(on)).
		Find(&valueModels).Error
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(valueModels))
	for _, value := range valueModels {
		values[value.AttributeTypeID] = value.Value
	}
	return values, nil
}

// SetValue ends any current value for the attribute type before
// writing the new one, keeping a full value history per shift.
func (r *DefaultAttributeValueRepository) SetValue(value *domain.ShiftAttributeValue) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&models.ShiftAttributeValueModel{}).
			Where("shift_id = ?", value.ShiftID).
			Where("attribute_type_id = ?", value.AttributeTypeID).
			Where("valid_to IS NULL").
			Update("valid_to", dateToTime(value.ValidFrom)).Error
		if err != nil {
			return err
		}

		return tx.Create(&models.ShiftAttributeValueModel{
			ID:              value.ID,
			ShiftID:         value.ShiftID,
			AttributeTypeID: value.AttributeTypeID,
			Value:           value.Value,
			ValidFrom:       dateToTime(value.ValidFrom),
		}).Error
	})
}

func (r *DefaultAttributeValueRepository) EndValue(shiftID, attributeTypeID string, to domain.Date) error {
	return r.DB.
		Model(&models.ShiftAttributeValueModel{}).
		Where("shift_id = ?", shiftID).
		Where("attribute_type_id = ?", attributeTypeID).
		Where("valid_to IS NULL").
		Update("valid_to", dateToTime(to)).Error
}
