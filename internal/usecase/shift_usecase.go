package usecase

import (
	"time"

	"github.com/droschke/fleet-rate-service/internal/domain"
	shiftdto "github.com/droschke/fleet-rate-service/internal/usecase/dto/shift"
	"github.com/google/uuid"
)

type ShiftUsecase interface {
	OpenShift(input *shiftdto.OpenShiftInput) (*domain.Shift, error)
	CloseShift(shiftID string) error
	GetShiftByID(shiftID string) (*domain.Shift, error)
	SetAttribute(input *shiftdto.SetAttributeInput) error
	RemoveAttribute(shiftID, attributeTypeID string) error
}

type DefaultShiftUsecase struct {
	shiftRepo     domain.ShiftRepository
	cabRepo       domain.CabRepository
	driverRepo    domain.DriverRepository
	attributeRepo domain.AttributeValueRepository
}

func NewDefaultShiftUsecase(
	shiftRepo domain.ShiftRepository,
	cabRepo domain.CabRepository,
	driverRepo domain.DriverRepository,
	attributeRepo domain.AttributeValueRepository,
) *DefaultShiftUsecase {
	return &DefaultShiftUsecase{
		shiftRepo:     shiftRepo,
		cabRepo:       cabRepo,
		driverRepo:    driverRepo,
		attributeRepo: attributeRepo,
	}
}

// OpenShift logs a driver on. The cab's static attributes are
// snapshotted onto the shift so profile matching stays stable even if
// the cab record is edited mid-shift.
func (uc *DefaultShiftUsecase) OpenShift(input *shiftdto.OpenShiftInput) (*domain.Shift, error) {
	cab, err := uc.cabRepo.GetCabByID(input.CabID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.driverRepo.GetDriverByID(input.DriverID); err != nil {
		return nil, err
	}
	if input.ShiftType == "" {
		return nil, domain.NewValidationError("shift_type", "shift type is required")
	}

	shift := &domain.Shift{
		ID:                uuid.New().String(),
		CabID:             input.CabID,
		DriverID:          input.DriverID,
		ShiftType:         input.ShiftType,
		CabCategory:       cab.CabCategory,
		ShareCategory:     input.ShareCategory,
		HasAirportLicense: cab.HasAirportLicense,
		LogonAt:           time.Now(),
	}

	if err := uc.shiftRepo.CreateShift(shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (uc *DefaultShiftUsecase) CloseShift(shiftID string) error {
	if _, err := uc.shiftRepo.GetShiftByID(shiftID); err != nil {
		return err
	}
	return uc.shiftRepo.CloseShift(shiftID, time.Now())
}

func (uc *DefaultShiftUsecase) GetShiftByID(shiftID string) (*domain.Shift, error) {
	return uc.shiftRepo.GetShiftByID(shiftID)
}

func (uc *DefaultShiftUsecase) SetAttribute(input *shiftdto.SetAttributeInput) error {
	if _, err := uc.shiftRepo.GetShiftByID(input.ShiftID); err != nil {
		return err
	}
	return uc.attributeRepo.SetValue(&domain.ShiftAttributeValue{
		ID:              uuid.New().String(),
		ShiftID:         input.ShiftID,
		AttributeTypeID: input.AttributeTypeID,
		Value:           input.Value,
		ValidFrom:       input.ValidFrom,
	})
}

func (uc *DefaultShiftUsecase) RemoveAttribute(shiftID, attributeTypeID string) error {
	return uc.attributeRepo.EndValue(shiftID, attributeTypeID, domain.Today())
}
