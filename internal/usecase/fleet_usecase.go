package usecase

import (
	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/google/uuid"
)

// FleetUsecase covers the plain cab and driver records the rate and
// profile engine resolves against.
type FleetUsecase interface {
	CreateCab(cab *domain.Cab) (*domain.Cab, error)
	UpdateCab(cab *domain.Cab) error
	GetCabByID(cabID string) (*domain.Cab, error)
	GetCabsByOwnerID(ownerID string, page, limit int) ([]*domain.Cab, int64, error)
	CreateDriver(driver *domain.Driver) (*domain.Driver, error)
	UpdateDriver(driver *domain.Driver) error
	GetDriverByID(driverID string) (*domain.Driver, error)
}

type DefaultFleetUsecase struct {
	cabRepo    domain.CabRepository
	driverRepo domain.DriverRepository
}

func NewDefaultFleetUsecase(cabRepo domain.CabRepository, driverRepo domain.DriverRepository) *DefaultFleetUsecase {
	return &DefaultFleetUsecase{cabRepo: cabRepo, driverRepo: driverRepo}
}

func (uc *DefaultFleetUsecase) CreateCab(cab *domain.Cab) (*domain.Cab, error) {
	if cab.PlateNumber == "" {
		return nil, domain.NewValidationError("plate_number", "plate number is required")
	}
	cab.ID = uuid.New().String()
	cab.Active = true
	if err := uc.cabRepo.CreateCab(cab); err != nil {
		return nil, err
	}
	return cab, nil
}

func (uc *DefaultFleetUsecase) UpdateCab(cab *domain.Cab) error {
	return uc.cabRepo.UpdateCab(cab)
}

func (uc *DefaultFleetUsecase) GetCabByID(cabID string) (*domain.Cab, error) {
	return uc.cabRepo.GetCabByID(cabID)
}

func (uc *DefaultFleetUsecase) GetCabsByOwnerID(ownerID string, page, limit int) ([]*domain.Cab, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return uc.cabRepo.GetCabsByOwnerID(ownerID, page, limit)
}

func (uc *DefaultFleetUsecase) CreateDriver(driver *domain.Driver) (*domain.Driver, error) {
	if driver.Name == "" {
		return nil, domain.NewValidationError("name", "driver name is required")
	}
	driver.ID = uuid.New().String()
	driver.Active = true
	if err := uc.driverRepo.CreateDriver(driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (uc *DefaultFleetUsecase) UpdateDriver(driver *domain.Driver) error {
	return uc.driverRepo.UpdateDriver(driver)
}

func (uc *DefaultFleetUsecase) GetDriverByID(driverID string) (*domain.Driver, error) {
	return uc.driverRepo.GetDriverByID(driverID)
}
