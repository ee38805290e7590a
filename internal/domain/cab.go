package domain

import "time"

type Cab struct {
	ID                string
	OwnerID           string
	PlateNumber       string
	CabCategory       string
	HasAirportLicense bool
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Driver struct {
	ID            string
	Name          string
	LicenseNumber string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CabRepository interface {
	CreateCab(cab *Cab) error
	UpdateCab(cab *Cab) error
	GetCabByID(cabID string) (*Cab, error)
	GetCabsByOwnerID(ownerID string, page, limit int) ([]*Cab, int64, error)
}

type DriverRepository interface {
	CreateDriver(driver *Driver) error
	UpdateDriver(driver *Driver) error
	GetDriverByID(driverID string) (*Driver, error)
}
