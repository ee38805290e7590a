package profiledto

import "github.com/droschke/fleet-rate-service/internal/domain"

type CreateProfileInput struct {
	Code              string
	Name              string
	CabCategory       *string
	ShareCategory     *string
	HasAirportLicense *bool
	ShiftType         *string
	Category          string
	DisplayColor      string
	SortOrder         int
	SystemProfile     bool
}

type UpdateProfileInput struct {
	ProfileID         string
	Name              string
	CabCategory       *string
	ShareCategory     *string
	HasAirportLicense *bool
	ShiftType         *string
	Category          string
	DisplayColor      string
	SortOrder         int
	Active            bool
}

type AddRequirementInput struct {
	ProfileID       string
	AttributeTypeID string
	IsRequired      bool
	ExpectedValue   *string
}

type AssignProfileInput struct {
	ShiftID    string
	ProfileID  string
	StartDate  domain.Date
	Reason     string
	AssignedBy string
}
