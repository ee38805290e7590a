package shiftdto

import "github.com/droschke/fleet-rate-service/internal/domain"

type OpenShiftInput struct {
	CabID         string
	DriverID      string
	ShiftType     string
	ShareCategory string
}

type SetAttributeInput struct {
	ShiftID         string
	AttributeTypeID string
	Value           string
	ValidFrom       domain.Date
}
