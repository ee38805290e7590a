package overridedto

import "github.com/droschke/fleet-rate-service/internal/domain"

type CreateOverrideInput struct {
	OwnerID   string
	CabID     *string
	ShiftType *string
	DayOfWeek *domain.DayOfWeek
	Rate      float64
	StartDate domain.Date
	EndDate   *domain.Date
	Reason    string
}

type UpdateOverrideInput struct {
	OverrideID string
	CabID      *string
	ShiftType  *string
	DayOfWeek  *domain.DayOfWeek
	Rate       float64
	StartDate  domain.Date
	EndDate    *domain.Date
	Reason     string
}

type ListOverridesInput struct {
	OwnerID   string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}
