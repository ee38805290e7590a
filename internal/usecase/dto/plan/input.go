package plandto

import "github.com/droschke/fleet-rate-service/internal/domain"

type CreatePlanInput struct {
	Name      string
	StartDate domain.Date
	EndDate   *domain.Date
	Entries   []CreateEntryInput
}

type CreateEntryInput struct {
	CabCategory       string
	HasAirportLicense bool
	ShiftType         string
	DayOfWeek         domain.DayOfWeek
	BaseAmount        float64
	RatePerKm         float64
}

type LookupEntryInput struct {
	CabCategory       string
	HasAirportLicense bool
	ShiftType         string
	DayOfWeek         domain.DayOfWeek
	On                domain.Date
}
