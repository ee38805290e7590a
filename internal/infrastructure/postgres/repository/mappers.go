package repository

import (
	"time"

	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/postgres/models"
)

func dateToTime(d domain.Date) time.Time {
	return d.Time()
}

func datePtrToTimePtr(d *domain.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

func timePtrToDatePtr(t *time.Time) *domain.Date {
	if t == nil {
		return nil
	}
	d := domain.DateOf(*t)
	return &d
}

func dayPtrToStringPtr(d *domain.DayOfWeek) *string {
	if d == nil {
		return nil
	}
	s := string(*d)
	return &s
}

func stringPtrToDayPtr(s *string) *domain.DayOfWeek {
	if s == nil {
		return nil
	}
	d := domain.DayOfWeek(*s)
	return &d
}

func overrideToModel(override *domain.RateOverride) *models.RateOverrideModel {
	return &models.RateOverrideModel{
		ID:        override.ID,
		OwnerID:   override.OwnerID,
		CabID:     override.CabID,
		ShiftType: override.ShiftType,
		DayOfWeek: dayPtrToStringPtr(override.DayOfWeek),
		Rate:      override.Rate,
		StartDate: dateToTime(override.StartDate),
		EndDate:   datePtrToTimePtr(override.EndDate),
		Active:    override.Active,
		Priority:  override.Priority,
		Reason:    override.Reason,
		CreatedAt: override.CreatedAt,
		UpdatedAt: override.UpdatedAt,
	}
}

func overrideToDomain(model *models.RateOverrideModel) *domain.RateOverride {
	return &domain.RateOverride{
		ID:        model.ID,
		OwnerID:   model.OwnerID,
		CabID:     model.CabID,
		ShiftType: model.ShiftType,
		DayOfWeek: stringPtrToDayPtr(model.DayOfWeek),
		Rate:      model.Rate,
		StartDate: domain.DateOf(model.StartDate),
		EndDate:   timePtrToDatePtr(model.EndDate),
		Active:    model.Active,
		Priority:  model.Priority,
		Reason:    model.Reason,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func planToModel(plan *domain.RatePlan) *models.RatePlanModel {
	model := &models.RatePlanModel{
		ID:        plan.ID,
		Name:      plan.Name,
		StartDate: dateToTime(plan.StartDate),
		EndDate:   datePtrToTimePtr(plan.EndDate),
		Active:    plan.Active,
		CreatedAt: plan.CreatedAt,
	}
	model.Entries = make([]models.RateEntryModel, len(plan.Entries))
	for i, entry := range plan.Entries {
		model.Entries[i] = models.RateEntryModel{
			ID:                entry.ID,
			PlanID:            entry.PlanID,
			CabCategory:       entry.CabCategory,
			HasAirportLicense: entry.HasAirportLicense,
			ShiftType:         entry.ShiftType,
			DayOfWeek:         string(entry.DayOfWeek),
			BaseAmount:        entry.BaseAmount,
			RatePerKm:         entry.RatePerKm,
		}
	}
	return model
}

func planToDomain(model *models.RatePlanModel) *domain.RatePlan {
	plan := &domain.RatePlan{
		ID:        model.ID,
		Name:      model.Name,
		StartDate: domain.DateOf(model.StartDate),
		EndDate:   timePtrToDatePtr(model.EndDate),
		Active:    model.Active,
		CreatedAt: model.CreatedAt,
	}
	plan.Entries = make([]domain.RateEntry, len(model.Entries))
	for i, entry := range model.Entries {
		plan.Entries[i] = domain.RateEntry{
			ID:                entry.ID,
			PlanID:            entry.PlanID,
			CabCategory:       entry.CabCategory,
			HasAirportLicense: entry.HasAirportLicense,
			ShiftType:         entry.ShiftType,
			DayOfWeek:         domain.DayOfWeek(entry.DayOfWeek),
			BaseAmount:        entry.BaseAmount,
			RatePerKm:         entry.RatePerKm,
		}
	}
	return plan
}

func profileToModel(profile *domain.ShiftProfile) *models.ShiftProfileModel {
	model := &models.ShiftProfileModel{
		ID:                profile.ID,
		Code:              profile.Code,
		Name:              profile.Name,
		CabCategory:       profile.CabCategory,
		ShareCategory:     profile.ShareCategory,
		HasAirportLicense: profile.HasAirportLicense,
		ShiftType:         profile.ShiftType,
		Category:          profile.Category,
		DisplayColor:      profile.DisplayColor,
		SortOrder:         profile.SortOrder,
		Active:            profile.Active,
		SystemProfile:     profile.SystemProfile,
		UsageCount:        profile.UsageCount,
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}
	model.Requirements = make([]models.ProfileRequirementModel, len(profile.Requirements))
	for i, requirement := range profile.Requirements {
		model.Requirements[i] = *requirementToModel(&requirement)
	}
	return model
}

func profileToDomain(model *models.ShiftProfileModel) *domain.ShiftProfile {
	profile := &domain.ShiftProfile{
		ID:                model.ID,
		Code:              model.Code,
		Name:              model.Name,
		CabCategory:       model.CabCategory,
		ShareCategory:     model.ShareCategory,
		HasAirportLicense: model.HasAirportLicense,
		ShiftType:         model.ShiftType,
		Category:          model.Category,
		DisplayColor:      model.DisplayColor,
		SortOrder:         model.SortOrder,
		Active:            model.Active,
		SystemProfile:     model.SystemProfile,
		UsageCount:        model.UsageCount,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
	profile.Requirements = make([]domain.ProfileAttributeRequirement, len(model.Requirements))
	for i, requirement := range model.Requirements {
		profile.Requirements[i] = domain.ProfileAttributeRequirement{
			ID:              requirement.ID,
			ProfileID:       requirement.ProfileID,
			AttributeTypeID: requirement.AttributeTypeID,
			IsRequired:      requirement.IsRequired,
			ExpectedValue:   requirement.ExpectedValue,
		}
	}
	return profile
}

func requirementToModel(requirement *domain.ProfileAttributeRequirement) *models.ProfileRequirementModel {
	return &models.ProfileRequirementModel{
		ID:              requirement.ID,
		ProfileID:       requirement.ProfileID,
		AttributeTypeID: requirement.AttributeTypeID,
		IsRequired:      requirement.IsRequired,
		ExpectedValue:   requirement.ExpectedValue,
	}
}

func assignmentToModel(assignment *domain.ShiftProfileAssignment) *models.ShiftProfileAssignmentModel {
	return &models.ShiftProfileAssignmentModel{
		ID:         assignment.ID,
		ShiftID:    assignment.ShiftID,
		ProfileID:  assignment.ProfileID,
		StartDate:  dateToTime(assignment.StartDate),
		EndDate:    datePtrToTimePtr(assignment.EndDate),
		Reason:     assignment.Reason,
		AssignedBy: assignment.AssignedBy,
		CreatedAt:  assignment.CreatedAt,
	}
}

func assignmentToDomain(model *models.ShiftProfileAssignmentModel) *domain.ShiftProfileAssignment {
	return &domain.ShiftProfileAssignment{
		ID:         model.ID,
		ShiftID:    model.ShiftID,
		ProfileID:  model.ProfileID,
		StartDate:  domain.DateOf(model.StartDate),
		EndDate:    timePtrToDatePtr(model.EndDate),
		Reason:     model.Reason,
		AssignedBy: model.AssignedBy,
		CreatedAt:  model.CreatedAt,
	}
}

func shiftToDomain(model *models.ShiftModel) *domain.Shift {
	return &domain.Shift{
		ID:                model.ID,
		CabID:             model.CabID,
		DriverID:          model.DriverID,
		ShiftType:         model.ShiftType,
		CabCategory:       model.CabCategory,
		ShareCategory:     model.ShareCategory,
		HasAirportLicense: model.HasAirportLicense,
		CurrentProfileID:  model.CurrentProfileID,
		LogonAt:           model.LogonAt,
		LogoffAt:          model.LogoffAt,
	}
}

func cabToDomain(model *models.CabModel) *domain.Cab {
	return &domain.Cab{
		ID:                model.ID,
		OwnerID:           model.OwnerID,
		PlateNumber:       model.PlateNumber,
		CabCategory:       model.CabCategory,
		HasAirportLicense: model.HasAirportLicense,
		Active:            model.Active,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func driverToDomain(model *models.DriverModel) *domain.Driver {
	return &domain.Driver{
		ID:            model.ID,
		Name:          model.Name,
		LicenseNumber: model.LicenseNumber,
		Active:        model.Active,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
