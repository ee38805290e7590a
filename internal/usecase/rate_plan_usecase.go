package usecase

import (
	"github.com/droschke/fleet-rate-service/internal/domain"
	plandto "github.com/droschke/fleet-rate-service/internal/usecase/dto/plan"
	"github.com/google/uuid"
)

type RatePlanUsecase interface {
	CreatePlan(input *plandto.CreatePlanInput) (*domain.RatePlan, error)
	ClosePlan(planID string, end domain.Date) error
	LookupEntry(input *plandto.LookupEntryInput) (*domain.RateEntry, error)
	GetPlanByID(planID string) (*domain.RatePlan, error)
	ListPlans() ([]*domain.RatePlan, error)
}

type DefaultRatePlanUsecase struct {
	planRepo domain.RatePlanRepository
}

func NewDefaultRatePlanUsecase(planRepo domain.RatePlanRepository) *DefaultRatePlanUsecase {
	return &DefaultRatePlanUsecase{planRepo: planRepo}
}

// CreatePlan opens a new dated rate plan with its full entry set.
// Plans are immutable after creation: a wrong entry means closing the
// plan and opening a corrected one. The new plan's window must not
// overlap any other active plan.
func (uc *DefaultRatePlanUsecase) CreatePlan(input *plandto.CreatePlanInput) (*domain.RatePlan, error) {
	if input.Name == "" {
		return nil, domain.NewValidationError("name", "plan name is required")
	}
	if len(input.Entries) == 0 {
		return nil, domain.NewValidationError("entries", "plan needs at least one rate entry")
	}

	plan := &domain.RatePlan{
		ID:        uuid.New().String(),
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Active:    true,
	}
	if err := plan.Range().Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.planRepo.FindAllPlans()
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.Active && plan.Range().Overlaps(other.Range()) {
			return nil, domain.NewConflictError("rate plan", other.ID)
		}
	}

	plan.Entries = make([]domain.RateEntry, len(input.Entries))
	for i, entry := range input.Entries {
		plan.Entries[i] = domain.RateEntry{
			ID:                uuid.New().String(),
			PlanID:            plan.ID,
			CabCategory:       entry.CabCategory,
			HasAirportLicense: entry.HasAirportLicense,
			ShiftType:         entry.ShiftType,
			DayOfWeek:         entry.DayOfWeek,
			BaseAmount:        entry.BaseAmount,
			RatePerKm:         entry.RatePerKm,
		}
	}

	if err := uc.planRepo.CreatePlan(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// ClosePlan sets the plan's end date, the only mutation a plan allows.
func (uc *DefaultRatePlanUsecase) ClosePlan(planID string, end domain.Date) error {
	plan, err := uc.planRepo.GetPlanByID(planID)
	if err != nil {
		return err
	}
	if end.Before(plan.StartDate) {
		return domain.NewValidationError("end_date", "end date is before plan start")
	}
	return uc.planRepo.ClosePlan(planID, end)
}

func (uc *DefaultRatePlanUsecase) LookupEntry(input *plandto.LookupEntryInput) (*domain.RateEntry, error) {
	plan, err := uc.planRepo.FindPlanActiveOn(input.On)
	if err != nil {
		return nil, err
	}

	entry := plan.FindEntry(input.CabCategory, input.HasAirportLicense, input.ShiftType, input.DayOfWeek)
	if entry == nil {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

func (uc *DefaultRatePlanUsecase) GetPlanByID(planID string) (*domain.RatePlan, error) {
	return uc.planRepo.GetPlanByID(planID)
}

func (uc *DefaultRatePlanUsecase) ListPlans() ([]*domain.RatePlan, error) {
	return uc.planRepo.FindAllPlans()
}
