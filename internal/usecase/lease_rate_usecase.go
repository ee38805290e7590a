package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/kafka"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/logger"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/metrics"
	overridedto "github.com/droschke/fleet-rate-service/internal/usecase/dto/override"
	"github.com/google/uuid"
)

// AutoCloseWindowDays bounds the auto-close rule: creating an override
// that starts today or within this many days end-dates the currently
// open override for the same owner+cab. Overrides scheduled further
// out do not disturb the present one.
const AutoCloseWindowDays = 7

type OverrideEventPublisher interface {
	PublishOverrideEvent(event kafka.OverrideEvent) error
}

type LeaseRateUsecase interface {
	Resolve(ownerID, cabID, shiftType string, on domain.Date) (*overridedto.Resolution, error)
	CreateOverride(input *overridedto.CreateOverrideInput) (*domain.RateOverride, error)
	CreateOverrideBatch(inputs []*overridedto.CreateOverrideInput) ([]*domain.RateOverride, []error)
	UpdateOverride(input *overridedto.UpdateOverrideInput) (*domain.RateOverride, error)
	EndOverride(overrideID string, end domain.Date) error
	DeactivateOverride(overrideID string) error
	DeleteOverride(overrideID string) error
	GetOverrideByID(overrideID string) (*domain.RateOverride, error)
	GetOverrides(input *overridedto.ListOverridesInput) (*overridedto.ListOverridesOutput, error)
}

type DefaultLeaseRateUsecase struct {
	overrideRepo domain.OverrideRepository
	planRepo     domain.RatePlanRepository
	cabRepo      domain.CabRepository
	publisher    OverrideEventPublisher
	auditLogger  logger.OverrideAuditLogger
	metrics      *metrics.RateMetrics
	logger       *slog.Logger
	now          func() domain.Date
}

func NewDefaultLeaseRateUsecase(
	overrideRepo domain.OverrideRepository,
	planRepo domain.RatePlanRepository,
	cabRepo domain.CabRepository,
	publisher OverrideEventPublisher,
	auditLogger logger.OverrideAuditLogger,
	rateMetrics *metrics.RateMetrics,
	slogger *slog.Logger,
) *DefaultLeaseRateUsecase {
	return &DefaultLeaseRateUsecase{
		overrideRepo: overrideRepo,
		planRepo:     planRepo,
		cabRepo:      cabRepo,
		publisher:    publisher,
		auditLogger:  auditLogger,
		metrics:      rateMetrics,
		logger:       slogger,
		now:          domain.Today,
	}
}

// Resolve picks the lease rate for one (owner, cab, shift type, date)
// tuple: the highest-priority matching override, falling back to the
// rate plan active on that date, falling back to no rate at all.
func (uc *DefaultLeaseRateUsecase) Resolve(ownerID, cabID, shiftType string, on domain.Date) (*overridedto.Resolution, error) {
	started := time.Now()

	candidates, err := uc.overrideRepo.FindActiveMatching(ownerID, cabID, shiftType, on.DayOfWeek(), on)
	if err != nil {
		return nil, err
	}

	if winner := pickWinner(candidates); winner != nil {
		uc.recordResolution(ownerID, overridedto.SourceOverride, started)
		return &overridedto.Resolution{
			Source:   overridedto.SourceOverride,
			Rate:     winner.Rate,
			RecordID: winner.ID,
		}, nil
	}

	resolution, err := uc.resolveFromPlan(cabID, shiftType, on)
	if err != nil {
		return nil, err
	}
	uc.recordResolution(ownerID, resolution.Source, started)
	return resolution, nil
}

// pickWinner returns the candidate with the highest priority, ties
// broken by most recent creation.
func pickWinner(candidates []*domain.RateOverride) *domain.RateOverride {
	var winner *domain.RateOverride
	for _, candidate := range candidates {
		if winner == nil {
			winner = candidate
			continue
		}
		if candidate.Priority > winner.Priority {
			winner = candidate
			continue
		}
		if candidate.Priority == winner.Priority && candidate.CreatedAt.After(winner.CreatedAt) {
			winner = candidate
		}
	}
	return winner
}

func (uc *DefaultLeaseRateUsecase) resolveFromPlan(cabID, shiftType string, on domain.Date) (*overridedto.Resolution, error) {
	none := &overridedto.Resolution{Source: overridedto.SourceNone}

	cab, err := uc.cabRepo.GetCabByID(cabID)
	if err != nil {
		return nil, err
	}

	plan, err := uc.planRepo.FindPlanActiveOn(on)
	if err != nil {
		if domain.IsNotFound(err) {
			return none, nil
		}
		return nil, err
	}

	entry := plan.FindEntry(cab.CabCategory, cab.HasAirportLicense, shiftType, on.DayOfWeek())
	if entry == nil {
		return none, nil
	}

	return &overridedto.Resolution{
		Source:   overridedto.SourcePlan,
		Rate:     entry.BaseAmount,
		RecordID: entry.ID,
	}, nil
}

func (uc *DefaultLeaseRateUsecase) CreateOverride(input *overridedto.CreateOverrideInput) (*domain.RateOverride, error) {
	override := &domain.RateOverride{
		ID:        uuid.New().String(),
		OwnerID:   input.OwnerID,
		CabID:     input.CabID,
		ShiftType: input.ShiftType,
		DayOfWeek: input.DayOfWeek,
		Rate:      input.Rate,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Active:    true,
		Reason:    input.Reason,
	}
	override.Priority = override.ComputePriority()

	if err := override.Range().Validate(); err != nil {
		return nil, err
	}

	// The overlap check runs before anything is written. Overrides the
	// new one supersedes are exempt from the check and end-dated only
	// once the create is known to go through, so a rejected create
	// leaves the owner's current rate untouched.
	superseded, err := uc.findAutoCloseTargets(override)
	if err != nil {
		return nil, err
	}
	exempt := make(map[string]bool, len(superseded))
	for _, current := range superseded {
		exempt[current.ID] = true
	}

	if err := uc.checkOverlap(override, exempt); err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordOverrideConflict(input.OwnerID)
		}
		uc.auditRejection(override, err)
		return nil, err
	}

	if err := uc.closeSuperseded(override, superseded); err != nil {
		return nil, err
	}

	if err := uc.overrideRepo.CreateOverride(override); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordOverrideCreated(input.OwnerID)
	}
	uc.publishOverrideEvent(kafka.EventOverrideCreated, override)

	return override, nil
}

// CreateOverrideBatch creates several overrides, typically day-of-week
// variants of one rule, independently. One failing record does not
// roll back its siblings.
func (uc *DefaultLeaseRateUsecase) CreateOverrideBatch(inputs []*overridedto.CreateOverrideInput) ([]*domain.RateOverride, []error) {
	created := make([]*domain.RateOverride, len(inputs))
	errs := make([]error, len(inputs))
	for i, input := range inputs {
		created[i], errs[i] = uc.CreateOverride(input)
	}
	return created, errs
}

func (uc *DefaultLeaseRateUsecase) UpdateOverride(input *overridedto.UpdateOverrideInput) (*domain.RateOverride, error) {
	override, err := uc.overrideRepo.GetOverrideByID(input.OverrideID)
	if err != nil {
		return nil, err
	}

	override.CabID = input.CabID
	override.ShiftType = input.ShiftType
	override.DayOfWeek = input.DayOfWeek
	override.Rate = input.Rate
	override.StartDate = input.StartDate
	override.EndDate = input.EndDate
	override.Reason = input.Reason
	override.Priority = override.ComputePriority()

	if err := override.Range().Validate(); err != nil {
		return nil, err
	}

	if err := uc.checkOverlap(override, nil); err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordOverrideConflict(override.OwnerID)
		}
		uc.auditRejection(override, err)
		return nil, err
	}

	if err := uc.overrideRepo.UpdateOverride(override); err != nil {
		return nil, err
	}

	return override, nil
}

func (uc *DefaultLeaseRateUsecase) EndOverride(overrideID string, end domain.Date) error {
	override, err := uc.overrideRepo.GetOverrideByID(overrideID)
	if err != nil {
		return err
	}
	if end.Before(override.StartDate) {
		return domain.NewValidationError("end_date", "end date is before start date")
	}

	// A later end date widens the window, so the same-key guard applies
	// just like on create and update.
	override.EndDate = &end
	if err := uc.checkOverlap(override, nil); err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordOverrideConflict(override.OwnerID)
		}
		uc.auditRejection(override, err)
		return err
	}

	if err := uc.overrideRepo.UpdateOverride(override); err != nil {
		return err
	}

	uc.publishOverrideEvent(kafka.EventOverrideEnded, override)
	return nil
}

func (uc *DefaultLeaseRateUsecase) DeactivateOverride(overrideID string) error {
	override, err := uc.overrideRepo.GetOverrideByID(overrideID)
	if err != nil {
		return err
	}

	override.Active = false
	if err := uc.overrideRepo.UpdateOverride(override); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.OverridesActiveGauge.WithLabelValues(override.OwnerID).Dec()
	}
	uc.publishOverrideEvent(kafka.EventOverrideDeactivated, override)
	return nil
}

func (uc *DefaultLeaseRateUsecase) DeleteOverride(overrideID string) error {
	return uc.overrideRepo.DeleteOverride(overrideID)
}

func (uc *DefaultLeaseRateUsecase) GetOverrideByID(overrideID string) (*domain.RateOverride, error) {
	return uc.overrideRepo.GetOverrideByID(overrideID)
}

func (uc *DefaultLeaseRateUsecase) GetOverrides(input *overridedto.ListOverridesInput) (*overridedto.ListOverridesOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 || input.Limit > 100 {
		input.Limit = 50
	}

	overrides, total, err := uc.overrideRepo.GetOverridesByOwnerID(
		input.OwnerID,
		input.Page,
		input.Limit,
		input.SortBy,
		input.SortOrder,
	)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(input.Limit)
	if total%int64(input.Limit) > 0 {
		totalPages++
	}

	return &overridedto.ListOverridesOutput{
		Overrides: overrides,
		Pagination: overridedto.Pagination{
			CurrentPage:  int32(input.Page),
			TotalPages:   int32(totalPages),
			TotalItems:   int32(total),
			ItemsPerPage: int32(input.Limit),
		},
	}, nil
}

// findAutoCloseTargets returns the currently open overrides for the
// same owner+cab that the new override supersedes: those starting
// earlier, when the new override takes effect today or within the next
// AutoCloseWindowDays days. Future-dated overrides beyond that window
// supersede nothing, so changes can be scheduled ahead of time.
func (uc *DefaultLeaseRateUsecase) findAutoCloseTargets(newOverride *domain.RateOverride) ([]*domain.RateOverride, error) {
	today := uc.now()
	if newOverride.StartDate.After(today.AddDays(AutoCloseWindowDays)) {
		return nil, nil
	}

	open, err := uc.overrideRepo.FindOpenEndedByOwnerCab(newOverride.OwnerID, newOverride.CabID)
	if err != nil {
		return nil, err
	}

	var targets []*domain.RateOverride
	for _, current := range open {
		if current.StartDate.Before(newOverride.StartDate) {
			targets = append(targets, current)
		}
	}
	return targets, nil
}

// closeSuperseded end-dates each superseded override to the day before
// the new override starts.
func (uc *DefaultLeaseRateUsecase) closeSuperseded(newOverride *domain.RateOverride, targets []*domain.RateOverride) error {
	for _, current := range targets {
		end := newOverride.StartDate.AddDays(-1)
		current.EndDate = &end
		if err := uc.overrideRepo.UpdateOverride(current); err != nil {
			return err
		}
		uc.logger.Info("auto-closed current override",
			"override_id", current.ID,
			"owner_id", current.OwnerID,
			"end_date", end.String(),
			"superseded_by", newOverride.ID)
	}

	return nil
}

// checkOverlap rejects an override whose window overlaps another
// active override with the same filter key. The record itself is
// always skipped; exempt lists further siblings to ignore, such as
// overrides about to be auto-closed.
func (uc *DefaultLeaseRateUsecase) checkOverlap(override *domain.RateOverride, exempt map[string]bool) error {
	siblings, err := uc.overrideRepo.FindSameKey(
		override.OwnerID,
		override.CabID,
		override.ShiftType,
		override.DayOfWeek,
	)
	if err != nil {
		return err
	}

	for _, sibling := range siblings {
		if sibling.ID == override.ID || exempt[sibling.ID] || !sibling.Active {
			continue
		}
		if override.Range().Overlaps(sibling.Range()) {
			return domain.NewConflictError("rate override", sibling.ID)
		}
	}

	return nil
}

func (uc *DefaultLeaseRateUsecase) auditRejection(override *domain.RateOverride, cause error) {
	if uc.auditLogger == nil {
		return
	}

	event := logger.OverrideRejectedEvent{
		OwnerID:   override.OwnerID,
		Rate:      override.Rate,
		StartDate: override.StartDate.Time(),
		Reason:    cause.Error(),
	}
	if override.CabID != nil {
		event.CabID = *override.CabID
	}
	if override.ShiftType != nil {
		event.ShiftType = *override.ShiftType
	}
	if override.DayOfWeek != nil {
		event.DayOfWeek = string(*override.DayOfWeek)
	}
	if override.EndDate != nil {
		t := override.EndDate.Time()
		event.EndDate = &t
	}
	var conflict *domain.ConflictError
	if errors.As(cause, &conflict) {
		event.ConflictingID = conflict.ConflictingID
	}

	if err := uc.auditLogger.LogOverrideRejected(context.Background(), event); err != nil {
		uc.logger.Error("failed to audit rejected override", "owner_id", override.OwnerID, "error", err.Error())
	}
}

func (uc *DefaultLeaseRateUsecase) publishOverrideEvent(eventType string, override *domain.RateOverride) {
	if uc.publisher == nil {
		return
	}

	event := kafka.OverrideEvent{
		EventType:  eventType,
		OverrideID: override.ID,
		OwnerID:    override.OwnerID,
		Rate:       override.Rate,
		StartDate:  override.StartDate.String(),
		Reason:     override.Reason,
	}
	if override.CabID != nil {
		event.CabID = *override.CabID
	}
	if override.EndDate != nil {
		event.EndDate = override.EndDate.String()
	}

	if err := uc.publisher.PublishOverrideEvent(event); err != nil {
		uc.logger.Error("failed to publish override event",
			"event_type", eventType,
			"override_id", override.ID,
			"error", err.Error())
	}
}

func (uc *DefaultLeaseRateUsecase) recordResolution(ownerID string, source overridedto.RateSource, started time.Time) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.RecordResolution(ownerID, string(source), time.Since(started).Seconds())
}
