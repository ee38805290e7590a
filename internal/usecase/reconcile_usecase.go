package usecase

import (
	"log/slog"

	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/metrics"
)

// ReconcileUsecase repairs the denormalized profile usage counters and
// shift current-profile pointers from the assignment audit log, which
// is the source of truth. Drift should not happen while all writers go
// through the transactional assignment repository, but a periodic
// sweep keeps manual data fixes and partial migrations from leaving
// the caches wrong forever.
type ReconcileUsecase interface {
	ReconcileUsage() (int, error)
}

type DefaultReconcileUsecase struct {
	profileRepo    domain.ProfileRepository
	shiftRepo      domain.ShiftRepository
	assignmentRepo domain.AssignmentRepository
	metrics        *metrics.RateMetrics
	logger         *slog.Logger
}

func NewDefaultReconcileUsecase(
	profileRepo domain.ProfileRepository,
	shiftRepo domain.ShiftRepository,
	assignmentRepo domain.AssignmentRepository,
	rateMetrics *metrics.RateMetrics,
	logger *slog.Logger,
) *DefaultReconcileUsecase {
	return &DefaultReconcileUsecase{
		profileRepo:    profileRepo,
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		metrics:        rateMetrics,
		logger:         logger,
	}
}

// ReconcileUsage returns the number of repaired records.
func (uc *DefaultReconcileUsecase) ReconcileUsage() (int, error) {
	open, err := uc.assignmentRepo.FindOpenAssignments()
	if err != nil {
		return 0, err
	}

	usage := make(map[string]int)
	activeByShift := make(map[string]string)
	for _, assignment := range open {
		usage[assignment.ProfileID]++
		activeByShift[assignment.ShiftID] = assignment.ProfileID
	}

	repaired := 0

	profiles, err := uc.profileRepo.FindAllProfiles()
	if err != nil {
		return repaired, err
	}

	if uc.metrics != nil {
		active := 0
		for _, profile := range profiles {
			if profile.Active {
				active++
			}
		}
		uc.metrics.ProfilesActiveGauge.Set(float64(active))
	}

	for _, profile := range profiles {
		expected := usage[profile.ID]
		if profile.UsageCount == expected {
			continue
		}
		if err := uc.profileRepo.SetUsageCount(profile.ID, expected); err != nil {
			return repaired, err
		}
		repaired++
		uc.logger.Warn("repaired profile usage counter",
			"profile_code", profile.Code,
			"stored", profile.UsageCount,
			"actual", expected)
		if uc.metrics != nil {
			uc.metrics.RecordReconcileRepair("usage_count")
		}
	}

	shifts, err := uc.shiftRepo.FindOpenShifts()
	if err != nil {
		return repaired, err
	}
	for _, shift := range shifts {
		expectedProfile, hasActive := activeByShift[shift.ID]

		if hasActive {
			if shift.CurrentProfileID != nil && *shift.CurrentProfileID == expectedProfile {
				continue
			}
			if err := uc.shiftRepo.UpdateCurrentProfile(shift.ID, &expectedProfile); err != nil {
				return repaired, err
			}
		} else {
			if shift.CurrentProfileID == nil {
				continue
			}
			if err := uc.shiftRepo.UpdateCurrentProfile(shift.ID, nil); err != nil {
				return repaired, err
			}
		}

		repaired++
		uc.logger.Warn("repaired shift current-profile pointer", "shift_id", shift.ID)
		if uc.metrics != nil {
			uc.metrics.RecordReconcileRepair("current_profile")
		}
	}

	return repaired, nil
}
