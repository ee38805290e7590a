package setup

import (
	"log/slog"

	"github.com/droschke/fleet-rate-service/internal/usecase"
)

type Usecases struct {
	LeaseRate usecase.LeaseRateUsecase
	RatePlan  usecase.RatePlanUsecase
	Profile   usecase.ProfileUsecase
	Shift     usecase.ShiftUsecase
	Fleet     usecase.FleetUsecase
	Reconcile usecase.ReconcileUsecase
}

func InitializeUsecases(deps *Dependencies, logger *slog.Logger) *Usecases {
	repos := deps.Repositories

	return &Usecases{
		LeaseRate: usecase.NewDefaultLeaseRateUsecase(
			repos.OverrideRepo,
			repos.PlanRepo,
			repos.CabRepo,
			deps.RatePublisher,
			deps.AuditLogger,
			deps.Metrics,
			logger,
		),
		RatePlan: usecase.NewDefaultRatePlanUsecase(repos.PlanRepo),
		Profile: usecase.NewDefaultProfileUsecase(
			repos.ProfileRepo,
			repos.ShiftRepo,
			repos.AttributeRepo,
			repos.AssignmentRepo,
			deps.ProfilePublisher,
			deps.Metrics,
			logger,
		),
		Shift: usecase.NewDefaultShiftUsecase(
			repos.ShiftRepo,
			repos.CabRepo,
			repos.DriverRepo,
			repos.AttributeRepo,
		),
		Fleet: usecase.NewDefaultFleetUsecase(repos.CabRepo, repos.DriverRepo),
		Reconcile: usecase.NewDefaultReconcileUsecase(
			repos.ProfileRepo,
			repos.ShiftRepo,
			repos.AssignmentRepo,
			deps.Metrics,
			logger,
		),
	}
}
