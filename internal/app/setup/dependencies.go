package setup

import (
	"fmt"

	"github.com/droschke/fleet-rate-service/internal/config"
	"github.com/droschke/fleet-rate-service/internal/domain"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/kafka"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/logger"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/metrics"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/postgres"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config           *config.FleetConfig
	DB               *gorm.DB
	RatePublisher    *kafka.KafkaPublisher
	ProfilePublisher *kafka.KafkaPublisher
	Metrics          *metrics.RateMetrics
	AuditLogger      logger.OverrideAuditLogger
	Repositories     *Repositories
}

type Repositories struct {
	OverrideRepo   domain.OverrideRepository
	PlanRepo       domain.RatePlanRepository
	ProfileRepo    domain.ProfileRepository
	AssignmentRepo domain.AssignmentRepository
	ShiftRepo      domain.ShiftRepository
	AttributeRepo  domain.AttributeValueRepository
	CabRepo        domain.CabRepository
	DriverRepo     domain.DriverRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	ratePublisher := kafka.NewKafkaPublisher(brokers, "rate-events")
	profilePublisher := kafka.NewKafkaPublisher(brokers, "profile-events")

	repos := &Repositories{
		OverrideRepo:   repository.NewDefaultOverrideRepository(db),
		PlanRepo:       repository.NewDefaultRatePlanRepository(db),
		ProfileRepo:    repository.NewDefaultProfileRepository(db),
		AssignmentRepo: repository.NewDefaultAssignmentRepository(db),
		ShiftRepo:      repository.NewDefaultShiftRepository(db),
		AttributeRepo:  repository.NewDefaultAttributeValueRepository(db),
		CabRepo:        repository.NewDefaultCabRepository(db),
		DriverRepo:     repository.NewDefaultDriverRepository(db),
	}

	return &Dependencies{
		Config:           cfg,
		DB:               db,
		RatePublisher:    ratePublisher,
		ProfilePublisher: profilePublisher,
		Metrics:          metrics.NewRateMetrics(),
		AuditLogger:      logger.NewPGOverrideAuditLogger(db),
		Repositories:     repos,
	}, nil
}
