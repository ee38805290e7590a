package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateMetrics holds all counters for the rate and profile engine.
type RateMetrics struct {
	// Lease rate resolution
	RateResolutionsTotal   prometheus.CounterVec
	RateResolutionDuration prometheus.HistogramVec

	// Overrides
	OverridesCreatedTotal  prometheus.CounterVec
	OverrideConflictsTotal prometheus.CounterVec
	OverridesActiveGauge   prometheus.GaugeVec

	// Profiles
	ProfileAssignmentsTotal prometheus.CounterVec
	ProfileMatchDuration    prometheus.HistogramVec
	ProfilesActiveGauge     prometheus.Gauge

	// Reconciler
	UsageReconcileRepairsTotal prometheus.CounterVec

	// Errors
	EngineErrorsTotal prometheus.CounterVec
}

func NewRateMetrics() *RateMetrics {
	return &RateMetrics{
		RateResolutionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_resolutions_total",
				Help: "Lease rate resolutions by source (override, plan, none)",
			},
			[]string{"owner_id", "source"},
		),

		RateResolutionDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rate_resolution_duration_seconds",
				Help:    "Time spent resolving a lease rate",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
			},
			[]string{"source"},
		),

		OverridesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "overrides_created_total",
				Help: "Custom rate overrides created",
			},
			[]string{"owner_id"},
		),

		OverrideConflictsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "override_conflicts_total",
				Help: "Override create/update attempts rejected for window overlap",
			},
			[]string{"owner_id"},
		),

		OverridesActiveGauge: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "overrides_active",
				Help: "Currently active overrides per owner",
			},
			[]string{"owner_id"},
		),

		ProfileAssignmentsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "profile_assignments_total",
				Help: "Shift profile assignments created",
			},
			[]string{"profile_code"},
		),

		ProfileMatchDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "profile_match_duration_seconds",
				Help:    "Time spent evaluating a full profile match",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
			},
			[]string{"matched"},
		),

		ProfilesActiveGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "profiles_active",
				Help: "Currently active shift profiles",
			},
		),

		UsageReconcileRepairsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "usage_reconcile_repairs_total",
				Help: "Denormalized usage counters or pointers repaired by the reconciler",
			},
			[]string{"kind"},
		),

		EngineErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "engine_errors_total",
				Help: "Errors raised by the rate and profile engine",
			},
			[]string{"operation", "error_type"},
		),
	}
}

// RecordResolution records one lease rate lookup.
func (m *RateMetrics) RecordResolution(ownerID, source string, durationSeconds float64) {
	m.RateResolutionsTotal.WithLabelValues(ownerID, source).Inc()
	m.RateResolutionDuration.WithLabelValues(source).Observe(durationSeconds)
}

// RecordOverrideCreated records a successfully created override.
func (m *RateMetrics) RecordOverrideCreated(ownerID string) {
	m.OverridesCreatedTotal.WithLabelValues(ownerID).Inc()
	m.OverridesActiveGauge.WithLabelValues(ownerID).Inc()
}

// RecordOverrideConflict records a rejected create/update attempt.
func (m *RateMetrics) RecordOverrideConflict(ownerID string) {
	m.OverrideConflictsTotal.WithLabelValues(ownerID).Inc()
}

// RecordAssignment records a new profile assignment.
func (m *RateMetrics) RecordAssignment(profileCode string) {
	m.ProfileAssignmentsTotal.WithLabelValues(profileCode).Inc()
}

// RecordProfileMatch records a full static+dynamic match evaluation.
func (m *RateMetrics) RecordProfileMatch(matched bool, durationSeconds float64) {
	matchedStr := "false"
	if matched {
		matchedStr = "true"
	}
	m.ProfileMatchDuration.WithLabelValues(matchedStr).Observe(durationSeconds)
}

// RecordReconcileRepair records one repaired counter or pointer.
func (m *RateMetrics) RecordReconcileRepair(kind string) {
	m.UsageReconcileRepairsTotal.WithLabelValues(kind).Inc()
}

// RecordError records an engine error.
func (m *RateMetrics) RecordError(operation, errorType string) {
	m.EngineErrorsTotal.WithLabelValues(operation, errorType).Inc()
}
