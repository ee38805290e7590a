package overridedto

import "github.com/droschke/fleet-rate-service/internal/domain"

type RateSource string

const (
	SourceOverride RateSource = "OVERRIDE"
	SourcePlan     RateSource = "PLAN"
	SourceNone     RateSource = "NONE"
)

// Resolution is the outcome of a lease-rate lookup: where the rate came
// from and which record won.
type Resolution struct {
	Source   RateSource
	Rate     float64
	RecordID string
}

type Pagination struct {
	CurrentPage  int32
	TotalPages   int32
	TotalItems   int32
	ItemsPerPage int32
}

type ListOverridesOutput struct {
	Overrides  []*domain.RateOverride
	Pagination Pagination
}
