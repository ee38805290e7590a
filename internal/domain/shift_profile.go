package domain

import "time"

// ShiftProfile is a reusable classification bundle. The four static
// filters are wildcards when nil: a profile matches a shift when every
// non-nil filter equals the shift's corresponding value.
type ShiftProfile struct {
	ID                string
	Code              string
	Name              string
	CabCategory       *string
	ShareCategory     *string
	HasAirportLicense *bool
	ShiftType         *string
	Category          string
	DisplayColor      string
	SortOrder         int
	Active            bool
	SystemProfile     bool
	UsageCount        int
	Requirements      []ProfileAttributeRequirement
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MatchesStatic applies the four wildcard-or-equal static filters.
func (p *ShiftProfile) MatchesStatic(cabCategory, shareCategory string, hasAirportLicense bool, shiftType string) bool {
	if p.CabCategory != nil && *p.CabCategory != cabCategory {
		return false
	}
	if p.ShareCategory != nil && *p.ShareCategory != shareCategory {
		return false
	}
	if p.HasAirportLicense != nil && *p.HasAirportLicense != hasAirportLicense {
		return false
	}
	if p.ShiftType != nil && *p.ShiftType != shiftType {
		return false
	}
	return true
}

// Deletable reports whether the profile may be removed. System
// profiles are permanent and in-use profiles are protected.
func (p *ShiftProfile) Deletable() error {
	if p.SystemProfile {
		return NewValidationError("profile", "system profile cannot be deleted")
	}
	if p.UsageCount > 0 {
		return NewValidationError("profile", "profile is assigned to active shifts")
	}
	return nil
}

// ProfileAttributeRequirement is one dynamic-attribute rule attached
// to a profile. IsRequired false means the shift must NOT carry the
// attribute. A nil ExpectedValue accepts any value as long as the
// presence matches IsRequired.
type ProfileAttributeRequirement struct {
	ID              string
	ProfileID       string
	AttributeTypeID string
	IsRequired      bool
	ExpectedValue   *string
}

// RequirementSatisfied decides whether a single requirement is met by
// an attribute value. A nil actual means the shift does not carry the
// attribute at all.
//
// required + absent            -> false
// required + present, no value -> true
// required + present, value    -> equality
// excluded + absent            -> true
// excluded + present           -> false, expected value ignored
func RequirementSatisfied(req ProfileAttributeRequirement, actual *string) bool {
	if !req.IsRequired {
		return actual == nil
	}
	if actual == nil {
		return false
	}
	if req.ExpectedValue == nil {
		return true
	}
	return *actual == *req.ExpectedValue
}

type ProfileRepository interface {
	CreateProfile(profile *ShiftProfile) error
	UpdateProfile(profile *ShiftProfile) error
	DeleteProfile(profileID string) error
	GetProfileByID(profileID string) (*ShiftProfile, error)
	GetProfileByCode(code string) (*ShiftProfile, error)
	// FindActiveMatchingStatic returns active profiles whose static
	// filters are each nil or equal to the given values, ordered by
	// sort order ascending.
	FindActiveMatchingStatic(cabCategory, shareCategory string, hasAirportLicense bool, shiftType string) ([]*ShiftProfile, error)
	FindAllProfiles() ([]*ShiftProfile, error)
	// SetUsageCount overwrites the denormalized usage counter. Only the
	// reconciler calls this; assignment writes move the counter inside
	// their own transaction.
	SetUsageCount(profileID string, count int) error
	AddRequirement(requirement *ProfileAttributeRequirement) error
	RemoveRequirement(requirementID string) error
}
