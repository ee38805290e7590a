package usecase

import (
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/droschke/fleet-rate-service/internal/domain"
)

// In-memory repositories backing the usecase tests. They mirror the
// query semantics of the postgres implementations closely enough that
// the engine logic can be exercised without a database.

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func dayPtr(day domain.DayOfWeek) *domain.DayOfWeek { return &day }

func datePtr(d domain.Date) *domain.Date { return &d }

func ptrEq[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type mockOverrideRepo struct {
	overrides map[string]*domain.RateOverride
}

func newMockOverrideRepo() *mockOverrideRepo {
	return &mockOverrideRepo{overrides: make(map[string]*domain.RateOverride)}
}

func (m *mockOverrideRepo) CreateOverride(override *domain.RateOverride) error {
	copied := *override
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now()
		override.CreatedAt = copied.CreatedAt
	}
	m.overrides[override.ID] = &copied
	return nil
}

func (m *mockOverrideRepo) UpdateOverride(override *domain.RateOverride) error {
	if _, ok := m.overrides[override.ID]; !ok {
		return domain.NewNotFoundError("rate override", override.ID)
	}
	copied := *override
	m.overrides[override.ID] = &copied
	return nil
}

func (m *mockOverrideRepo) DeleteOverride(overrideID string) error {
	if _, ok := m.overrides[overrideID]; !ok {
		return domain.NewNotFoundError("rate override", overrideID)
	}
	delete(m.overrides, overrideID)
	return nil
}

func (m *mockOverrideRepo) GetOverrideByID(overrideID string) (*domain.RateOverride, error) {
	override, ok := m.overrides[overrideID]
	if !ok {
		return nil, domain.NewNotFoundError("rate override", overrideID)
	}
	copied := *override
	return &copied, nil
}

func (m *mockOverrideRepo) FindActiveMatching(ownerID string, cabID, shiftType string, day domain.DayOfWeek, on domain.Date) ([]*domain.RateOverride, error) {
	var matched []*domain.RateOverride
	for _, o := range m.overrides {
		if o.OwnerID != ownerID || !o.ActiveOn(on) {
			continue
		}
		if o.CabID != nil && *o.CabID != cabID {
			continue
		}
		if o.ShiftType != nil && *o.ShiftType != shiftType {
			continue
		}
		if o.DayOfWeek != nil && *o.DayOfWeek != day {
			continue
		}
		copied := *o
		matched = append(matched, &copied)
	}
	return matched, nil
}

func (m *mockOverrideRepo) FindSameKey(ownerID string, cabID *string, shiftType *string, day *domain.DayOfWeek) ([]*domain.RateOverride, error) {
	var matched []*domain.RateOverride
	for _, o := range m.overrides {
		if o.OwnerID != ownerID {
			continue
		}
		if !ptrEq(o.CabID, cabID) || !ptrEq(o.ShiftType, shiftType) || !ptrEq(o.DayOfWeek, day) {
			continue
		}
		copied := *o
		matched = append(matched, &copied)
	}
	return matched, nil
}

func (m *mockOverrideRepo) FindOpenEndedByOwnerCab(ownerID string, cabID *string) ([]*domain.RateOverride, error) {
	var matched []*domain.RateOverride
	for _, o := range m.overrides {
		if o.OwnerID != ownerID || !o.Active || o.EndDate != nil {
			continue
		}
		if !ptrEq(o.CabID, cabID) {
			continue
		}
		copied := *o
		matched = append(matched, &copied)
	}
	return matched, nil
}

func (m *mockOverrideRepo) GetOverridesByOwnerID(ownerID string, page, limit int, sortBy, sortOrder string) ([]*domain.RateOverride, int64, error) {
	var matched []*domain.RateOverride
	for _, o := range m.overrides {
		if o.OwnerID != ownerID {
			continue
		}
		copied := *o
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

type mockPlanRepo struct {
	plans map[string]*domain.RatePlan
}

func newMockPlanRepo() *mockPlanRepo {
	return &mockPlanRepo{plans: make(map[string]*domain.RatePlan)}
}

func (m *mockPlanRepo) CreatePlan(plan *domain.RatePlan) error {
	copied := *plan
	m.plans[plan.ID] = &copied
	return nil
}

func (m *mockPlanRepo) ClosePlan(planID string, end domain.Date) error {
	plan, ok := m.plans[planID]
	if !ok {
		return domain.NewNotFoundError("rate plan", planID)
	}
	plan.EndDate = &end
	return nil
}

func (m *mockPlanRepo) GetPlanByID(planID string) (*domain.RatePlan, error) {
	plan, ok := m.plans[planID]
	if !ok {
		return nil, domain.NewNotFoundError("rate plan", planID)
	}
	copied := *plan
	return &copied, nil
}

func (m *mockPlanRepo) FindPlanActiveOn(on domain.Date) (*domain.RatePlan, error) {
	for _, plan := range m.plans {
		if plan.ActiveOn(on) {
			copied := *plan
			return &copied, nil
		}
	}
	return nil, domain.NewNotFoundError("rate plan", "active on "+on.String())
}

func (m *mockPlanRepo) FindAllPlans() ([]*domain.RatePlan, error) {
	var plans []*domain.RatePlan
	for _, plan := range m.plans {
		copied := *plan
		plans = append(plans, &copied)
	}
	return plans, nil
}

type mockCabRepo struct {
	cabs map[string]*domain.Cab
}

func newMockCabRepo() *mockCabRepo {
	return &mockCabRepo{cabs: make(map[string]*domain.Cab)}
}

func (m *mockCabRepo) CreateCab(cab *domain.Cab) error {
	copied := *cab
	m.cabs[cab.ID] = &copied
	return nil
}

func (m *mockCabRepo) UpdateCab(cab *domain.Cab) error {
	if _, ok := m.cabs[cab.ID]; !ok {
		return domain.NewNotFoundError("cab", cab.ID)
	}
	copied := *cab
	m.cabs[cab.ID] = &copied
	return nil
}

func (m *mockCabRepo) GetCabByID(cabID string) (*domain.Cab, error) {
	cab, ok := m.cabs[cabID]
	if !ok {
		return nil, domain.NewNotFoundError("cab", cabID)
	}
	copied := *cab
	return &copied, nil
}

func (m *mockCabRepo) GetCabsByOwnerID(ownerID string, page, limit int) ([]*domain.Cab, int64, error) {
	var matched []*domain.Cab
	for _, cab := range m.cabs {
		if cab.OwnerID == ownerID {
			copied := *cab
			matched = append(matched, &copied)
		}
	}
	return matched, int64(len(matched)), nil
}

type mockDriverRepo struct {
	drivers map[string]*domain.Driver
}

func newMockDriverRepo() *mockDriverRepo {
	return &mockDriverRepo{drivers: make(map[string]*domain.Driver)}
}

func (m *mockDriverRepo) CreateDriver(driver *domain.Driver) error {
	copied := *driver
	m.drivers[driver.ID] = &copied
	return nil
}

func (m *mockDriverRepo) UpdateDriver(driver *domain.Driver) error {
	if _, ok := m.drivers[driver.ID]; !ok {
		return domain.NewNotFoundError("driver", driver.ID)
	}
	copied := *driver
	m.drivers[driver.ID] = &copied
	return nil
}

func (m *mockDriverRepo) GetDriverByID(driverID string) (*domain.Driver, error) {
	driver, ok := m.drivers[driverID]
	if !ok {
		return nil, domain.NewNotFoundError("driver", driverID)
	}
	copied := *driver
	return &copied, nil
}

type mockProfileRepo struct {
	profiles map[string]*domain.ShiftProfile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]*domain.ShiftProfile)}
}

func (m *mockProfileRepo) CreateProfile(profile *domain.ShiftProfile) error {
	copied := *profile
	m.profiles[profile.ID] = &copied
	return nil
}

func (m *mockProfileRepo) UpdateProfile(profile *domain.ShiftProfile) error {
	stored, ok := m.profiles[profile.ID]
	if !ok {
		return domain.NewNotFoundError("shift profile", profile.ID)
	}
	copied := *profile
	copied.UsageCount = stored.UsageCount
	copied.Requirements = stored.Requirements
	m.profiles[profile.ID] = &copied
	return nil
}

func (m *mockProfileRepo) DeleteProfile(profileID string) error {
	if _, ok := m.profiles[profileID]; !ok {
		return domain.NewNotFoundError("shift profile", profileID)
	}
	delete(m.profiles, profileID)
	return nil
}

func (m *mockProfileRepo) GetProfileByID(profileID string) (*domain.ShiftProfile, error) {
	profile, ok := m.profiles[profileID]
	if !ok {
		return nil, domain.NewNotFoundError("shift profile", profileID)
	}
	copied := *profile
	return &copied, nil
}

func (m *mockProfileRepo) GetProfileByCode(code string) (*domain.ShiftProfile, error) {
	for _, profile := range m.profiles {
		if profile.Code == code {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, domain.NewNotFoundError("shift profile", code)
}

func (m *mockProfileRepo) FindActiveMatchingStatic(cabCategory, shareCategory string, hasAirportLicense bool, shiftType string) ([]*domain.ShiftProfile, error) {
	var matched []*domain.ShiftProfile
	for _, profile := range m.profiles {
		if !profile.Active {
			continue
		}
		if !profile.MatchesStatic(cabCategory, shareCategory, hasAirportLicense, shiftType) {
			continue
		}
		copied := *profile
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].SortOrder < matched[j].SortOrder
	})
	return matched, nil
}

func (m *mockProfileRepo) FindAllProfiles() ([]*domain.ShiftProfile, error) {
	var profiles []*domain.ShiftProfile
	for _, profile := range m.profiles {
		copied := *profile
		profiles = append(profiles, &copied)
	}
	return profiles, nil
}

func (m *mockProfileRepo) SetUsageCount(profileID string, count int) error {
	profile, ok := m.profiles[profileID]
	if !ok {
		return domain.NewNotFoundError("shift profile", profileID)
	}
	profile.UsageCount = count
	return nil
}

func (m *mockProfileRepo) AddRequirement(requirement *domain.ProfileAttributeRequirement) error {
	profile, ok := m.profiles[requirement.ProfileID]
	if !ok {
		return domain.NewNotFoundError("shift profile", requirement.ProfileID)
	}
	profile.Requirements = append(profile.Requirements, *requirement)
	return nil
}

func (m *mockProfileRepo) RemoveRequirement(requirementID string) error {
	for _, profile := range m.profiles {
		for i, requirement := range profile.Requirements {
			if requirement.ID == requirementID {
				profile.Requirements = append(profile.Requirements[:i], profile.Requirements[i+1:]...)
				return nil
			}
		}
	}
	return domain.NewNotFoundError("profile requirement", requirementID)
}

type mockShiftRepo struct {
	shifts map[string]*domain.Shift
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[string]*domain.Shift)}
}

func (m *mockShiftRepo) CreateShift(shift *domain.Shift) error {
	copied := *shift
	m.shifts[shift.ID] = &copied
	return nil
}

func (m *mockShiftRepo) GetShiftByID(shiftID string) (*domain.Shift, error) {
	shift, ok := m.shifts[shiftID]
	if !ok {
		return nil, domain.NewNotFoundError("shift", shiftID)
	}
	copied := *shift
	return &copied, nil
}

func (m *mockShiftRepo) UpdateCurrentProfile(shiftID string, profileID *string) error {
	shift, ok := m.shifts[shiftID]
	if !ok {
		return domain.NewNotFoundError("shift", shiftID)
	}
	shift.CurrentProfileID = profileID
	return nil
}

func (m *mockShiftRepo) CloseShift(shiftID string, logoffAt time.Time) error {
	shift, ok := m.shifts[shiftID]
	if !ok {
		return domain.NewNotFoundError("shift", shiftID)
	}
	shift.LogoffAt = &logoffAt
	return nil
}

func (m *mockShiftRepo) FindOpenShifts() ([]*domain.Shift, error) {
	var open []*domain.Shift
	for _, shift := range m.shifts {
		if shift.LogoffAt == nil {
			copied := *shift
			open = append(open, &copied)
		}
	}
	return open, nil
}

type mockAttributeRepo struct {
	values []*domain.ShiftAttributeValue
}

func newMockAttributeRepo() *mockAttributeRepo {
	return &mockAttributeRepo{}
}

func (m *mockAttributeRepo) FindCurrentValues(shiftID string) (map[string]string, error) {
	current := make(map[string]string)
	for _, value := range m.values {
		if value.ShiftID == shiftID && value.ValidTo == nil {
			current[value.AttributeTypeID] = value.Value
		}
	}
	return current, nil
}

func (m *mockAttributeRepo) FindValuesOn(shiftID string, on domain.Date) (map[string]string, error) {
	valid := make(map[string]string)
	for _, value := range m.values {
		if value.ShiftID != shiftID || on.Before(value.ValidFrom) {
			continue
		}
		if value.ValidTo != nil && !on.Before(*value.ValidTo) {
			continue
		}
		valid[value.AttributeTypeID] = value.Value
	}
	return valid, nil
}

func (m *mockAttributeRepo) SetValue(value *domain.ShiftAttributeValue) error {
	for _, existing := range m.values {
		if existing.ShiftID == value.ShiftID && existing.AttributeTypeID == value.AttributeTypeID && existing.ValidTo == nil {
			from := value.ValidFrom
			existing.ValidTo = &from
		}
	}
	copied := *value
	m.values = append(m.values, &copied)
	return nil
}

func (m *mockAttributeRepo) EndValue(shiftID, attributeTypeID string, to domain.Date) error {
	for _, value := range m.values {
		if value.ShiftID == shiftID && value.AttributeTypeID == attributeTypeID && value.ValidTo == nil {
			end := to
			value.ValidTo = &end
		}
	}
	return nil
}

// mockAssignmentRepo reproduces the transactional supersede semantics
// of the postgres implementation against the sibling mocks.
type mockAssignmentRepo struct {
	assignments map[string]*domain.ShiftProfileAssignment
	profiles    *mockProfileRepo
	shifts      *mockShiftRepo
}

func newMockAssignmentRepo(profiles *mockProfileRepo, shifts *mockShiftRepo) *mockAssignmentRepo {
	return &mockAssignmentRepo{
		assignments: make(map[string]*domain.ShiftProfileAssignment),
		profiles:    profiles,
		shifts:      shifts,
	}
}

func (m *mockAssignmentRepo) Assign(assignment *domain.ShiftProfileAssignment) error {
	for _, current := range m.assignments {
		if current.ShiftID != assignment.ShiftID || !current.IsOpen() {
			continue
		}
		end := assignment.StartDate.AddDays(-1)
		current.EndDate = &end
		if previous, ok := m.profiles.profiles[current.ProfileID]; ok && previous.UsageCount > 0 {
			previous.UsageCount--
		}
	}

	copied := *assignment
	copied.CreatedAt = time.Now()
	assignment.CreatedAt = copied.CreatedAt
	m.assignments[assignment.ID] = &copied

	if profile, ok := m.profiles.profiles[assignment.ProfileID]; ok {
		profile.UsageCount++
	}
	if shift, ok := m.shifts.shifts[assignment.ShiftID]; ok {
		profileID := assignment.ProfileID
		shift.CurrentProfileID = &profileID
	}
	return nil
}

func (m *mockAssignmentRepo) EndActive(shiftID string, end domain.Date) error {
	for _, current := range m.assignments {
		if current.ShiftID != shiftID || !current.IsOpen() {
			continue
		}
		endCopy := end
		current.EndDate = &endCopy
		if profile, ok := m.profiles.profiles[current.ProfileID]; ok && profile.UsageCount > 0 {
			profile.UsageCount--
		}
		if shift, ok := m.shifts.shifts[shiftID]; ok {
			shift.CurrentProfileID = nil
		}
		return nil
	}
	return domain.ErrAssignmentNotFound
}

func (m *mockAssignmentRepo) GetActiveByShiftID(shiftID string) (*domain.ShiftProfileAssignment, error) {
	for _, assignment := range m.assignments {
		if assignment.ShiftID == shiftID && assignment.IsOpen() {
			copied := *assignment
			return &copied, nil
		}
	}
	return nil, domain.ErrAssignmentNotFound
}

func (m *mockAssignmentRepo) GetHistoryByShiftID(shiftID string) ([]*domain.ShiftProfileAssignment, error) {
	var history []*domain.ShiftProfileAssignment
	for _, assignment := range m.assignments {
		if assignment.ShiftID == shiftID {
			copied := *assignment
			history = append(history, &copied)
		}
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].StartDate.Before(history[j].StartDate)
	})
	return history, nil
}

func (m *mockAssignmentRepo) FindOpenAssignments() ([]*domain.ShiftProfileAssignment, error) {
	var open []*domain.ShiftProfileAssignment
	for _, assignment := range m.assignments {
		if assignment.IsOpen() {
			copied := *assignment
			open = append(open, &copied)
		}
	}
	return open, nil
}
