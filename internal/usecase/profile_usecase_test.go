package usecase

import (
	"testing"

	"github.com/droschke/fleet-rate-service/internal/domain"
	profiledto "github.com/droschke/fleet-rate-service/internal/usecase/dto/profile"
)

type profileFixture struct {
	uc          *DefaultProfileUsecase
	profiles    *mockProfileRepo
	shifts      *mockShiftRepo
	attributes  *mockAttributeRepo
	assignments *mockAssignmentRepo
}

func newProfileFixture() *profileFixture {
	profiles := newMockProfileRepo()
	shifts := newMockShiftRepo()
	attributes := newMockAttributeRepo()
	assignments := newMockAssignmentRepo(profiles, shifts)

	uc := NewDefaultProfileUsecase(profiles, shifts, attributes, assignments, nil, nil, nopLogger())
	return &profileFixture{
		uc:          uc,
		profiles:    profiles,
		shifts:      shifts,
		attributes:  attributes,
		assignments: assignments,
	}
}

func (f *profileFixture) seedShift(t *testing.T, id string) {
	t.Helper()
	err := f.shifts.CreateShift(&domain.Shift{
		ID: id, CabID: "cab-1", DriverID: "driver-1",
		ShiftType: "DAY", CabCategory: "SEDAN", ShareCategory: "FULL",
		HasAirportLicense: true,
	})
	if err != nil {
		t.Fatalf("seed shift: %v", err)
	}
}

func (f *profileFixture) seedProfile(t *testing.T, profile *domain.ShiftProfile) {
	t.Helper()
	profile.Active = true
	if err := f.profiles.CreateProfile(profile); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

func TestMatchesStaticOnly(t *testing.T) {
	f := newProfileFixture()
	f.seedShift(t, "shift-1")
	f.seedProfile(t, &domain.ShiftProfile{
		ID: "p-1", Code: "SEDAN_DAY",
		CabCategory: strPtr("SEDAN"), ShiftType: strPtr("DAY"),
	})

	matched, err := f.uc.Matches("shift-1", "p-1", domain.NewDate(2026, 8, 3))
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if !matched {
		t.Error("profile without requirements should match on static filters alone")
	}
}

func TestMatchesStaticMismatchShortCircuits(t *testing.T) {
	f := newProfileFixture()
	f.seedShift(t, "shift-1")
	f.seedProfile(t, &domain.ShiftProfile{
		ID: "p-1", Code: "VAN_ONLY",
		CabCategory: strPtr("VAN"),
		Requirements: []domain.ProfileAttributeRequirement{
			{ID: "r-1", ProfileID: "p-1", AttributeTypeID: "attr-training", IsRequired: true},
		},
	})

	matched, err := f.uc.Matches("shift-1", "p-1", domain.NewDate(2026, 8, 3))
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if matched {
		t.Error("static mismatch must reject before requirements are evaluated")
	}
}

func TestMatchesDynamicRequirements(t *testing.T) {
	f := newProfileFixture()
	f.seedShift(t, "shift-1")
	f.seedProfile(t, &domain.ShiftProfile{
		ID: "p-1", Code: "TRAINED",
		Requirements: []domain.ProfileAttributeRequirement{
			{ID: "r-1", ProfileID: "p-1", AttributeTypeID: "attr-training", IsRequired: true, ExpectedValue: strPtr("ADVANCED")},
			{ID: "r-2", ProfileID: "p-1", AttributeTypeID: "attr-probation", IsRequired: false},
		},
	})

	// No attributes yet: required one is missing.
	matched, err := f.uc.Matches("shift-1", "p-1", domain.NewDate(2026, 8, 3))
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if matched {
		t.Error("missing required attribute should not match")
	}

	f.attributes.SetValue(&domain.ShiftAttributeValue{
		ID: "v-1", ShiftID: "shift-1", AttributeTypeID: "attr-training", Value: "ADVANCED",
	})
	matched, err = f.uc.Matches("shift-1", "p-1", domain.NewDate(2026, 8, 3))
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if !matched {
		t.Error("all requirements satisfied, should match")
	}

	// Excluded attribute appears: match flips off.
	f.attributes.SetValue(&domain.ShiftAttributeValue{
		ID: "v-2", ShiftID: "shift-1", AttributeTypeID: "attr-probation", Value: "yes",
	})
	matched, err = f.uc.Matches("shift-1", "p-1", domain.NewDate(2026, 8, 3))
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if matched {
		t.Error("excluded attribute present, should not match")
	}
}

func TestMatchesEvaluatesAttributesOnDate(t *testing.T) {
	f := newProfileFixture()
	f.seedShift(t, "shift-1")
	f.seedProfile(t, &domain.ShiftProfile{
		ID: "p-1", Code: "TRAINED",
		Requirements: []domain.ProfileAttributeRequirement{
			{ID: "r-1", ProfileID: "p-1", AttributeTypeID: "attr-training", IsRequired: true},
		},
	})

	// The attribute is only on the shift from Aug 1 up to (but not
	// including) Aug 10.
	f.attributes.SetValue(&domain.ShiftAttributeValue{
		ID: "v-1", ShiftID: "shift-1", AttributeTypeID: "attr-training", Value: "yes",
		ValidFrom: domain.NewDate(2026, 8, 1),
	})
	f.attributes.EndValue("shift-1", "attr-training", domain.NewDate(2026, 8, 10))

	cases := []struct {
		on   domain.Date
		want bool
	}{
		{domain.NewDate(2026, 7, 20), false},
		{domain.NewDate(2026, 8, 5), true},
		{domain.NewDate(2026, 8, 15), false},
	}
	for _, tc := range cases {
		matched, err := f.uc.Matches("shift-1", "p-1", tc.on)
		if err != nil {
			t.Fatalf("Matches on %v: %v", tc.on, err)
		}
		if matched != tc.want {
			t.Errorf("Matches on %v = %v, want %v", tc.on, matched, tc.want)
		}
	}
}

func TestAssignProfileSupersedesCurrent(t *testing.T) {
	f := newProfileFixture()
	f.seedShift(t, "shift-1")
	f.seedProfile(t, &domain.ShiftProfile{ID: "p-1", Code: "FIRST"})
	f.seedProfile(t, &domain.ShiftProfile{ID: "p-2", Code: "SECOND"})

	first, err := f.uc.AssignProfileToShift(&profiledto.AssignProfileInput{
		ShiftID: "shift-1", ProfileID: "p-1",
		StartDate: domain.NewDate(2026, 8, 1), AssignedBy: "dispatcher",
	})
	if err != nil {
		t.Fatalf("first assign: %v", err)
	}

	_, err = f.uc.AssignProfileToShift(&profiledto.AssignProfileInput{
		ShiftID: "shift-1", ProfileID: "p-2",
		StartDate: domain.NewDate(2026, 8, 10), AssignedBy: "dispatcher",
	})
	if err != nil {
		t.Fatalf("second assign: %v", err)
	}

	superseded := f.assignments.assignments[first.ID]
	if superseded.EndDate == nil {
		t.Fatal("first assignment should have been closed")
	}
	want := domain.NewDate(2026, 8, 9)
	if !superseded.EndDate.Equal(want) {
		t.Errorf("superseded end = %v, want day before new start %v", superseded.EndDate, want)
	}

	if got := f.profiles.profiles["p-1"].UsageCount; got != 0 {
		t.Errorf("old profile usage = %d, want 0", got)
	}
	if got := f.profiles.profiles["p-2"].UsageCount; got != 1 {
		t.Errorf("new profile usage = %d, want 1", got)
	}

	shift := f.shifts.shifts["shift-1"]
	if shift.CurrentProfileID == nil || *shift.CurrentProfileID != "p-2" {
		t.Errorf("shift current profile = %v, want p-2", shift.CurrentProfileID)
	}
}

func TestAssignProfileRejectsStaticMismatch(t *testing.T) {
	f := newProfileFixture()
	f.seedShift(t, "shift-1")
	f.seedProfile(t, &domain.ShiftProfile{ID: "p-1", Code: "VAN_ONLY", CabCategory: strPtr("VAN")})

	_, err := f.uc.AssignProfileToShift(&profiledto.AssignProfileInput{
		ShiftID: "shift-1", ProfileID: "p-1",
		StartDate: domain.NewDate(2026, 8, 1),
	})
	if !domain.IsValidation(err) {
		t.Fatalf("mismatching assign returned %v, want validation error", err)
	}
}

func TestAssignProfileRejectsInactiveProfile(t *testing.T) {
	f := newProfileFixture()
	f.seedShift(t, "shift-1")
	f.profiles.CreateProfile(&domain.ShiftProfile{ID: "p-1", Code: "RETIRED", Active: false})

	_, err := f.uc.AssignProfileToShift(&profiledto.AssignProfileInput{
		ShiftID: "shift-1", ProfileID: "p-1",
		StartDate: domain.NewDate(2026, 8, 1),
	})
	if !domain.IsValidation(err) {
		t.Fatalf("inactive assign returned %v, want validation error", err)
	}
}

func TestEndAssignment(t *testing.T) {
	f := newProfileFixture()
	f.seedShift(t, "shift-1")
	f.seedProfile(t, &domain.ShiftProfile{ID: "p-1", Code: "FIRST"})

	_, err := f.uc.AssignProfileToShift(&profiledto.AssignProfileInput{
		ShiftID: "shift-1", ProfileID: "p-1",
		StartDate: domain.NewDate(2026, 8, 1),
	})
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	if err := f.uc.EndAssignment("shift-1", domain.NewDate(2026, 7, 20)); !domain.IsValidation(err) {
		t.Fatalf("end before start returned %v, want validation error", err)
	}

	if err := f.uc.EndAssignment("shift-1", domain.NewDate(2026, 8, 15)); err != nil {
		t.Fatalf("end assignment: %v", err)
	}

	if got := f.profiles.profiles["p-1"].UsageCount; got != 0 {
		t.Errorf("profile usage = %d, want 0 after ending", got)
	}
	if f.shifts.shifts["shift-1"].CurrentProfileID != nil {
		t.Error("shift pointer should be cleared after ending the assignment")
	}

	if err := f.uc.EndAssignment("shift-1", domain.NewDate(2026, 8, 16)); err == nil {
		t.Error("ending a shift with no open assignment should fail")
	}
}

func TestUsageCountNeverGoesNegative(t *testing.T) {
	f := newProfileFixture()
	f.seedShift(t, "shift-1")
	f.seedShift(t, "shift-2")
	f.seedProfile(t, &domain.ShiftProfile{ID: "p-1", Code: "FIRST"})

	for _, shiftID := range []string{"shift-1", "shift-2"} {
		if _, err := f.uc.AssignProfileToShift(&profiledto.AssignProfileInput{
			ShiftID: shiftID, ProfileID: "p-1",
			StartDate: domain.NewDate(2026, 8, 1),
		}); err != nil {
			t.Fatalf("assign %s: %v", shiftID, err)
		}
	}
	if got := f.profiles.profiles["p-1"].UsageCount; got != 2 {
		t.Fatalf("usage = %d, want 2", got)
	}

	f.uc.EndAssignment("shift-1", domain.NewDate(2026, 8, 5))
	f.uc.EndAssignment("shift-2", domain.NewDate(2026, 8, 5))
	if got := f.profiles.profiles["p-1"].UsageCount; got != 0 {
		t.Errorf("usage = %d, want 0", got)
	}
}

func TestCreateProfileRejectsDuplicateCode(t *testing.T) {
	f := newProfileFixture()

	if _, err := f.uc.CreateProfile(&profiledto.CreateProfileInput{Code: "SEDAN_DAY", Name: "Sedan day"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.uc.CreateProfile(&profiledto.CreateProfileInput{Code: "SEDAN_DAY", Name: "Duplicate"}); !domain.IsValidation(err) {
		t.Fatalf("duplicate code returned %v, want validation error", err)
	}
	if _, err := f.uc.CreateProfile(&profiledto.CreateProfileInput{Name: "No code"}); !domain.IsValidation(err) {
		t.Fatalf("empty code returned %v, want validation error", err)
	}
}

func TestDeleteProfileGuards(t *testing.T) {
	f := newProfileFixture()
	f.seedShift(t, "shift-1")
	f.seedProfile(t, &domain.ShiftProfile{ID: "p-system", Code: "SYS", SystemProfile: true})
	f.seedProfile(t, &domain.ShiftProfile{ID: "p-used", Code: "USED"})
	f.seedProfile(t, &domain.ShiftProfile{ID: "p-free", Code: "FREE"})

	if _, err := f.uc.AssignProfileToShift(&profiledto.AssignProfileInput{
		ShiftID: "shift-1", ProfileID: "p-used",
		StartDate: domain.NewDate(2026, 8, 1),
	}); err != nil {
		t.Fatalf("assign: %v", err)
	}

	if err := f.uc.DeleteProfile("p-system"); !domain.IsValidation(err) {
		t.Errorf("system profile delete returned %v, want validation error", err)
	}
	if err := f.uc.DeleteProfile("p-used"); !domain.IsValidation(err) {
		t.Errorf("in-use profile delete returned %v, want validation error", err)
	}
	if err := f.uc.DeleteProfile("p-free"); err != nil {
		t.Errorf("unused profile delete: %v", err)
	}
}

func TestAddRequirementRejectsDuplicateAttributeType(t *testing.T) {
	f := newProfileFixture()
	f.seedProfile(t, &domain.ShiftProfile{ID: "p-1", Code: "TRAINED"})

	if _, err := f.uc.AddRequirement(&profiledto.AddRequirementInput{
		ProfileID: "p-1", AttributeTypeID: "attr-training", IsRequired: true,
	}); err != nil {
		t.Fatalf("add requirement: %v", err)
	}

	if _, err := f.uc.AddRequirement(&profiledto.AddRequirementInput{
		ProfileID: "p-1", AttributeTypeID: "attr-training", IsRequired: false,
	}); !domain.IsValidation(err) {
		t.Fatalf("duplicate attribute type returned %v, want validation error", err)
	}
}

func TestFindMatchingProfilesOrdersBySortOrder(t *testing.T) {
	f := newProfileFixture()
	f.seedProfile(t, &domain.ShiftProfile{ID: "p-late", Code: "LATE", SortOrder: 20})
	f.seedProfile(t, &domain.ShiftProfile{ID: "p-early", Code: "EARLY", SortOrder: 10})
	f.seedProfile(t, &domain.ShiftProfile{ID: "p-van", Code: "VAN", CabCategory: strPtr("VAN"), SortOrder: 5})

	matched, err := f.uc.FindMatchingProfiles("SEDAN", "FULL", true, "DAY")
	if err != nil {
		t.Fatalf("FindMatchingProfiles: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("matched %d profiles, want 2", len(matched))
	}
	if matched[0].Code != "EARLY" || matched[1].Code != "LATE" {
		t.Errorf("order = %s, %s; want EARLY, LATE", matched[0].Code, matched[1].Code)
	}
}
