package usecase

import (
	"testing"

	"github.com/droschke/fleet-rate-service/internal/domain"
)

func TestReconcileRepairsDriftedCounters(t *testing.T) {
	profiles := newMockProfileRepo()
	shifts := newMockShiftRepo()
	assignments := newMockAssignmentRepo(profiles, shifts)
	uc := NewDefaultReconcileUsecase(profiles, shifts, assignments, nil, nopLogger())

	profiles.CreateProfile(&domain.ShiftProfile{ID: "p-1", Code: "FIRST", Active: true})
	shifts.CreateShift(&domain.Shift{ID: "shift-1", CabID: "cab-1", ShiftType: "DAY"})
	shifts.CreateShift(&domain.Shift{ID: "shift-2", CabID: "cab-2", ShiftType: "DAY"})

	assignments.Assign(&domain.ShiftProfileAssignment{
		ID: "a-1", ShiftID: "shift-1", ProfileID: "p-1", StartDate: domain.NewDate(2026, 8, 1),
	})
	assignments.Assign(&domain.ShiftProfileAssignment{
		ID: "a-2", ShiftID: "shift-2", ProfileID: "p-1", StartDate: domain.NewDate(2026, 8, 1),
	})

	// Simulate drift from a manual data fix.
	profiles.profiles["p-1"].UsageCount = 7
	shifts.shifts["shift-1"].CurrentProfileID = nil
	stale := "p-gone"
	shifts.shifts["shift-2"].CurrentProfileID = &stale

	repaired, err := uc.ReconcileUsage()
	if err != nil {
		t.Fatalf("ReconcileUsage: %v", err)
	}
	if repaired != 3 {
		t.Errorf("repaired = %d, want 3 (one counter, two pointers)", repaired)
	}

	if got := profiles.profiles["p-1"].UsageCount; got != 2 {
		t.Errorf("usage = %d, want 2", got)
	}
	for _, shiftID := range []string{"shift-1", "shift-2"} {
		current := shifts.shifts[shiftID].CurrentProfileID
		if current == nil || *current != "p-1" {
			t.Errorf("%s current profile = %v, want p-1", shiftID, current)
		}
	}
}

func TestReconcileIsQuietWhenConsistent(t *testing.T) {
	profiles := newMockProfileRepo()
	shifts := newMockShiftRepo()
	assignments := newMockAssignmentRepo(profiles, shifts)
	uc := NewDefaultReconcileUsecase(profiles, shifts, assignments, nil, nopLogger())

	profiles.CreateProfile(&domain.ShiftProfile{ID: "p-1", Code: "FIRST", Active: true})
	shifts.CreateShift(&domain.Shift{ID: "shift-1", CabID: "cab-1", ShiftType: "DAY"})
	assignments.Assign(&domain.ShiftProfileAssignment{
		ID: "a-1", ShiftID: "shift-1", ProfileID: "p-1", StartDate: domain.NewDate(2026, 8, 1),
	})

	repaired, err := uc.ReconcileUsage()
	if err != nil {
		t.Fatalf("ReconcileUsage: %v", err)
	}
	if repaired != 0 {
		t.Errorf("repaired = %d, want 0 on consistent data", repaired)
	}
}
