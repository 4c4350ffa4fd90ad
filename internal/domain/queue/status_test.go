package queue

import "testing"

func TestCanTransition_HappyPath(t *testing.T) {
	steps := []struct {
		from Status
		to   Status
	}{
		{StatusBooked, StatusCalled},
		{StatusCalled, StatusInProgress},
		{StatusInProgress, StatusDone},
	}

	for _, s := range steps {
		if err := CanTransition(s.from, s.to); err != nil {
			t.Errorf("expected %s -> %s to be allowed, got %v", s.from, s.to, err)
		}
	}
}

func TestCanTransition_SkipBranches(t *testing.T) {
	if err := CanTransition(StatusBooked, StatusSkipped); err != nil {
		t.Errorf("BOOKED -> SKIPPED should be allowed: %v", err)
	}
	if err := CanTransition(StatusCalled, StatusSkipped); err != nil {
		t.Errorf("CALLED -> SKIPPED should be allowed: %v", err)
	}
	// A walk-in can be pulled straight into the chair.
	if err := CanTransition(StatusBooked, StatusInProgress); err != nil {
		t.Errorf("BOOKED -> IN_PROGRESS should be allowed: %v", err)
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	for _, terminal := range []Status{StatusDone, StatusSkipped} {
		for _, next := range []Status{StatusBooked, StatusCalled, StatusInProgress, StatusDone, StatusSkipped} {
			if err := CanTransition(terminal, next); err == nil {
				t.Errorf("expected %s -> %s to be rejected", terminal, next)
			}
		}
	}
}

func TestCanTransition_NoReverse(t *testing.T) {
	if err := CanTransition(StatusInProgress, StatusBooked); err == nil {
		t.Error("expected IN_PROGRESS -> BOOKED to be rejected")
	}
	if err := CanTransition(StatusCalled, StatusBooked); err == nil {
		t.Error("expected CALLED -> BOOKED to be rejected")
	}
}

func TestIsValidStatus(t *testing.T) {
	if !IsValidStatus("BOOKED") || !IsValidStatus("SKIPPED") {
		t.Error("expected known statuses to validate")
	}
	if IsValidStatus("booked") || IsValidStatus("CANCELLED") || IsValidStatus("") {
		t.Error("expected unknown statuses to be rejected")
	}
}
