package queue

import (
	"testing"

	domain "github.com/dentaldesk/clinic-queue/internal/domain/queue"
	"github.com/dentaldesk/clinic-queue/internal/httperr"
)

func TestCompleteVisit(t *testing.T) {
	store, _ := testEnv(t)
	uc := NewCompleteVisit(store)

	// apt-2 is seeded IN_PROGRESS for Sunita Devi ("Cavity filling").
	result, err := uc.Execute(CompleteVisitInput{
		AppointmentID:    "apt-2",
		Diagnosis:        "Dental caries",
		TreatmentNotes:   "Cavity filling done",
		PrescriptionText: "Ibuprofen 400mg",
		FollowupDate:     "2025-07-10",
		Amount:           "1500",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := result.Visit
	if v.PatientID != "pat-2" || v.AppointmentID != "apt-2" {
		t.Errorf("unexpected visit references: %+v", v)
	}
	if v.ChiefComplaint != "Cavity filling" {
		t.Errorf("expected the appointment complaint to carry over, got %q", v.ChiefComplaint)
	}
	if v.Amount != 1500 {
		t.Errorf("expected amount 1500, got %v", v.Amount)
	}
	if v.PaymentStatus != string(domain.PaymentPending) {
		t.Errorf("expected PENDING, got %s", v.PaymentStatus)
	}
	if v.VisitDate != "2025-06-10" {
		t.Errorf("expected today's visit date, got %s", v.VisitDate)
	}

	if result.Appointment.Status != string(domain.StatusDone) {
		t.Errorf("expected the appointment to end DONE, got %s", result.Appointment.Status)
	}
	if visits := store.PatientVisits("pat-2"); len(visits) != 2 {
		t.Errorf("expected the seeded visit plus the new one, got %d", len(visits))
	}
}

func TestCompleteVisit_UnparsableAmountBillsZero(t *testing.T) {
	store, _ := testEnv(t)
	uc := NewCompleteVisit(store)

	result, err := uc.Execute(CompleteVisitInput{AppointmentID: "apt-2", Amount: "15oo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Visit.Amount != 0 {
		t.Errorf("expected 0 for unparsable input, got %v", result.Visit.Amount)
	}
}

func TestCompleteVisit_RequiresCompletableState(t *testing.T) {
	store, _ := testEnv(t)
	uc := NewCompleteVisit(store)

	// apt-1 is already DONE.
	_, err := uc.Execute(CompleteVisitInput{AppointmentID: "apt-1"})
	if !httperr.IsBusiness(err, "invalid_transition") {
		t.Errorf("expected invalid_transition, got %v", err)
	}

	// No stray visit may be recorded when the transition is refused.
	if visits := store.PatientVisits("pat-1"); len(visits) != 1 {
		t.Errorf("expected only the seeded visit, got %d", len(visits))
	}
}

func TestCompleteVisit_UnknownAppointment(t *testing.T) {
	store, _ := testEnv(t)
	uc := NewCompleteVisit(store)

	_, err := uc.Execute(CompleteVisitInput{AppointmentID: "apt-ghost"})
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Errorf("expected appointment_not_found, got %v", err)
	}
}
