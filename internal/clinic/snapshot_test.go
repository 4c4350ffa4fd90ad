package clinic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dentaldesk/clinic-queue/internal/domain/queue"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic-storage.json")

	s, _ := testStore(t)
	p := s.AddPatient("Amit Kumar", "9876543210", nil)
	ap := s.CreateAppointment(p.ID, "doc-1", "Tooth pain", "Walk-in")
	s.AddVisit(VisitInput{PatientID: p.ID, DoctorID: "doc-1", Amount: 1500, PaymentStatus: queue.PaymentPaid})

	if err := s.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Open(path, false)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	got, ok := loaded.GetPatient(p.ID)
	if !ok || got.Phone != "9876543210" {
		t.Errorf("expected the patient to survive the round trip, got %+v ok=%v", got, ok)
	}

	gotAp, ok := loaded.GetAppointment(ap.ID)
	if !ok || gotAp.TokenNumber != ap.TokenNumber || gotAp.Status != ap.Status {
		t.Errorf("expected the appointment to survive the round trip, got %+v ok=%v", gotAp, ok)
	}

	if visits := loaded.PatientVisits(p.ID); len(visits) != 1 || visits[0].Amount != 1500 {
		t.Errorf("expected one visit of 1500, got %+v", visits)
	}
}

func TestOpen_MissingFileSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic-storage.json")

	s, err := Open(path, true)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	if len(s.Doctors()) != 2 {
		t.Errorf("expected the seeded doctors, got %d", len(s.Doctors()))
	}
	if _, ok := s.GetPatientByPhone("9876543210"); !ok {
		t.Error("expected the seeded patients")
	}
}

func TestOpen_MissingFileWithoutSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic-storage.json")

	s, err := Open(path, false)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if len(s.Doctors()) != 0 {
		t.Errorf("expected an empty store, got %d doctors", len(s.Doctors()))
	}
}

func TestOpen_RejectsCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic-storage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path, false); err == nil {
		t.Error("expected an error for a corrupt snapshot")
	}
}

func TestSeed_TodayQueue(t *testing.T) {
	s, _ := testStore(t)
	s.Seed()

	today := s.TodayAppointments("doc-1")
	if len(today) != 3 {
		t.Fatalf("expected 3 seeded appointments for doc-1, got %d", len(today))
	}
	if today[0].TokenNumber != "A-001" {
		t.Errorf("expected the seed queue to start at A-001, got %s", today[0].TokenNumber)
	}

	// The seed leaves the A queue mid-session, so the next walk-in gets A-004.
	p := s.AddPatient("Ravi Verma", "9876543214", nil)
	ap := s.CreateAppointment(p.ID, "doc-1", "", "Walk-in")
	if ap.TokenNumber != "A-004" {
		t.Errorf("expected A-004 after the seeded queue, got %s", ap.TokenNumber)
	}
}
