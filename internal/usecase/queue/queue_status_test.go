package queue

import (
	"strings"
	"testing"

	"github.com/dentaldesk/clinic-queue/internal/httperr"
	"github.com/dentaldesk/clinic-queue/internal/models"
)

func TestQueueStatus_Position(t *testing.T) {
	store, notifier := testEnv(t)

	// Join the back of doc-1's queue behind the seeded A-003.
	checkIn := NewCheckIn(store, notifier)
	ap, err := checkIn.Execute(CheckInInput{
		Phone:    "9000000005",
		Name:     "Ravi Verma",
		DoctorID: "doc-1",
	})
	if err != nil {
		t.Fatal(err)
	}

	uc := NewQueueStatus(store)
	pos, err := uc.Execute(ap.TokenNumber)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pos.Appointment.ID != ap.ID {
		t.Errorf("expected the caller's appointment, got %s", pos.Appointment.ID)
	}
	if pos.WaitingBefore != 1 {
		t.Errorf("expected 1 booked token ahead (A-003), got %d", pos.WaitingBefore)
	}
	if pos.NowServing != "A-002" {
		t.Errorf("expected A-002 at the chair, got %q", pos.NowServing)
	}
	if pos.QueueLength != 4 {
		t.Errorf("expected 4 appointments in the queue, got %d", pos.QueueLength)
	}
}

func TestQueueStatus_FrontOfQueue(t *testing.T) {
	store, _ := testEnv(t)
	uc := NewQueueStatus(store)

	pos, err := uc.Execute("A-003")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.WaitingBefore != 0 {
		t.Errorf("A-003 is next up, expected 0 ahead, got %d", pos.WaitingBefore)
	}
}

func TestQueueStatus_CalledTokenSeesItself(t *testing.T) {
	store, _ := testEnv(t)
	uc := NewQueueStatus(store)

	pos, err := uc.Execute("B-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.NowServing != "B-001" {
		t.Errorf("expected the called token itself, got %q", pos.NowServing)
	}
}

func TestQueueStatus_UnknownToken(t *testing.T) {
	store, _ := testEnv(t)
	uc := NewQueueStatus(store)

	_, err := uc.Execute("Z-999")
	if !httperr.IsBusiness(err, "token_not_found") {
		t.Errorf("expected token_not_found, got %v", err)
	}
}

func TestFollowupReminder(t *testing.T) {
	store, notifier := testEnv(t)
	uc := NewFollowupReminder(store, notifier)

	link, err := uc.Execute("pat-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(link, "https://wa.me/919876543211?text=") {
		t.Errorf("unexpected link: %s", link)
	}

	if len(notifier.messages) != 1 {
		t.Fatalf("expected one reminder, got %d", len(notifier.messages))
	}
	if notifier.messages[0].Type != models.WhatsAppTypeReminder {
		t.Errorf("expected a REMINDER, got %s", notifier.messages[0].Type)
	}
}

func TestFollowupReminder_UnknownPatient(t *testing.T) {
	store, notifier := testEnv(t)
	uc := NewFollowupReminder(store, notifier)

	_, err := uc.Execute("pat-ghost")
	if !httperr.IsBusiness(err, "patient_not_found") {
		t.Errorf("expected patient_not_found, got %v", err)
	}
}
