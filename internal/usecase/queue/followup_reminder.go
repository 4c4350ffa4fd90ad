package queue

import (
	"fmt"

	"github.com/dentaldesk/clinic-queue/internal/httperr"
	"github.com/dentaldesk/clinic-queue/internal/models"
	"github.com/dentaldesk/clinic-queue/internal/notify"
)

// FollowupReminder builds the WhatsApp nudge for an overdue follow-up and
// records it. The returned link is handed to the UI to open; nothing is
// sent from the server.
type FollowupReminder struct {
	store  Store
	notify Notifier
}

func NewFollowupReminder(store Store, notify Notifier) *FollowupReminder {
	return &FollowupReminder{store: store, notify: notify}
}

func (uc *FollowupReminder) Execute(patientID string) (string, error) {
	patient, ok := uc.store.GetPatient(patientID)
	if !ok {
		return "", httperr.ErrBusiness("patient_not_found")
	}

	text := fmt.Sprintf(
		"Hi %s, this is a reminder for your dental follow-up appointment. Please visit us at your earliest convenience.",
		patient.Name,
	)

	uc.notify.Dispatch(notify.Message{
		PatientID: patient.ID,
		Type:      models.WhatsAppTypeReminder,
		Phone:     patient.Phone,
		Text:      text,
	})

	return notify.Link(patient.Phone, text), nil
}
