package queue

import (
	"fmt"

	domain "github.com/dentaldesk/clinic-queue/internal/domain/queue"
	"github.com/dentaldesk/clinic-queue/internal/httperr"
	"github.com/dentaldesk/clinic-queue/internal/models"
	"github.com/dentaldesk/clinic-queue/internal/notify"
)

// ChangeStatus moves an appointment through the queue. Unlike the raw store
// setter it enforces the transition table, so a DONE appointment cannot be
// reopened over the API.
type ChangeStatus struct {
	store  Store
	notify Notifier
}

func NewChangeStatus(store Store, notify Notifier) *ChangeStatus {
	return &ChangeStatus{store: store, notify: notify}
}

func (uc *ChangeStatus) Execute(appointmentID string, next domain.Status) (models.Appointment, error) {
	if !domain.IsValidStatus(string(next)) {
		return models.Appointment{}, httperr.ErrBusiness("invalid_status")
	}

	ap, ok := uc.store.GetAppointment(appointmentID)
	if !ok {
		return models.Appointment{}, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanTransition(domain.Status(ap.Status), next); err != nil {
		return models.Appointment{}, err
	}

	updated, _ := uc.store.UpdateAppointmentStatus(appointmentID, next)

	if next == domain.StatusCalled {
		if patient, ok := uc.store.GetPatient(updated.PatientID); ok {
			uc.notify.Dispatch(notify.Message{
				PatientID:     patient.ID,
				AppointmentID: updated.ID,
				Type:          models.WhatsAppTypeCallAlert,
				Phone:         patient.Phone,
				Text: fmt.Sprintf(
					"Hi %s, token %s is being called now. Please come to the clinic.",
					patient.Name, updated.TokenNumber,
				),
			})
		}
	}

	return updated, nil
}
