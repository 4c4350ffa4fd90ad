package queue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dentaldesk/clinic-queue/internal/httperr"
	"github.com/dentaldesk/clinic-queue/internal/models"
	"github.com/dentaldesk/clinic-queue/internal/notify"
	"github.com/dentaldesk/clinic-queue/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CheckInInput struct {
	Phone string

	// Name and Age matter only when the phone is unseen; for returning
	// patients the existing record wins.
	Name string
	Age  string

	DoctorID  string
	Complaint string

	// Slot is empty for walk-ins and a label like "Morning" for bookings.
	Slot string
}

// ======================================================
// USE CASE
// ======================================================

// CheckIn handles both the walk-in kiosk and the booking form: look the
// patient up by phone, create them if unseen, issue the next token for the
// chosen doctor and send the token message.
type CheckIn struct {
	store  Store
	notify Notifier
}

func NewCheckIn(store Store, notify Notifier) *CheckIn {
	return &CheckIn{store: store, notify: notify}
}

func (uc *CheckIn) Execute(in CheckInInput) (models.Appointment, error) {
	if !validators.IsPhoneValid(in.Phone) {
		return models.Appointment{}, httperr.ErrBusiness("invalid_phone")
	}

	doctor, ok := uc.store.GetDoctor(in.DoctorID)
	if !ok {
		return models.Appointment{}, httperr.ErrBusiness("doctor_not_found")
	}

	patient, ok := uc.store.GetPatientByPhone(in.Phone)
	if !ok {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return models.Appointment{}, httperr.ErrBusiness("name_required")
		}
		patient = uc.store.AddPatient(name, in.Phone, parseAge(in.Age))
	}

	slot := in.Slot
	if slot == "" {
		slot = "Walk-in"
	}

	ap := uc.store.CreateAppointment(patient.ID, doctor.ID, in.Complaint, slot)

	uc.notify.Dispatch(notify.Message{
		PatientID:     patient.ID,
		AppointmentID: ap.ID,
		Type:          models.WhatsAppTypeToken,
		Phone:         patient.Phone,
		Text: fmt.Sprintf(
			"Hi %s, your token for %s is %s. Track your queue status anytime.",
			patient.Name, doctor.Name, ap.TokenNumber,
		),
	})

	return ap, nil
}

// parseAge mirrors the form behavior: an unparsable age is simply absent,
// never an error.
func parseAge(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
