package queue

import (
	"github.com/dentaldesk/clinic-queue/internal/clinic"
	domain "github.com/dentaldesk/clinic-queue/internal/domain/queue"
	"github.com/dentaldesk/clinic-queue/internal/models"
	"github.com/dentaldesk/clinic-queue/internal/notify"
)

// Store is the slice of the clinic store the queue use cases need.
type Store interface {
	GetDoctor(id string) (models.Doctor, bool)

	GetPatient(id string) (models.Patient, bool)
	GetPatientByPhone(phone string) (models.Patient, bool)
	AddPatient(name, phone string, age *int) models.Patient

	CreateAppointment(patientID, doctorID, complaint, slot string) models.Appointment
	GetAppointment(id string) (models.Appointment, bool)
	UpdateAppointmentStatus(id string, status domain.Status) (models.Appointment, bool)
	TodayAppointments(doctorID string) []models.Appointment
	AppointmentByToken(token string) (models.Appointment, bool)

	AddVisit(in clinic.VisitInput) models.Visit
	QueueStateFor(doctorID string) (models.QueueState, bool)
}

// Notifier receives fire-and-forget messages for the WhatsApp stub.
type Notifier interface {
	Dispatch(msg notify.Message)
}
