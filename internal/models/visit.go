package models

import "time"

type Visit struct {
	ID string `json:"id"`

	PatientID string `json:"patient_id"`
	DoctorID  string `json:"doctor_id"`

	// AppointmentID references the appointment this visit closes out, when
	// the visit came through the queue rather than the history importer.
	AppointmentID string `json:"appointment_id,omitempty"`

	VisitDate string `json:"visit_date"`

	ChiefComplaint   string `json:"chief_complaint,omitempty"`
	Diagnosis        string `json:"diagnosis,omitempty"`
	TreatmentNotes   string `json:"treatment_notes,omitempty"`
	PrescriptionText string `json:"prescription_text,omitempty"`

	// FollowupDate, when set, is a calendar day; the visit shows up in the
	// pending follow-up list once that day is reached.
	FollowupDate string `json:"followup_date,omitempty"`

	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
}
