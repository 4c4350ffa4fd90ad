package models

import "time"

type Appointment struct {
	ID string `json:"id"`

	PatientID string `json:"patient_id"`
	DoctorID  string `json:"doctor_id"`

	// Date is the calendar day ("2006-01-02") the appointment belongs to.
	Date string `json:"date"`
	Slot string `json:"slot,omitempty"`

	// TokenNumber is unique per doctor per day, e.g. "A-001".
	TokenNumber string `json:"token_number"`

	Status    string `json:"status"`
	Complaint string `json:"complaint,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// Patient and Doctor are convenience snapshots frozen at creation time.
	// They are never refreshed; the foreign keys above are authoritative.
	Patient *Patient `json:"patient,omitempty"`
	Doctor  *Doctor  `json:"doctor,omitempty"`
}
