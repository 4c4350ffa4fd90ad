package models

import "time"

const (
	WhatsAppTypeToken     = "TOKEN"
	WhatsAppTypeCallAlert = "CALL_ALERT"
	WhatsAppTypeSummary   = "SUMMARY"
	WhatsAppTypeReminder  = "REMINDER"

	WhatsAppStatusSent   = "SENT"
	WhatsAppStatusFailed = "FAILED"
)

// WhatsAppLog records a stubbed outbound message. Nothing is actually sent;
// the payload carries a wa.me deep link the UI can open.
type WhatsAppLog struct {
	ID string `json:"id"`

	PatientID     string `json:"patient_id,omitempty"`
	AppointmentID string `json:"appointment_id,omitempty"`

	Type    string            `json:"type"`
	Payload map[string]string `json:"payload"`
	Status  string            `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
