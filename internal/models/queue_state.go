package models

import "time"

// QueueState tracks the token currently being served at a doctor's chair
// on a given day.
type QueueState struct {
	DoctorID     string    `json:"doctor_id"`
	Date         string    `json:"date"`
	CurrentToken string    `json:"current_token,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}
