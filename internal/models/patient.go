package models

import "time"

type Patient struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Phone is the natural lookup key for returning patients. It is not
	// enforced unique; callers look up by phone before creating.
	Phone string `json:"phone"`

	Age *int `json:"age,omitempty"`

	// NoShowCount only ever increases, once per SKIPPED appointment.
	NoShowCount int `json:"no_show_count"`

	CreatedAt time.Time `json:"created_at"`
}
