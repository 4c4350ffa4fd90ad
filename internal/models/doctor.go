package models

import "time"

// Doctor is seeded at first start and never created or edited through the API.
type Doctor struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Code is the single-letter token prefix ("A", "B").
	Code  string `json:"code"`
	Email string `json:"email"`

	CreatedAt time.Time `json:"created_at"`
}
