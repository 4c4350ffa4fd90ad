// Package notify is the stubbed WhatsApp integration. Messages are never
// sent anywhere; each one is recorded in the store's log with a wa.me deep
// link the UI can hand to the front desk.
package notify

import "net/url"

// countryCode is prefixed to patient phone numbers in deep links, matching
// the clinic's local numbers which are stored without one.
const countryCode = "91"

type Message struct {
	PatientID     string
	AppointmentID string

	// Type is one of the models.WhatsAppType* constants.
	Type string

	Phone string
	Text  string
}

// Link builds the wa.me deep link for a message.
func Link(phone, text string) string {
	return "https://wa.me/" + countryCode + phone + "?text=" + url.QueryEscape(text)
}
