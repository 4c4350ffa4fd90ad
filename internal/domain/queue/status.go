package queue

import "github.com/dentaldesk/clinic-queue/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked     Status = "BOOKED"
	StatusCalled     Status = "CALLED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
	StatusSkipped    Status = "SKIPPED"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusBooked, StatusCalled, StatusInProgress, StatusDone, StatusSkipped:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusBooked
}

// ===============================
// Transition table
// ===============================

// transitions holds the allowed status moves. DONE and SKIPPED are terminal.
// A walk-in may be pulled straight into the chair without being called first,
// and a called patient who fails to appear is skipped.
var transitions = map[Status][]Status{
	StatusBooked:     {StatusCalled, StatusInProgress, StatusSkipped},
	StatusCalled:     {StatusInProgress, StatusSkipped},
	StatusInProgress: {StatusDone},
	StatusSkipped:    {},
	StatusDone:       {},
}

// CanTransition decides whether an appointment may move from current to next.
// The store itself does not consult this; the use-case layer does, so the raw
// setter stays available to seeders and tests.
func CanTransition(current, next Status) error {
	for _, allowed := range transitions[current] {
		if allowed == next {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPartial PaymentStatus = "PARTIAL"
)

func IsValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentPartial:
		return true
	}
	return false
}
