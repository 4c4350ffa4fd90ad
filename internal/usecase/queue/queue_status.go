package queue

import (
	domain "github.com/dentaldesk/clinic-queue/internal/domain/queue"
	"github.com/dentaldesk/clinic-queue/internal/httperr"
	"github.com/dentaldesk/clinic-queue/internal/models"
)

// QueuePosition is what the public status page renders for one token.
type QueuePosition struct {
	Appointment models.Appointment `json:"appointment"`

	// WaitingBefore counts still-booked tokens ahead of this one.
	WaitingBefore int `json:"waiting_before"`

	// NowServing is the token currently at the chair, empty when idle.
	NowServing string `json:"now_serving,omitempty"`

	QueueLength int `json:"queue_length"`
}

// QueueStatus resolves a token against today's queue and derives the
// caller's position in it.
type QueueStatus struct {
	store Store
}

func NewQueueStatus(store Store) *QueueStatus {
	return &QueueStatus{store: store}
}

func (uc *QueueStatus) Execute(token string) (QueuePosition, error) {
	ap, ok := uc.store.AppointmentByToken(token)
	if !ok {
		return QueuePosition{}, httperr.ErrBusiness("token_not_found")
	}

	doctorQueue := uc.store.TodayAppointments(ap.DoctorID)

	// Tokens sort lexicographically within one doctor's day, so a plain
	// string compare orders the queue.
	waiting := 0
	for _, other := range doctorQueue {
		if other.Status == string(domain.StatusBooked) && other.TokenNumber < ap.TokenNumber {
			waiting++
		}
	}

	nowServing := ""
	for _, other := range doctorQueue {
		if other.Status == string(domain.StatusInProgress) || other.Status == string(domain.StatusCalled) {
			nowServing = other.TokenNumber
			break
		}
	}
	if nowServing == "" {
		if qs, ok := uc.store.QueueStateFor(ap.DoctorID); ok {
			nowServing = qs.CurrentToken
		}
	}

	return QueuePosition{
		Appointment:   ap,
		WaitingBefore: waiting,
		NowServing:    nowServing,
		QueueLength:   len(doctorQueue),
	}, nil
}
