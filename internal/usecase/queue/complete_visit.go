package queue

import (
	"strconv"
	"strings"

	"github.com/dentaldesk/clinic-queue/internal/clinic"
	domain "github.com/dentaldesk/clinic-queue/internal/domain/queue"
	"github.com/dentaldesk/clinic-queue/internal/httperr"
	"github.com/dentaldesk/clinic-queue/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CompleteVisitInput struct {
	AppointmentID string

	Diagnosis        string
	TreatmentNotes   string
	PrescriptionText string

	FollowupDate string

	// Amount arrives as form text; anything unparsable is billed as zero.
	Amount string
}

type CompleteVisitResult struct {
	Visit       models.Visit       `json:"visit"`
	Appointment models.Appointment `json:"appointment"`
}

// ======================================================
// USE CASE
// ======================================================

// CompleteVisit closes out an in-progress appointment: it records the visit
// (payment starts PENDING) and then marks the appointment DONE. The store
// has no cross-entity transaction, so the visit exists momentarily before
// the status flips.
type CompleteVisit struct {
	store Store
}

func NewCompleteVisit(store Store) *CompleteVisit {
	return &CompleteVisit{store: store}
}

func (uc *CompleteVisit) Execute(in CompleteVisitInput) (CompleteVisitResult, error) {
	ap, ok := uc.store.GetAppointment(in.AppointmentID)
	if !ok {
		return CompleteVisitResult{}, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanTransition(domain.Status(ap.Status), domain.StatusDone); err != nil {
		return CompleteVisitResult{}, err
	}

	visit := uc.store.AddVisit(clinic.VisitInput{
		PatientID:        ap.PatientID,
		DoctorID:         ap.DoctorID,
		AppointmentID:    ap.ID,
		ChiefComplaint:   ap.Complaint,
		Diagnosis:        in.Diagnosis,
		TreatmentNotes:   in.TreatmentNotes,
		PrescriptionText: in.PrescriptionText,
		FollowupDate:     in.FollowupDate,
		Amount:           parseAmount(in.Amount),
		PaymentStatus:    domain.PaymentPending,
	})

	updated, _ := uc.store.UpdateAppointmentStatus(ap.ID, domain.StatusDone)

	return CompleteVisitResult{Visit: visit, Appointment: updated}, nil
}

// parseAmount coerces silently: bad input bills zero rather than failing the
// visit.
func parseAmount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
