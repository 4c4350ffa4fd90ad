// Package clinic owns the single authoritative in-memory state for the
// clinic: doctors, patients, appointments, visits, queue pointers and the
// message log. Every operation takes the store lock, runs to completion and
// returns copies, so readers never observe a half-applied mutation.
package clinic

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dentaldesk/clinic-queue/internal/domain/queue"
	"github.com/dentaldesk/clinic-queue/internal/models"
	"github.com/dentaldesk/clinic-queue/internal/timezone"
)

type Store struct {
	mu  sync.RWMutex
	now func() time.Time
	log zerolog.Logger

	doctors      []models.Doctor
	patients     []models.Patient
	appointments []models.Appointment
	visits       []models.Visit
	queueStates  []models.QueueState
	whatsappLogs []models.WhatsAppLog

	currentDoctorID string
}

type Option func(*Store)

// WithClock injects the time source. The clock must already be in the
// clinic's timezone; calendar days are derived from it directly.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

func New(opts ...Option) *Store {
	s := &Store{
		now: timezone.Now,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) today() string {
	return timezone.Day(s.now())
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// ======================================================
// Auth
// ======================================================

// Login matches a doctor by exact email. The password is accepted
// unconditionally: this is a demo stub, not a security boundary.
func (s *Store) Login(email, _ string) (models.Doctor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.doctors {
		if d.Email == email {
			s.currentDoctorID = d.ID
			s.log.Info().Str("doctor_id", d.ID).Msg("doctor logged in")
			return d, true
		}
	}
	return models.Doctor{}, false
}

func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentDoctorID = ""
}

func (s *Store) CurrentDoctor() (models.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doctorByIDLocked(s.currentDoctorID)
}

// ======================================================
// Doctors
// ======================================================

func (s *Store) Doctors() []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out
}

func (s *Store) GetDoctor(id string) (models.Doctor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doctorByIDLocked(id)
}

func (s *Store) doctorByIDLocked(id string) (models.Doctor, bool) {
	for _, d := range s.doctors {
		if d.ID == id {
			return d, true
		}
	}
	return models.Doctor{}, false
}

// ======================================================
// Patients
// ======================================================

// AddPatient appends a fresh patient record. It deliberately does not check
// the phone for duplicates; callers run GetPatientByPhone first.
func (s *Store) AddPatient(name, phone string, age *int) models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Patient{
		ID:          newID("pat"),
		Name:        name,
		Phone:       phone,
		Age:         age,
		NoShowCount: 0,
		CreatedAt:   s.now(),
	}
	s.patients = append(s.patients, p)
	return p
}

func (s *Store) GetPatient(id string) (models.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.patients {
		if p.ID == id {
			return p, true
		}
	}
	return models.Patient{}, false
}

// GetPatientByPhone returns the first patient recorded with this phone.
func (s *Store) GetPatientByPhone(phone string) (models.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.patients {
		if p.Phone == phone {
			return p, true
		}
	}
	return models.Patient{}, false
}

// UpdatePatientNoShow bumps the no-show counter. Unknown ids are a no-op.
func (s *Store) UpdatePatientNoShow(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bumpNoShowLocked(id)
}

func (s *Store) bumpNoShowLocked(id string) {
	for i := range s.patients {
		if s.patients[i].ID == id {
			s.patients[i].NoShowCount++
			return
		}
	}
}

// ======================================================
// Appointments
// ======================================================

// CreateAppointment issues the next token for the doctor's queue today.
// The sequence number is the count of appointments already recorded for
// that doctor on that date, plus one. Patient and doctor ids are not
// validated; a dangling reference just leaves the snapshots nil.
func (s *Store) CreateAppointment(patientID, doctorID, complaint, slot string) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()

	code := "A"
	var doctorSnap *models.Doctor
	if d, ok := s.doctorByIDLocked(doctorID); ok {
		code = d.Code
		doctorSnap = &d
	}

	var patientSnap *models.Patient
	for _, p := range s.patients {
		if p.ID == patientID {
			snap := p
			patientSnap = &snap
			break
		}
	}

	count := 0
	for _, a := range s.appointments {
		if a.DoctorID == doctorID && a.Date == today {
			count++
		}
	}

	ap := models.Appointment{
		ID:          newID("apt"),
		PatientID:   patientID,
		DoctorID:    doctorID,
		Date:        today,
		Slot:        slot,
		TokenNumber: queue.FormatToken(code, count+1),
		Status:      string(queue.InitialStatus()),
		Complaint:   complaint,
		CreatedAt:   s.now(),
		Patient:     patientSnap,
		Doctor:      doctorSnap,
	}
	s.appointments = append(s.appointments, ap)

	s.log.Info().
		Str("appointment_id", ap.ID).
		Str("token", ap.TokenNumber).
		Str("doctor_id", doctorID).
		Msg("appointment created")

	return ap
}

// UpdateAppointmentStatus sets the status in place, preserving every other
// field. It is intentionally permissive; transition legality is checked by
// the use-case layer, not here. Side effects: a SKIPPED transition bumps the
// patient's no-show count, and CALLED / IN_PROGRESS advance the doctor's
// queue pointer.
func (s *Store) UpdateAppointmentStatus(id string, status queue.Status) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}

		s.appointments[i].Status = string(status)
		ap := s.appointments[i]

		switch status {
		case queue.StatusSkipped:
			s.bumpNoShowLocked(ap.PatientID)
		case queue.StatusCalled, queue.StatusInProgress:
			s.advanceQueueLocked(ap.DoctorID, ap.Date, ap.TokenNumber)
		}

		return ap, true
	}
	return models.Appointment{}, false
}

// GetAppointment looks an appointment up by id regardless of date.
func (s *Store) GetAppointment(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}

// TodayAppointments returns today's queue in insertion order, optionally
// filtered to one doctor. Pass "" for all doctors.
func (s *Store) TodayAppointments(doctorID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := s.today()
	var out []models.Appointment
	for _, a := range s.appointments {
		if a.Date != today {
			continue
		}
		if doctorID != "" && a.DoctorID != doctorID {
			continue
		}
		out = append(out, a)
	}
	return out
}

// AppointmentByToken resolves a token against today's queue only. Yesterday's
// tokens are gone even though they were unique historically.
func (s *Store) AppointmentByToken(token string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := s.today()
	for _, a := range s.appointments {
		if a.TokenNumber == token && a.Date == today {
			return a, true
		}
	}
	return models.Appointment{}, false
}

// ======================================================
// Queue state
// ======================================================

func (s *Store) advanceQueueLocked(doctorID, date, token string) {
	for i := range s.queueStates {
		if s.queueStates[i].DoctorID == doctorID && s.queueStates[i].Date == date {
			s.queueStates[i].CurrentToken = token
			s.queueStates[i].UpdatedAt = s.now()
			return
		}
	}
	s.queueStates = append(s.queueStates, models.QueueState{
		DoctorID:     doctorID,
		Date:         date,
		CurrentToken: token,
		UpdatedAt:    s.now(),
	})
}

// QueueStateFor returns today's queue pointer for a doctor.
func (s *Store) QueueStateFor(doctorID string) (models.QueueState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := s.today()
	for _, q := range s.queueStates {
		if q.DoctorID == doctorID && q.Date == today {
			return q, true
		}
	}
	return models.QueueState{}, false
}

// ======================================================
// Visits
// ======================================================

// VisitInput carries the fields a caller supplies for a new visit; ids and
// timestamps are the store's business.
type VisitInput struct {
	PatientID     string
	DoctorID      string
	AppointmentID string

	VisitDate string

	ChiefComplaint   string
	Diagnosis        string
	TreatmentNotes   string
	PrescriptionText string

	FollowupDate string

	Amount        float64
	PaymentStatus queue.PaymentStatus
}

// AddVisit appends a visit record. The amount is clamped to zero when
// negative (unparsable form input arrives as zero already) and the payment
// status defaults to PENDING. Creating the visit does not touch the
// appointment; callers transition it to DONE separately.
func (s *Store) AddVisit(in VisitInput) models.Visit {
	s.mu.Lock()
	defer s.mu.Unlock()

	amount := in.Amount
	if amount < 0 {
		amount = 0
	}

	status := in.PaymentStatus
	if !queue.IsValidPaymentStatus(string(status)) {
		status = queue.PaymentPending
	}

	visitDate := in.VisitDate
	if visitDate == "" {
		visitDate = s.today()
	}

	v := models.Visit{
		ID:               newID("vis"),
		PatientID:        in.PatientID,
		DoctorID:         in.DoctorID,
		AppointmentID:    in.AppointmentID,
		VisitDate:        visitDate,
		ChiefComplaint:   in.ChiefComplaint,
		Diagnosis:        in.Diagnosis,
		TreatmentNotes:   in.TreatmentNotes,
		PrescriptionText: in.PrescriptionText,
		FollowupDate:     in.FollowupDate,
		Amount:           amount,
		PaymentStatus:    string(status),
		CreatedAt:        s.now(),
	}
	s.visits = append(s.visits, v)
	return v
}

func (s *Store) GetVisit(id string) (models.Visit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.visits {
		if v.ID == id {
			return v, true
		}
	}
	return models.Visit{}, false
}

// UpdateVisitPayment sets the payment status and, only when supplied, the
// amount. Unknown ids are a no-op.
func (s *Store) UpdateVisitPayment(id string, status queue.PaymentStatus, amount *float64) (models.Visit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.visits {
		if s.visits[i].ID != id {
			continue
		}
		s.visits[i].PaymentStatus = string(status)
		if amount != nil {
			s.visits[i].Amount = *amount
		}
		return s.visits[i], true
	}
	return models.Visit{}, false
}

func (s *Store) PatientVisits(patientID string) []models.Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Visit
	for _, v := range s.visits {
		if v.PatientID == patientID {
			out = append(out, v)
		}
	}
	return out
}

// PendingFollowups returns every visit whose follow-up date has arrived,
// today included. Visits without a follow-up date never appear.
func (s *Store) PendingFollowups() []models.Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingFollowupsLocked()
}

func (s *Store) pendingFollowupsLocked() []models.Visit {
	today := s.today()
	var out []models.Visit
	for _, v := range s.visits {
		if v.FollowupDate == "" {
			continue
		}
		if v.FollowupDate <= today {
			out = append(out, v)
		}
	}
	return out
}

// ======================================================
// Summary
// ======================================================

// DailySummary aggregates today's queue and money. The follow-up count is
// all-time pending, not today-scoped; the dashboard has always shown the
// full backlog there.
func (s *Store) DailySummary() models.DailySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := s.today()
	var sum models.DailySummary

	for _, a := range s.appointments {
		if a.Date == today && a.Status == string(queue.StatusDone) {
			sum.TotalPatients++
		}
	}

	for _, v := range s.visits {
		if v.VisitDate != today {
			continue
		}
		switch queue.PaymentStatus(v.PaymentStatus) {
		case queue.PaymentPaid:
			sum.TotalCollection += v.Amount
		case queue.PaymentPending:
			sum.PendingPayments += v.Amount
		}
	}

	sum.PendingFollowups = len(s.pendingFollowupsLocked())
	return sum
}

// ======================================================
// WhatsApp log
// ======================================================

// AppendWhatsAppLog records a stubbed outbound message. Missing id, status
// and timestamp are filled in.
func (s *Store) AppendWhatsAppLog(entry models.WhatsAppLog) models.WhatsAppLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = newID("wa")
	}
	if entry.Status == "" {
		entry.Status = models.WhatsAppStatusSent
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	s.whatsappLogs = append(s.whatsappLogs, entry)
	return entry
}

func (s *Store) WhatsAppLogs() []models.WhatsAppLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.WhatsAppLog, len(s.whatsappLogs))
	copy(out, s.whatsappLogs)
	return out
}
