package clinic

import (
	"time"

	"github.com/dentaldesk/clinic-queue/internal/domain/queue"
	"github.com/dentaldesk/clinic-queue/internal/models"
)

// Seed loads the demo dataset: two doctors, a handful of returning patients,
// today's queue mid-session and some visit history with follow-ups due.
// It replaces whatever the store holds.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := func(value string) time.Time {
		t, _ := time.Parse(time.DateOnly, value)
		return t
	}

	s.doctors = []models.Doctor{
		{ID: "doc-1", Name: "Dr. Rahul Sharma", Code: "A", Email: "rahul@clinic.com", CreatedAt: day("2024-01-01")},
		{ID: "doc-2", Name: "Dr. Priya Sharma", Code: "B", Email: "priya@clinic.com", CreatedAt: day("2024-01-01")},
	}

	age := func(n int) *int { return &n }

	s.patients = []models.Patient{
		{ID: "pat-1", Name: "Amit Kumar", Phone: "9876543210", Age: age(35), NoShowCount: 0, CreatedAt: day("2024-01-15")},
		{ID: "pat-2", Name: "Sunita Devi", Phone: "9876543211", Age: age(28), NoShowCount: 2, CreatedAt: day("2024-02-10")},
		{ID: "pat-3", Name: "Rajesh Gupta", Phone: "9876543212", Age: age(45), NoShowCount: 0, CreatedAt: day("2024-03-05")},
		{ID: "pat-4", Name: "Meera Singh", Phone: "9876543213", Age: age(32), NoShowCount: 1, CreatedAt: day("2024-03-20")},
	}

	today := s.today()
	now := s.now()

	patientSnap := func(i int) *models.Patient { p := s.patients[i]; return &p }
	doctorSnap := func(i int) *models.Doctor { d := s.doctors[i]; return &d }

	s.appointments = []models.Appointment{
		{
			ID: "apt-1", PatientID: "pat-1", DoctorID: "doc-1",
			Date: today, Slot: "Morning", TokenNumber: "A-001",
			Status: string(queue.StatusDone), Complaint: "Tooth pain",
			CreatedAt: now, Patient: patientSnap(0), Doctor: doctorSnap(0),
		},
		{
			ID: "apt-2", PatientID: "pat-2", DoctorID: "doc-1",
			Date: today, Slot: "Morning", TokenNumber: "A-002",
			Status: string(queue.StatusInProgress), Complaint: "Cavity filling",
			CreatedAt: now, Patient: patientSnap(1), Doctor: doctorSnap(0),
		},
		{
			ID: "apt-3", PatientID: "pat-3", DoctorID: "doc-1",
			Date: today, Slot: "Morning", TokenNumber: "A-003",
			Status: string(queue.StatusBooked), Complaint: "Cleaning",
			CreatedAt: now, Patient: patientSnap(2), Doctor: doctorSnap(0),
		},
		{
			ID: "apt-4", PatientID: "pat-4", DoctorID: "doc-2",
			Date: today, Slot: "Morning", TokenNumber: "B-001",
			Status: string(queue.StatusCalled), Complaint: "Root canal",
			CreatedAt: now, Patient: patientSnap(3), Doctor: doctorSnap(1),
		},
	}

	s.visits = []models.Visit{
		{
			ID: "vis-1", PatientID: "pat-1", DoctorID: "doc-1",
			VisitDate:      "2024-12-15",
			ChiefComplaint: "Tooth pain - upper right molar",
			Diagnosis:      "Dental caries",
			TreatmentNotes: "Cavity filling done",
			PrescriptionText: "Ibuprofen 400mg - 1 tab twice daily for 3 days",
			FollowupDate:   "2025-01-20",
			Amount:         1500, PaymentStatus: string(queue.PaymentPaid),
			CreatedAt: day("2024-12-15"),
		},
		{
			ID: "vis-2", PatientID: "pat-2", DoctorID: "doc-1",
			VisitDate:      "2024-12-20",
			ChiefComplaint: "Gum bleeding",
			Diagnosis:      "Gingivitis",
			TreatmentNotes: "Scaling and polishing",
			PrescriptionText: "Chlorhexidine mouthwash",
			FollowupDate:   "2025-01-10",
			Amount:         2000, PaymentStatus: string(queue.PaymentPending),
			CreatedAt: day("2024-12-20"),
		},
	}

	s.queueStates = []models.QueueState{
		{DoctorID: "doc-1", Date: today, CurrentToken: "A-002", UpdatedAt: now},
		{DoctorID: "doc-2", Date: today, CurrentToken: "B-001", UpdatedAt: now},
	}

	s.whatsappLogs = nil
	s.currentDoctorID = ""
}
