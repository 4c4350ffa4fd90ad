package clinic

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dentaldesk/clinic-queue/internal/models"
)

// snapshotVersion guards the on-disk layout. Bump it when a collection
// changes shape incompatibly.
const snapshotVersion = 1

// snapshot is the whole-store on-disk form, loaded at process start and
// written back at shutdown.
type snapshot struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`

	Doctors      []models.Doctor      `json:"doctors"`
	Patients     []models.Patient     `json:"patients"`
	Appointments []models.Appointment `json:"appointments"`
	Visits       []models.Visit       `json:"visits"`
	QueueStates  []models.QueueState  `json:"queue_states"`
	WhatsAppLogs []models.WhatsAppLog `json:"whatsapp_logs"`
}

// Open builds a store from the snapshot at path. When the file does not
// exist yet, it returns a fresh store, seeded with the demo dataset if seed
// is set.
func Open(path string, seed bool, opts ...Option) (*Store, error) {
	s := New(opts...)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if seed {
			s.Seed()
		}
		s.log.Info().Str("path", path).Bool("seeded", seed).Msg("no snapshot, starting fresh")
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d not supported", snap.Version)
	}

	s.mu.Lock()
	s.doctors = snap.Doctors
	s.patients = snap.Patients
	s.appointments = snap.Appointments
	s.visits = snap.Visits
	s.queueStates = snap.QueueStates
	s.whatsappLogs = snap.WhatsAppLogs
	s.mu.Unlock()

	s.log.Info().
		Str("path", path).
		Int("patients", len(snap.Patients)).
		Int("appointments", len(snap.Appointments)).
		Msg("snapshot loaded")

	return s, nil
}

// Save writes the whole store to path. The write goes through a temp file
// and a rename so a crash mid-write cannot corrupt the previous snapshot.
func (s *Store) Save(path string) error {
	s.mu.RLock()
	snap := snapshot{
		Version:      snapshotVersion,
		SavedAt:      s.now(),
		Doctors:      s.doctors,
		Patients:     s.patients,
		Appointments: s.appointments,
		Visits:       s.visits,
		QueueStates:  s.queueStates,
		WhatsAppLogs: s.whatsappLogs,
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".clinic-snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}

	s.log.Info().Str("path", path).Msg("snapshot saved")
	return nil
}
