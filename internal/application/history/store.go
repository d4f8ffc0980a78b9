// Package history keeps the in-memory, per-patient prescription history that
// backs detail views. Mutations are applied only from confirmed persistence
// results, never optimistically, so an aborted write can leave no trace here.
package history

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
)

// Store holds prescription histories keyed by patient, plus a shadow view of
// the currently selected patient. Both are kept in arrival order; display
// order (newest date first) is derived at read time so out-of-order arrivals
// need no re-sorting on write.
type Store struct {
	mu       sync.RWMutex
	patients map[uuid.UUID][]entity.Prescription
	selected *selection
}

type selection struct {
	patientID uuid.UUID
	history   []entity.Prescription
}

// NewStore creates an empty history store.
func NewStore() *Store {
	return &Store{patients: make(map[uuid.UUID][]entity.Prescription)}
}

// Load replaces a patient's cached history with a confirmed fetch result.
func (s *Store) Load(patientID uuid.UUID, prescriptions []entity.Prescription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.patients[patientID] = append([]entity.Prescription(nil), prescriptions...)
	s.syncSelection(patientID)
}

// Append adds a confirmed prescription to its patient's history. The shadow
// selection is updated in the same critical section so the two views cannot
// diverge.
func (s *Store) Append(p entity.Prescription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.patients[p.PatientID] = append(s.patients[p.PatientID], p)
	s.syncSelection(p.PatientID)
}

// Remove filters a prescription out of its patient's history by identity.
func (s *Store) Remove(patientID, prescriptionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.patients[patientID]
	kept := list[:0]
	for _, p := range list {
		if p.ID != prescriptionID {
			kept = append(kept, p)
		}
	}
	s.patients[patientID] = kept
	s.syncSelection(patientID)
}

// Forget drops a patient's cached history entirely (e.g. patient deleted).
func (s *Store) Forget(patientID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.patients, patientID)
	if s.selected != nil && s.selected.patientID == patientID {
		s.selected = nil
	}
}

// History returns the patient's prescriptions ordered newest date first.
// Entries sharing a date keep their arrival order.
func (s *Store) History(patientID uuid.UUID) []entity.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByDateDesc(s.patients[patientID])
}

// Select marks a patient as the currently viewed one and snapshots its
// history as the shadow view.
func (s *Store) Select(patientID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = &selection{
		patientID: patientID,
		history:   append([]entity.Prescription(nil), s.patients[patientID]...),
	}
}

// Selected returns the shadow view (newest date first) and whether a
// selection exists.
func (s *Store) Selected() (uuid.UUID, []entity.Prescription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return uuid.Nil, nil, false
	}
	return s.selected.patientID, sortedByDateDesc(s.selected.history), true
}

// ClearSelection drops the shadow view.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// syncSelection re-snapshots the shadow view from the canonical list.
// Callers must hold the write lock.
func (s *Store) syncSelection(patientID uuid.UUID) {
	if s.selected == nil || s.selected.patientID != patientID {
		return
	}
	s.selected.history = append([]entity.Prescription(nil), s.patients[patientID]...)
}

func sortedByDateDesc(list []entity.Prescription) []entity.Prescription {
	out := append([]entity.Prescription(nil), list...)
	// ISO dates compare correctly as strings
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
