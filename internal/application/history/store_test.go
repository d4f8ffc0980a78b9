package history

import (
	"testing"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prescription(patientID uuid.UUID, date string) entity.Prescription {
	return entity.Prescription{
		ID:        uuid.New(),
		PatientID: patientID,
		Date:      date,
		Diagnosis: "myopia",
	}
}

func ids(list []entity.Prescription) []uuid.UUID {
	out := make([]uuid.UUID, len(list))
	for i, p := range list {
		out[i] = p.ID
	}
	return out
}

func TestHistoryNewestDateFirst(t *testing.T) {
	s := NewStore()
	patientID := uuid.New()

	older := prescription(patientID, "2025-01-10")
	newest := prescription(patientID, "2025-06-01")
	middle := prescription(patientID, "2025-03-15")

	// out-of-order arrival
	s.Append(older)
	s.Append(newest)
	s.Append(middle)

	h := s.History(patientID)
	require.Len(t, h, 3)
	assert.Equal(t, newest.ID, h[0].ID)
	assert.Equal(t, middle.ID, h[1].ID)
	assert.Equal(t, older.ID, h[2].ID)
}

func TestAppendRemoveIsInverse(t *testing.T) {
	s := NewStore()
	patientID := uuid.New()

	s.Load(patientID, []entity.Prescription{
		prescription(patientID, "2025-02-01"),
		prescription(patientID, "2025-04-01"),
	})
	before := s.History(patientID)

	extra := prescription(patientID, "2025-03-01")
	s.Append(extra)
	require.Len(t, s.History(patientID), 3)

	s.Remove(patientID, extra.ID)
	assert.Equal(t, ids(before), ids(s.History(patientID)))
}

func TestSelectionShadowNeverDiverges(t *testing.T) {
	s := NewStore()
	patientID := uuid.New()

	first := prescription(patientID, "2025-01-01")
	s.Load(patientID, []entity.Prescription{first})
	s.Select(patientID)

	added := prescription(patientID, "2025-05-01")
	s.Append(added)

	selID, shadow, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, patientID, selID)
	assert.Equal(t, ids(s.History(patientID)), ids(shadow))

	s.Remove(patientID, first.ID)
	_, shadow, ok = s.Selected()
	require.True(t, ok)
	assert.Equal(t, ids(s.History(patientID)), ids(shadow))
	require.Len(t, shadow, 1)
	assert.Equal(t, added.ID, shadow[0].ID)
}

func TestMutatingOtherPatientLeavesSelectionAlone(t *testing.T) {
	s := NewStore()
	selectedID := uuid.New()
	otherID := uuid.New()

	kept := prescription(selectedID, "2025-01-01")
	s.Load(selectedID, []entity.Prescription{kept})
	s.Select(selectedID)

	s.Append(prescription(otherID, "2025-06-01"))

	_, shadow, ok := s.Selected()
	require.True(t, ok)
	require.Len(t, shadow, 1)
	assert.Equal(t, kept.ID, shadow[0].ID)
}

func TestForgetDropsSelection(t *testing.T) {
	s := NewStore()
	patientID := uuid.New()

	s.Load(patientID, []entity.Prescription{prescription(patientID, "2025-01-01")})
	s.Select(patientID)
	s.Forget(patientID)

	_, _, ok := s.Selected()
	assert.False(t, ok)
	assert.Empty(t, s.History(patientID))
}
