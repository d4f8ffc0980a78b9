package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
)

// in-memory repository fakes backing the service tests

type fakePatientRepo struct {
	patients map[uuid.UUID]*entity.Patient
	// shared so GetWithHistory can see prescriptions written by the
	// prescription fake
	prescriptions *fakePrescriptionRepo
}

func newFakePatientRepo(prescriptions *fakePrescriptionRepo) *fakePatientRepo {
	return &fakePatientRepo{
		patients:      make(map[uuid.UUID]*entity.Patient),
		prescriptions: prescriptions,
	}
}

func (r *fakePatientRepo) Create(ctx context.Context, patient *entity.Patient) error {
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	copied := *patient
	r.patients[patient.ID] = &copied
	return nil
}

func (r *fakePatientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakePatientRepo) GetWithHistory(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	p, err := r.GetByID(ctx, id)
	if p == nil || err != nil {
		return p, err
	}
	if r.prescriptions != nil {
		p.Prescriptions, _ = r.prescriptions.ListByPatient(ctx, id)
	}
	return p, nil
}

func (r *fakePatientRepo) Update(ctx context.Context, patient *entity.Patient) error {
	copied := *patient
	r.patients[patient.ID] = &copied
	return nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.patients, id)
	return nil
}

func (r *fakePatientRepo) List(ctx context.Context, search string) ([]entity.Patient, error) {
	out := make([]entity.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePatientRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.patients)), nil
}

type fakePrescriptionRepo struct {
	prescriptions map[uuid.UUID]*entity.Prescription
}

func newFakePrescriptionRepo() *fakePrescriptionRepo {
	return &fakePrescriptionRepo{prescriptions: make(map[uuid.UUID]*entity.Prescription)}
}

func (r *fakePrescriptionRepo) Create(ctx context.Context, prescription *entity.Prescription) error {
	if prescription.ID == uuid.Nil {
		prescription.ID = uuid.New()
	}
	prescription.CreatedAt = time.Now()
	copied := *prescription
	r.prescriptions[prescription.ID] = &copied
	return nil
}

func (r *fakePrescriptionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	p, ok := r.prescriptions[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakePrescriptionRepo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.Prescription, error) {
	var out []entity.Prescription
	for _, p := range r.prescriptions {
		if p.PatientID == patientID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *fakePrescriptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.prescriptions, id)
	return nil
}
