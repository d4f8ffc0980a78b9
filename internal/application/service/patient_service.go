package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/application/history"
	"github.com/optisys/optisys-api/internal/domain/entity"
	"github.com/optisys/optisys-api/internal/domain/repository"
	"github.com/optisys/optisys-api/pkg/apperror"
	"github.com/optisys/optisys-api/pkg/dates"
)

// PatientService handles patient record operations
type PatientService struct {
	patientRepo repository.PatientRepository
	history     *history.Store
}

// NewPatientService creates a new patient service
func NewPatientService(patientRepo repository.PatientRepository, historyStore *history.Store) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		history:     historyStore,
	}
}

// PatientInput represents the fields of a patient create/update request.
// Optional pointers distinguish "not sent" from "cleared".
type PatientInput struct {
	FullName          string  `json:"full_name"`
	Phone             *string `json:"phone"`
	Email             *string `json:"email"`
	BirthDate         *string `json:"birth_date"`
	Occupation        *string `json:"occupation"`
	Address           *string `json:"address"`
	MedicalBackground *string `json:"medical_background"`
	Notes             *string `json:"notes"`
}

func (in *PatientInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError
	if strings.TrimSpace(in.FullName) == "" {
		errs = append(errs, apperror.FieldError{Field: "full_name", Message: "Full name is required"})
	}
	if in.BirthDate != nil && strings.TrimSpace(*in.BirthDate) != "" && !dates.IsISO(strings.TrimSpace(*in.BirthDate)) {
		errs = append(errs, apperror.FieldError{Field: "birth_date", Message: "Birth date must be YYYY-MM-DD"})
	}
	return errs
}

// Create registers a new patient
func (s *PatientService) Create(ctx context.Context, input *PatientInput) (*entity.Patient, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	patient := &entity.Patient{
		FullName:          strings.TrimSpace(input.FullName),
		Phone:             input.Phone,
		Email:             input.Email,
		BirthDate:         input.BirthDate,
		Occupation:        input.Occupation,
		Address:           input.Address,
		MedicalBackground: input.MedicalBackground,
		Notes:             input.Notes,
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// GetByID fetches a patient together with their prescription history and
// primes the history cache with the confirmed data.
func (s *PatientService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	patient, err := s.patientRepo.GetWithHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	s.history.Load(patient.ID, patient.Prescriptions)
	s.history.Select(patient.ID)
	patient.Prescriptions = s.history.History(patient.ID)
	return patient, nil
}

// Update modifies an existing patient; only sent fields change
func (s *PatientService) Update(ctx context.Context, id uuid.UUID, input *PatientInput) (*entity.Patient, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	patient.FullName = strings.TrimSpace(input.FullName)
	if input.Phone != nil {
		patient.Phone = input.Phone
	}
	if input.Email != nil {
		patient.Email = input.Email
	}
	if input.BirthDate != nil {
		patient.BirthDate = input.BirthDate
	}
	if input.Occupation != nil {
		patient.Occupation = input.Occupation
	}
	if input.Address != nil {
		patient.Address = input.Address
	}
	if input.MedicalBackground != nil {
		patient.MedicalBackground = input.MedicalBackground
	}
	if input.Notes != nil {
		patient.Notes = input.Notes
	}

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Delete removes a patient and drops their cached history
func (s *PatientService) Delete(ctx context.Context, id uuid.UUID) error {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if patient == nil {
		return apperror.NewNotFoundError("Patient")
	}

	if err := s.patientRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.history.Forget(id)
	return nil
}

// List returns patients matching the optional search term, with the total count
func (s *PatientService) List(ctx context.Context, search string) ([]entity.Patient, int64, error) {
	patients, err := s.patientRepo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, 0, err
	}

	count, err := s.patientRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return patients, count, nil
}
