package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
	"github.com/optisys/optisys-api/internal/domain/enum"
	"github.com/optisys/optisys-api/internal/domain/repository"
	"github.com/optisys/optisys-api/pkg/apperror"
)

// AppointmentService handles appointment scheduling operations
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
	}
}

// AppointmentInput represents the fields of an appointment create/update request
type AppointmentInput struct {
	PatientID       uuid.UUID `json:"patient_id"`
	StartsAt        time.Time `json:"starts_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Type            string    `json:"type"`
	Practitioner    string    `json:"practitioner"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
}

func (in *AppointmentInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError
	if in.PatientID == uuid.Nil {
		errs = append(errs, apperror.FieldError{Field: "patient_id", Message: "Patient is required"})
	}
	if in.StartsAt.IsZero() {
		errs = append(errs, apperror.FieldError{Field: "starts_at", Message: "Start time is required"})
	}
	if in.DurationMinutes < 0 {
		errs = append(errs, apperror.FieldError{Field: "duration_minutes", Message: "Duration must not be negative"})
	}
	return errs
}

// Create schedules a new appointment for a patient
func (s *AppointmentService) Create(ctx context.Context, input *AppointmentInput) (*entity.Appointment, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	appointment := &entity.Appointment{
		PatientID:       input.PatientID,
		StartsAt:        input.StartsAt,
		DurationMinutes: input.DurationMinutes,
		Type:            strings.TrimSpace(input.Type),
		Practitioner:    strings.TrimSpace(input.Practitioner),
		Status:          enum.ParseAppointmentStatus(input.Status),
		Notes:           input.Notes,
	}
	if appointment.DurationMinutes == 0 {
		appointment.DurationMinutes = 30
	}
	if appointment.Type == "" {
		appointment.Type = "Visual Exam"
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// GetByID fetches an appointment with its patient
func (s *AppointmentService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	return appointment, nil
}

// Update modifies an existing appointment
func (s *AppointmentService) Update(ctx context.Context, id uuid.UUID, input *AppointmentInput) (*entity.Appointment, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}

	appointment.StartsAt = input.StartsAt
	if input.DurationMinutes > 0 {
		appointment.DurationMinutes = input.DurationMinutes
	}
	if t := strings.TrimSpace(input.Type); t != "" {
		appointment.Type = t
	}
	appointment.Practitioner = strings.TrimSpace(input.Practitioner)
	appointment.Status = enum.ParseAppointmentStatus(input.Status)
	appointment.Notes = input.Notes

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Delete cancels and removes an appointment
func (s *AppointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperror.NewNotFoundError("Appointment")
	}
	return s.appointmentRepo.Delete(ctx, id)
}

// List returns appointments within the optional time window, ordered by start
func (s *AppointmentService) List(ctx context.Context, from, to time.Time) ([]entity.Appointment, error) {
	return s.appointmentRepo.List(ctx, from, to)
}

// ListByPatient returns all appointments for one patient
func (s *AppointmentService) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}
	return s.appointmentRepo.ListByPatient(ctx, patientID)
}
