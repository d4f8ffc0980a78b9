package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	// GetByID returns the appointment with its patient preloaded, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns appointments ordered by start time. Zero bounds mean unbounded.
	List(ctx context.Context, from, to time.Time) ([]entity.Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error)
}
