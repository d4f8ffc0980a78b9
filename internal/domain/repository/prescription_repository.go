package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
)

// PrescriptionRepository defines the interface for prescription data operations
type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entity.Prescription) error
	// GetByID returns the prescription, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	// ListByPatient returns the full history for one patient, newest date first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.Prescription, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
