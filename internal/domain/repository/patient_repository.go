package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
)

// PatientRepository defines the interface for patient data operations
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	// GetByID returns the patient without history, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	// GetWithHistory returns the patient with its prescription history preloaded.
	GetWithHistory(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all patients matching the search term across name, phone and email.
	List(ctx context.Context, search string) ([]entity.Patient, error)
	Count(ctx context.Context) (int64, error)
}
