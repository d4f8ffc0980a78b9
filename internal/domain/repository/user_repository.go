package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
)

// UserRepository defines the interface for operator account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByID returns the user, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
