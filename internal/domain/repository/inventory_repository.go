package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
)

// InventoryRepository defines the interface for inventory data operations
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	// GetByID returns the item, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns items matching the search term across name, brand and model.
	List(ctx context.Context, search string) ([]entity.InventoryItem, error)
	// ListLowStock returns items at or below their minimum-stock alert level.
	ListLowStock(ctx context.Context) ([]entity.InventoryItem, error)
}
