package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
	domainRepo "github.com/optisys/optisys-api/internal/domain/repository"
	"gorm.io/gorm"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepository) List(ctx context.Context, search string) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem

	query := r.db.WithContext(ctx).Model(&entity.InventoryItem{})
	if search != "" {
		query = query.Where("name ILIKE ? OR brand ILIKE ? OR model ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	err := query.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepository) ListLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).
		Where("stock_current <= stock_minimum").
		Order("name ASC").
		Find(&items).Error
	return items, err
}
