package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
	"github.com/optisys/optisys-api/internal/domain/enum"
	"github.com/optisys/optisys-api/internal/domain/repository"
	"github.com/optisys/optisys-api/pkg/apperror"
)

// InventoryService handles stock item operations
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// InventoryItemInput represents the fields of an item create/update request
type InventoryItemInput struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	Color           string  `json:"color"`
	Description     string  `json:"description"`
	Material        string  `json:"material"`
	Supplier        string  `json:"supplier"`
	AcquisitionCost float64 `json:"acquisition_cost"`
	SalePrice       float64 `json:"sale_price"`
	StockCurrent    int     `json:"stock_current"`
	StockMinimum    int     `json:"stock_minimum"`
	Notes           string  `json:"notes"`
}

func (in *InventoryItemInput) validate() []apperror.FieldError {
	var errs []apperror.FieldError
	add := func(field, message string) {
		errs = append(errs, apperror.FieldError{Field: field, Message: message})
	}
	if strings.TrimSpace(in.Name) == "" {
		add("name", "Name is required")
	}
	if in.AcquisitionCost < 0 {
		add("acquisition_cost", "Acquisition cost must not be negative")
	}
	if in.SalePrice < 0 {
		add("sale_price", "Sale price must not be negative")
	}
	if in.StockCurrent < 0 {
		add("stock_current", "Current stock must not be negative")
	}
	if in.StockMinimum < 0 {
		add("stock_minimum", "Minimum stock must not be negative")
	}
	return errs
}

func (in *InventoryItemInput) apply(item *entity.InventoryItem) {
	item.Name = strings.TrimSpace(in.Name)
	item.Type = enum.ParseProductType(in.Type)
	item.Brand = strings.TrimSpace(in.Brand)
	item.Model = strings.TrimSpace(in.Model)
	item.Color = strings.TrimSpace(in.Color)
	item.Description = in.Description
	item.Material = strings.TrimSpace(in.Material)
	item.Supplier = strings.TrimSpace(in.Supplier)
	item.AcquisitionCost = in.AcquisitionCost
	item.SalePrice = in.SalePrice
	item.StockCurrent = in.StockCurrent
	item.StockMinimum = in.StockMinimum
	item.Notes = in.Notes
}

// Create adds a new stock item
func (s *InventoryService) Create(ctx context.Context, input *InventoryItemInput) (*entity.InventoryItem, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	item := &entity.InventoryItem{}
	input.apply(item)

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID fetches one stock item
func (s *InventoryService) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// Update modifies an existing stock item
func (s *InventoryService) Update(ctx context.Context, id uuid.UUID, input *InventoryItemInput) (*entity.InventoryItem, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	input.apply(item)
	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a stock item
func (s *InventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Inventory item")
	}
	return s.inventoryRepo.Delete(ctx, id)
}

// List returns items matching the optional search term
func (s *InventoryService) List(ctx context.Context, search string) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.List(ctx, strings.TrimSpace(search))
}

// ListLowStock returns items at or below their restock alert level
func (s *InventoryService) ListLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.ListLowStock(ctx)
}
