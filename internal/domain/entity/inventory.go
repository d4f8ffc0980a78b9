package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/enum"
	"gorm.io/gorm"
)

// InventoryItem is a stocked optical good: frames, lenses, solutions and the
// rest of the shop floor.
type InventoryItem struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Name            string           `gorm:"size:255;not null" json:"name"`
	Type            enum.ProductType `gorm:"default:0" json:"type"`
	Brand           string           `gorm:"size:255" json:"brand"`
	Model           string           `gorm:"size:255" json:"model"`
	Color           string           `gorm:"size:100" json:"color"`
	Description     string           `gorm:"type:text" json:"description"`
	Material        string           `gorm:"size:100" json:"material"`
	Supplier        string           `gorm:"size:255" json:"supplier"`
	AcquisitionCost float64          `gorm:"default:0" json:"acquisition_cost"`
	SalePrice       float64          `gorm:"default:0" json:"sale_price"`
	StockCurrent    int              `gorm:"default:0" json:"stock_current"`
	StockMinimum    int              `gorm:"default:0" json:"stock_minimum"`
	Notes           string           `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
}

// LowStock reports whether the item has fallen to its alert threshold.
func (i *InventoryItem) LowStock() bool {
	return i.StockMinimum > 0 && i.StockCurrent <= i.StockMinimum
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}
