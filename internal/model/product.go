package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is the central inventory entity. Stock is only ever mutated through
// the inventory adjustment workflow or atomic transaction creation. Deletes
// are soft so historical transactions and logs keep resolving.
type Product struct {
	BaseModel
	Name    string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	SKU     string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Barcode *string `gorm:"type:varchar(64);uniqueIndex" json:"barcode,omitempty"`

	// Prices in integer cents.
	Price int64 `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Cost  int64 `gorm:"not null;default:0" json:"cost" validate:"gte=0"`

	StockQuantity int `gorm:"not null;default:0" json:"stock_quantity"`
	MinStockLevel int `gorm:"not null;default:0" json:"min_stock_level" validate:"gte=0"`

	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category   *Category  `json:"category,omitempty" validate:"-"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier   *Supplier  `json:"supplier,omitempty" validate:"-"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// IsLowStock reports whether the product sits at or below its reorder level.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}
