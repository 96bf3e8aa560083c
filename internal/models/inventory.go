package models

import (
	"time"
)

// Inventory is the per-product available-stock counter, one row per product.
type Inventory struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	ProductID         uint      `json:"product_id" gorm:"uniqueIndex;not null"`
	Product           Product   `json:"product" gorm:"foreignKey:ProductID"`
	Stock             int       `json:"stock" gorm:"default:0"`
	LowStockThreshold int       `json:"low_stock_threshold" gorm:"default:5"`
	UpdatedAt         time.Time `json:"last_updated"`
}

func (i *Inventory) IsLowStock() bool {
	return i.Stock <= i.LowStockThreshold
}
