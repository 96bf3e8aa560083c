package models

import (
	"github.com/shopspring/decimal"
)

// OrderItem is a cart line frozen at order placement. Later cart or catalog
// changes never alter it.
type OrderItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OrderID     uint            `json:"-" gorm:"not null;index"`
	ProductID   uint            `json:"product_id" gorm:"not null"`
	ProductName string          `json:"product_name" gorm:"not null"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
}

// LineTotal is unit price times quantity. Value receiver so templates can
// call it on ranged items.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
