package models

import (
	"time"
)

// CartItem is a mutable cart line. At most one row per (user, product).
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_cart_user_product;not null"`
	ProductID uint      `json:"product_id" gorm:"uniqueIndex:idx_cart_user_product;not null"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity" gorm:"default:1;not null"`
	AddedAt   time.Time `json:"added_at" gorm:"autoCreateTime"`
}
