package models

import (
	"time"
)

type Wishlist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_wishlist_user_product;not null"`
	ProductID uint      `json:"product_id" gorm:"uniqueIndex:idx_wishlist_user_product;not null"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"created_at"`
}
