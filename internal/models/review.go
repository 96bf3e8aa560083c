package models

import (
	"time"
)

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_review_user_product;not null"`
	ProductID uint      `json:"product_id" gorm:"uniqueIndex:idx_review_user_product;not null"`
	Rating    int       `json:"rating" gorm:"default:1"` // 1-5 scale
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
