package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Coupon struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	Code               string          `json:"code" gorm:"size:20;unique;not null"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage" gorm:"type:decimal(5,2);not null"`
	MinOrderAmount     decimal.Decimal `json:"min_order_amount" gorm:"type:decimal(10,2);default:3000"`
	IsActive           bool            `json:"is_active" gorm:"default:true"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
