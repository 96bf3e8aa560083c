package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Checkout is a persisted, non-binding price quote. It never touches
// inventory or the cart.
type Checkout struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"user_id" gorm:"not null"`
	Items         []CheckoutItem  `json:"items" gorm:"foreignKey:CheckoutID"`
	TotalPrice    decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);default:0"`
	CouponID      *uint           `json:"coupon_id"`
	Coupon        *Coupon         `json:"coupon,omitempty" gorm:"foreignKey:CouponID"`
	DiscountPrice decimal.Decimal `json:"discount_price" gorm:"type:decimal(10,2);default:0"`
	FinalPrice    decimal.Decimal `json:"final_price" gorm:"type:decimal(10,2);default:0"`
	CreatedAt     time.Time       `json:"created_at"`
}

type CheckoutItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	CheckoutID uint            `json:"checkout_id" gorm:"not null"`
	ProductID  uint            `json:"product_id" gorm:"not null"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
}
