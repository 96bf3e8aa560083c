package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	OrderNumber     string          `json:"order_id" gorm:"size:100;unique;not null"`
	UserID          uint            `json:"user_id" gorm:"not null"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	CouponID        *uint           `json:"coupon_id"`
	Coupon          *Coupon         `json:"coupon,omitempty" gorm:"foreignKey:CouponID"`
	DiscountPrice   decimal.Decimal `json:"discount_price" gorm:"type:decimal(10,2);default:0"`
	FinalPrice      decimal.Decimal `json:"final_price" gorm:"type:decimal(10,2);default:0"`
	ShippingAddress string          `json:"shipping_address" gorm:"type:text;not null"`
	Status          string          `json:"status" gorm:"size:10;default:'pending'"` // pending, processing, shipped, delivered
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
)

// statusRank orders the lifecycle. Status only ever moves forward.
var statusRank = map[OrderStatus]int{
	OrderPending:    0,
	OrderProcessing: 1,
	OrderShipped:    2,
	OrderDelivered:  3,
}

// CanTransition reports whether an order may move to the new status.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	from, ok := statusRank[s]
	next, ok2 := statusRank[to]
	return ok && ok2 && next > from
}
