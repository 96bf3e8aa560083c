package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	OrderID           uint            `json:"order_id" gorm:"uniqueIndex;not null"`
	Order             Order           `json:"-" gorm:"foreignKey:OrderID"`
	UserID            uint            `json:"user_id" gorm:"not null"`
	RazorpayOrderID   string          `json:"razorpay_order_id" gorm:"size:255;unique;not null"`
	RazorpayPaymentID string          `json:"razorpay_payment_id" gorm:"size:255"`
	RazorpaySignature string          `json:"-" gorm:"size:255"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status            string          `json:"status" gorm:"size:20;default:'PENDING'"` // PENDING, SUCCESS, FAILED
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Resolved reports whether the payment reached a terminal state.
func (p *Payment) Resolved() bool {
	return p.Status != string(PaymentPending)
}
