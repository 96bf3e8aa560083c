package models

import (
	"time"
)

type ReturnRequest struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	OrderID   uint      `json:"order_id" gorm:"not null"`
	Order     Order     `json:"-" gorm:"foreignKey:OrderID"`
	Reason    string    `json:"reason" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"size:20;default:'pending'"` // pending, approved, rejected, refunded
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReturnStatus string

const (
	ReturnPending  ReturnStatus = "pending"
	ReturnApproved ReturnStatus = "approved"
	ReturnRejected ReturnStatus = "rejected"
	ReturnRefunded ReturnStatus = "refunded"
)

// CanTransition restricts return updates: pending may be approved or
// rejected; only an approved return may be refunded.
func (s ReturnStatus) CanTransition(to ReturnStatus) bool {
	switch s {
	case ReturnPending:
		return to == ReturnApproved || to == ReturnRejected
	case ReturnApproved:
		return to == ReturnRefunded
	}
	return false
}
