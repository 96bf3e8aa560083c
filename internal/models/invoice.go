package models

import (
	"time"
)

type Invoice struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OrderID     uint      `json:"order_id" gorm:"uniqueIndex;not null"`
	Order       Order     `json:"-" gorm:"foreignKey:OrderID"`
	PDFPath     string    `json:"pdf_path"`
	GeneratedAt time.Time `json:"generated_at" gorm:"autoCreateTime"`
}
