package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Username     string         `json:"username" gorm:"not null"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PhoneNumber  string         `json:"phone_number" gorm:"size:15"`
	PasswordHash string         `json:"-" gorm:"not null"`
	IsAdmin      bool           `json:"is_admin" gorm:"default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// Principal is the authenticated caller extracted from a bearer token and
// passed explicitly into service calls.
type Principal struct {
	UserID  uint
	Email   string
	IsAdmin bool
}
