package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Category    string          `json:"category" gorm:"size:10;default:'unisex'"` // men, women, kids, unisex
	Image       string          `json:"image"`
	Description string          `json:"description" gorm:"type:text"`
	Stock       int             `json:"stock" gorm:"default:0"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`
}

type ProductCategory string

const (
	CategoryMen    ProductCategory = "men"
	CategoryWomen  ProductCategory = "women"
	CategoryKids   ProductCategory = "kids"
	CategoryUnisex ProductCategory = "unisex"
)

func ValidCategory(category string) bool {
	switch ProductCategory(category) {
	case CategoryMen, CategoryWomen, CategoryKids, CategoryUnisex:
		return true
	}
	return false
}
