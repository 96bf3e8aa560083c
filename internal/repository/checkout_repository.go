package repository

import (
	"shop_backend/internal/models"

	"gorm.io/gorm"
)

type CheckoutRepository interface {
	Create(checkout *models.Checkout) error
	GetByUser(userID uint) ([]models.Checkout, error)
}

type checkoutRepository struct {
	db *gorm.DB
}

func NewCheckoutRepository(db *gorm.DB) CheckoutRepository {
	return &checkoutRepository{db: db}
}

func (r *checkoutRepository) Create(checkout *models.Checkout) error {
	return r.db.Create(checkout).Error
}

func (r *checkoutRepository) GetByUser(userID uint) ([]models.Checkout, error) {
	var checkouts []models.Checkout
	err := r.db.Preload("Items").Preload("Coupon").
		Where("user_id = ?", userID).Order("created_at DESC").Find(&checkouts).Error
	return checkouts, err
}
