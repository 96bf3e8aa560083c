package repository

import (
	"shop_backend/internal/models"

	"gorm.io/gorm"
)

type CartRepository interface {
	Create(item *models.CartItem) error
	GetByID(id uint) (*models.CartItem, error)
	GetByUser(userID uint) ([]models.CartItem, error)
	GetByUserAndProduct(userID, productID uint) (*models.CartItem, error)
	Update(item *models.CartItem) error
	Delete(id uint) error
	DeleteByUser(userID uint) error
	WithTx(tx *gorm.DB) CartRepository
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) WithTx(tx *gorm.DB) CartRepository {
	return &cartRepository{db: tx}
}

func (r *cartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

func (r *cartRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Preload("Product").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) GetByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

func (r *cartRepository) GetByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) Update(item *models.CartItem) error {
	return r.db.Save(item).Error
}

func (r *cartRepository) Delete(id uint) error {
	return r.db.Delete(&models.CartItem{}, id).Error
}

func (r *cartRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
