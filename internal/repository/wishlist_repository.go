package repository

import (
	"shop_backend/internal/models"

	"gorm.io/gorm"
)

type WishlistRepository interface {
	Create(item *models.Wishlist) error
	GetByID(id uint) (*models.Wishlist, error)
	GetByUser(userID uint) ([]models.Wishlist, error)
	GetByUserAndProduct(userID, productID uint) (*models.Wishlist, error)
	Delete(id uint) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Create(item *models.Wishlist) error {
	return r.db.Create(item).Error
}

func (r *wishlistRepository) GetByID(id uint) (*models.Wishlist, error) {
	var item models.Wishlist
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *wishlistRepository) GetByUser(userID uint) ([]models.Wishlist, error) {
	var items []models.Wishlist
	err := r.db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

func (r *wishlistRepository) GetByUserAndProduct(userID, productID uint) (*models.Wishlist, error) {
	var item models.Wishlist
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *wishlistRepository) Delete(id uint) error {
	return r.db.Delete(&models.Wishlist{}, id).Error
}
