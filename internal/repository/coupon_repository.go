package repository

import (
	"shop_backend/internal/models"

	"gorm.io/gorm"
)

type CouponRepository interface {
	Create(coupon *models.Coupon) error
	GetByID(id uint) (*models.Coupon, error)
	GetActiveByCode(code string) (*models.Coupon, error)
	GetAll() ([]models.Coupon, error)
	Update(coupon *models.Coupon) error
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(coupon *models.Coupon) error {
	return r.db.Create(coupon).Error
}

func (r *couponRepository) GetByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.First(&coupon, id).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) GetActiveByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.Where("code = ? AND is_active = ?", code, true).First(&coupon).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) GetAll() ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := r.db.Find(&coupons).Error
	return coupons, err
}

func (r *couponRepository) Update(coupon *models.Coupon) error {
	return r.db.Save(coupon).Error
}
