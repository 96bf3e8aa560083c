package repository

import (
	"shop_backend/internal/models"

	"gorm.io/gorm"
)

type ReferralRepository interface {
	Create(referral *models.Referral) error
	GetByReferrer(referrerID uint) ([]models.Referral, error)
	GetByCode(code string) (*models.Referral, error)
	// Claim marks an unclaimed code as used by userID and credits the reward
	// in one conditional update. Returns the number of rows changed: zero
	// means the code was unknown or already claimed.
	Claim(code string, userID uint, points int) (int64, error)
}

type referralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) ReferralRepository {
	return &referralRepository{db: db}
}

func (r *referralRepository) Create(referral *models.Referral) error {
	return r.db.Create(referral).Error
}

func (r *referralRepository) GetByReferrer(referrerID uint) ([]models.Referral, error) {
	var referrals []models.Referral
	err := r.db.Where("referrer_id = ?", referrerID).Find(&referrals).Error
	return referrals, err
}

func (r *referralRepository) GetByCode(code string) (*models.Referral, error) {
	var referral models.Referral
	err := r.db.Where("referral_code = ?", code).First(&referral).Error
	if err != nil {
		return nil, err
	}
	return &referral, nil
}

func (r *referralRepository) Claim(code string, userID uint, points int) (int64, error) {
	result := r.db.Model(&models.Referral{}).
		Where("referral_code = ? AND referred_user_id IS NULL", code).
		Updates(map[string]interface{}{
			"referred_user_id": userID,
			"reward_points":    gorm.Expr("reward_points + ?", points),
		})
	return result.RowsAffected, result.Error
}
