package repository

import (
	"shop_backend/internal/models"

	"gorm.io/gorm"
)

type ReturnRepository interface {
	Create(request *models.ReturnRequest) error
	GetByID(id uint) (*models.ReturnRequest, error)
	GetByUser(userID uint) ([]models.ReturnRequest, error)
	Update(request *models.ReturnRequest) error
}

type returnRepository struct {
	db *gorm.DB
}

func NewReturnRepository(db *gorm.DB) ReturnRepository {
	return &returnRepository{db: db}
}

func (r *returnRepository) Create(request *models.ReturnRequest) error {
	return r.db.Create(request).Error
}

func (r *returnRepository) GetByID(id uint) (*models.ReturnRequest, error) {
	var request models.ReturnRequest
	err := r.db.First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *returnRepository) GetByUser(userID uint) ([]models.ReturnRequest, error) {
	var requests []models.ReturnRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *returnRepository) Update(request *models.ReturnRequest) error {
	return r.db.Save(request).Error
}
