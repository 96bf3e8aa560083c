package repository

import (
	"shop_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository interface {
	Create(inventory *models.Inventory) error
	GetByID(id uint) (*models.Inventory, error)
	GetByProductID(productID uint) (*models.Inventory, error)
	// GetByProductIDForUpdate takes a row-level lock on the inventory row so
	// that concurrent check-then-decrement sequences serialize.
	GetByProductIDForUpdate(productID uint) (*models.Inventory, error)
	Update(inventory *models.Inventory) error
	GetAll() ([]models.Inventory, error)
	WithTx(tx *gorm.DB) InventoryRepository
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) WithTx(tx *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: tx}
}

func (r *inventoryRepository) Create(inventory *models.Inventory) error {
	return r.db.Create(inventory).Error
}

func (r *inventoryRepository) GetByID(id uint) (*models.Inventory, error) {
	var inventory models.Inventory
	err := r.db.Preload("Product").First(&inventory, id).Error
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (r *inventoryRepository) GetByProductID(productID uint) (*models.Inventory, error) {
	var inventory models.Inventory
	err := r.db.Where("product_id = ?", productID).First(&inventory).Error
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (r *inventoryRepository) GetByProductIDForUpdate(productID uint) (*models.Inventory, error) {
	var inventory models.Inventory
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ?", productID).First(&inventory).Error
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (r *inventoryRepository) Update(inventory *models.Inventory) error {
	return r.db.Save(inventory).Error
}

func (r *inventoryRepository) GetAll() ([]models.Inventory, error) {
	var inventories []models.Inventory
	err := r.db.Preload("Product").Find(&inventories).Error
	return inventories, err
}
