package services

import (
	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type InventoryService interface {
	List() ([]models.Inventory, error)
	Update(inventoryID uint, stock, lowStockThreshold int) (*models.Inventory, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
}

func NewInventoryService(inventoryRepo repository.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func (s *inventoryService) List() ([]models.Inventory, error) {
	return s.inventoryRepo.GetAll()
}

func (s *inventoryService) Update(inventoryID uint, stock, lowStockThreshold int) (*models.Inventory, error) {
	if stock < 0 {
		return nil, apperrors.Validation("Stock must not be negative.")
	}
	if lowStockThreshold < 0 {
		return nil, apperrors.Validation("Low stock threshold must not be negative.")
	}

	inventory, err := s.inventoryRepo.GetByID(inventoryID)
	if err != nil {
		return nil, apperrors.FromDB(err, "Inventory record not found.")
	}

	inventory.Stock = stock
	inventory.LowStockThreshold = lowStockThreshold
	if err := s.inventoryRepo.Update(inventory); err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	return inventory, nil
}
