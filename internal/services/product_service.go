package services

import (
	"gorm.io/gorm"

	"go.uber.org/zap"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/cache"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type ProductService interface {
	CreateProduct(product *models.Product) error
	GetProduct(id uint) (*models.Product, error)
	ListProducts(category string) ([]models.Product, error)
	UpdateProduct(product *models.Product) error
	DeleteProduct(id uint) error
}

type productService struct {
	tx            repository.TxManager
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	cache         *cache.Client
	log           *zap.Logger
}

func NewProductService(
	tx repository.TxManager,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	cacheClient *cache.Client,
	log *zap.Logger,
) ProductService {
	return &productService{
		tx:            tx,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		cache:         cacheClient,
		log:           log,
	}
}

// CreateProduct stores the product and its inventory counter together. The
// unique product_id index guarantees a second inventory row is never created.
func (s *productService) CreateProduct(product *models.Product) error {
	if product.Name == "" {
		return apperrors.Validation("Product name is required.")
	}
	if product.Price.IsNegative() {
		return apperrors.Validation("Price must not be negative.")
	}
	if product.Stock < 0 {
		return apperrors.Validation("Stock must not be negative.")
	}
	if product.Category == "" {
		product.Category = string(models.CategoryUnisex)
	}
	if !models.ValidCategory(product.Category) {
		return apperrors.Validation("Category must be one of men, women, kids, unisex.")
	}

	return s.tx.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.WithTx(tx).Create(product); err != nil {
			return apperrors.FromDB(err, "")
		}
		inventory := &models.Inventory{
			ProductID: product.ID,
			Stock:     product.Stock,
		}
		if err := s.inventoryRepo.WithTx(tx).Create(inventory); err != nil {
			return apperrors.FromDB(err, "")
		}
		return nil
	})
}

func (s *productService) GetProduct(id uint) (*models.Product, error) {
	if s.cache != nil {
		if product, err := s.cache.GetProduct(id); err == nil {
			return product, nil
		}
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.FromDB(err, "Product not found.")
	}

	if s.cache != nil {
		if err := s.cache.SetProduct(product); err != nil {
			s.log.Warn("failed to cache product", zap.Error(err), zap.Uint("product_id", id))
		}
	}
	return product, nil
}

func (s *productService) ListProducts(category string) ([]models.Product, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, apperrors.Validation("Category must be one of men, women, kids, unisex.")
	}
	return s.productRepo.GetAll(category)
}

func (s *productService) UpdateProduct(product *models.Product) error {
	if product.Price.IsNegative() {
		return apperrors.Validation("Price must not be negative.")
	}
	if err := s.productRepo.Update(product); err != nil {
		return apperrors.FromDB(err, "")
	}
	s.invalidate(product.ID)
	return nil
}

func (s *productService) DeleteProduct(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		return apperrors.FromDB(err, "")
	}
	s.invalidate(id)
	return nil
}

func (s *productService) invalidate(id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProduct(id); err != nil {
		s.log.Warn("failed to invalidate product cache", zap.Error(err), zap.Uint("product_id", id))
	}
}
