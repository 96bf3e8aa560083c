package services

import (
	"errors"

	"gorm.io/gorm"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type CartService interface {
	// AddItem increments the existing (user, product) line or creates one.
	AddItem(principal models.Principal, productID uint, quantity int) (*models.CartItem, error)
	RemoveItem(principal models.Principal, cartItemID uint) error
	ListItems(principal models.Principal) ([]models.CartItem, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

func (s *cartService) AddItem(principal models.Principal, productID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperrors.Validation("Quantity must be at least 1.")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, apperrors.FromDB(err, "Product not found.")
	}

	existing, err := s.cartRepo.GetByUserAndProduct(principal.UserID, productID)
	if err == nil {
		existing.Quantity += quantity
		if err := s.cartRepo.Update(existing); err != nil {
			return nil, apperrors.FromDB(err, "")
		}
		existing.Product = *product
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.FromDB(err, "")
	}

	item := &models.CartItem{
		UserID:    principal.UserID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	item.Product = *product
	return item, nil
}

func (s *cartService) RemoveItem(principal models.Principal, cartItemID uint) error {
	item, err := s.cartRepo.GetByID(cartItemID)
	if err != nil {
		return apperrors.FromDB(err, "Cart item not found.")
	}
	if item.UserID != principal.UserID {
		return apperrors.NotFound("Cart item not found.")
	}
	return s.cartRepo.Delete(cartItemID)
}

func (s *cartService) ListItems(principal models.Principal) ([]models.CartItem, error) {
	return s.cartRepo.GetByUser(principal.UserID)
}
