package services

import (
	"errors"

	"gorm.io/gorm"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type WishlistService interface {
	Add(principal models.Principal, productID uint) (*models.Wishlist, error)
	Remove(principal models.Principal, wishlistID uint) error
	List(principal models.Principal) ([]models.Wishlist, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistService{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

func (s *wishlistService) Add(principal models.Principal, productID uint) (*models.Wishlist, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, apperrors.FromDB(err, "Product not found.")
	}

	if _, err := s.wishlistRepo.GetByUserAndProduct(principal.UserID, productID); err == nil {
		return nil, apperrors.BusinessRule("Product is already in your wishlist.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.FromDB(err, "")
	}

	item := &models.Wishlist{
		UserID:    principal.UserID,
		ProductID: productID,
	}
	if err := s.wishlistRepo.Create(item); err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	return item, nil
}

func (s *wishlistService) Remove(principal models.Principal, wishlistID uint) error {
	item, err := s.wishlistRepo.GetByID(wishlistID)
	if err != nil {
		return apperrors.FromDB(err, "Wishlist item not found.")
	}
	if item.UserID != principal.UserID {
		return apperrors.NotFound("Wishlist item not found.")
	}
	return s.wishlistRepo.Delete(wishlistID)
}

func (s *wishlistService) List(principal models.Principal) ([]models.Wishlist, error) {
	return s.wishlistRepo.GetByUser(principal.UserID)
}
