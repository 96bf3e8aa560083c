package services

import (
	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type ReviewService interface {
	Create(principal models.Principal, productID uint, rating int, comment string) (*models.Review, error)
	Update(principal models.Principal, reviewID uint, rating int, comment string) (*models.Review, error)
	Delete(principal models.Principal, reviewID uint) error
	ListByProduct(productID uint) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func (s *reviewService) Create(principal models.Principal, productID uint, rating int, comment string) (*models.Review, error) {
	if !validRating(rating) {
		return nil, apperrors.Validation("Rating must be between 1 and 5.")
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, apperrors.FromDB(err, "Product not found.")
	}

	review := &models.Review{
		UserID:    principal.UserID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		// unique (user, product): one review per user per product
		return nil, apperrors.BusinessRule("You have already reviewed this product.")
	}
	return review, nil
}

func (s *reviewService) Update(principal models.Principal, reviewID uint, rating int, comment string) (*models.Review, error) {
	if !validRating(rating) {
		return nil, apperrors.Validation("Rating must be between 1 and 5.")
	}

	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, apperrors.FromDB(err, "Review not found.")
	}
	if review.UserID != principal.UserID {
		return nil, apperrors.Forbidden("You can only edit your own review.")
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	return review, nil
}

func (s *reviewService) Delete(principal models.Principal, reviewID uint) error {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return apperrors.FromDB(err, "Review not found.")
	}
	if review.UserID != principal.UserID && !principal.IsAdmin {
		return apperrors.Forbidden("You can only delete your own review.")
	}
	return s.reviewRepo.Delete(reviewID)
}

func (s *reviewService) ListByProduct(productID uint) ([]models.Review, error) {
	return s.reviewRepo.GetByProduct(productID)
}
