package services

import (
	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type UserService interface {
	GetUser(id uint) (*models.User, error)
	ListUsers() ([]models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.FromDB(err, "User not found.")
	}
	return user, nil
}

func (s *userService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}
