package services

import (
	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type NotificationService interface {
	List(principal models.Principal) ([]models.Notification, error)
	MarkRead(principal models.Principal, notificationID uint) (*models.Notification, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) List(principal models.Principal) ([]models.Notification, error) {
	return s.notificationRepo.GetByUser(principal.UserID)
}

func (s *notificationService) MarkRead(principal models.Principal, notificationID uint) (*models.Notification, error) {
	notification, err := s.notificationRepo.GetByID(notificationID)
	if err != nil {
		return nil, apperrors.FromDB(err, "Notification not found.")
	}
	if notification.UserID != principal.UserID {
		return nil, apperrors.Forbidden("You can't mark this notification as read!")
	}

	notification.IsRead = true
	if err := s.notificationRepo.Update(notification); err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	return notification, nil
}
