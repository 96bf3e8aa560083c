package services

import (
	"fmt"

	"go.uber.org/zap"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type ReturnService interface {
	Create(principal models.Principal, orderID uint, reason string) (*models.ReturnRequest, error)
	List(principal models.Principal) ([]models.ReturnRequest, error)
	// AdminUpdate moves a return request through its restricted status set.
	AdminUpdate(requestID uint, status string) (*models.ReturnRequest, error)
}

type returnService struct {
	returnRepo repository.ReturnRepository
	orderRepo  repository.OrderRepository
	log        *zap.Logger
}

func NewReturnService(returnRepo repository.ReturnRepository, orderRepo repository.OrderRepository, log *zap.Logger) ReturnService {
	return &returnService{returnRepo: returnRepo, orderRepo: orderRepo, log: log}
}

func (s *returnService) Create(principal models.Principal, orderID uint, reason string) (*models.ReturnRequest, error) {
	if reason == "" {
		return nil, apperrors.Validation("Return reason is required.")
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apperrors.FromDB(err, "Order not found.")
	}
	if order.UserID != principal.UserID {
		return nil, apperrors.NotFound("Order not found.")
	}
	if order.Status != string(models.OrderDelivered) {
		return nil, apperrors.BusinessRule("Only delivered orders can be returned.")
	}

	request := &models.ReturnRequest{
		UserID:  principal.UserID,
		OrderID: orderID,
		Reason:  reason,
		Status:  string(models.ReturnPending),
	}
	if err := s.returnRepo.Create(request); err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	return request, nil
}

func (s *returnService) List(principal models.Principal) ([]models.ReturnRequest, error) {
	return s.returnRepo.GetByUser(principal.UserID)
}

func (s *returnService) AdminUpdate(requestID uint, status string) (*models.ReturnRequest, error) {
	switch models.ReturnStatus(status) {
	case models.ReturnApproved, models.ReturnRejected, models.ReturnRefunded:
	default:
		return nil, apperrors.Validation("Invalid status.")
	}

	request, err := s.returnRepo.GetByID(requestID)
	if err != nil {
		return nil, apperrors.FromDB(err, "Return request not found.")
	}

	if !models.ReturnStatus(request.Status).CanTransition(models.ReturnStatus(status)) {
		return nil, apperrors.BusinessRule(
			fmt.Sprintf("Cannot move return request from %s to %s.", request.Status, status))
	}

	request.Status = status
	if err := s.returnRepo.Update(request); err != nil {
		return nil, apperrors.FromDB(err, "")
	}

	// Refunds stay an administrative action: the money moves through the
	// processor dashboard, not an automated reversal call.
	if status == string(models.ReturnRefunded) {
		s.log.Info("return request marked refunded; refund is handled manually",
			zap.Uint("return_request_id", request.ID), zap.Uint("order_id", request.OrderID))
	}
	return request, nil
}
