package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
	"shop_backend/pkg/mailer"
	"shop_backend/pkg/razorpay"
)

type PaymentService interface {
	// CreateIntent opens a payment intent with the processor and records a
	// PENDING payment for the order. At most one payment per order.
	CreateIntent(principal models.Principal, orderID uint) (*models.Payment, error)
	// Verify resolves a PENDING payment by checking the processor's callback
	// signature. The transition is terminal: verifying an already resolved
	// payment returns its current state and sends nothing.
	Verify(principal models.Principal, razorpayOrderID, razorpayPaymentID, signature string) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo      repository.PaymentRepository
	orderRepo        repository.OrderRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	gateway          razorpay.Gateway
	mail             mailer.Mailer
	log              *zap.Logger
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	gateway razorpay.Gateway,
	mail mailer.Mailer,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		paymentRepo:      paymentRepo,
		orderRepo:        orderRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		gateway:          gateway,
		mail:             mail,
		log:              log,
	}
}

func (s *paymentService) CreateIntent(principal models.Principal, orderID uint) (*models.Payment, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apperrors.FromDB(err, "Order not found.")
	}
	if order.UserID != principal.UserID {
		return nil, apperrors.NotFound("Order not found.")
	}
	if !order.FinalPrice.IsPositive() {
		return nil, apperrors.Validation("Invalid order amount.")
	}

	if _, err := s.paymentRepo.GetByOrderID(order.ID); err == nil {
		return nil, apperrors.BusinessRule("A payment already exists for this order.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.FromDB(err, "")
	}

	amountPaise := order.FinalPrice.Mul(decimal.NewFromInt(100)).IntPart()
	razorpayOrderID, err := s.gateway.CreateOrder(amountPaise, "INR", order.OrderNumber)
	if err != nil {
		return nil, apperrors.External("Payment processor unavailable.", err)
	}

	payment := &models.Payment{
		OrderID:         order.ID,
		UserID:          principal.UserID,
		RazorpayOrderID: razorpayOrderID,
		Amount:          order.FinalPrice,
		Status:          string(models.PaymentPending),
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	return payment, nil
}

func (s *paymentService) Verify(principal models.Principal, razorpayOrderID, razorpayPaymentID, signature string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByRazorpayOrderID(razorpayOrderID)
	if err != nil {
		return nil, apperrors.FromDB(err, "Payment not found.")
	}
	if payment.UserID != principal.UserID {
		return nil, apperrors.NotFound("Payment not found.")
	}

	// Terminal states are immutable; re-verification must not re-notify.
	if payment.Resolved() {
		return payment, nil
	}

	if !s.gateway.VerifySignature(razorpayOrderID, razorpayPaymentID, signature) {
		payment.Status = string(models.PaymentFailed)
		if err := s.paymentRepo.Update(payment); err != nil {
			return nil, apperrors.FromDB(err, "")
		}
		return payment, apperrors.New(http.StatusBadRequest, "Payment verification failed!", nil)
	}

	payment.RazorpayPaymentID = razorpayPaymentID
	payment.RazorpaySignature = signature
	payment.Status = string(models.PaymentSuccess)
	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, apperrors.FromDB(err, "")
	}

	s.notifyConfirmation(payment)
	return payment, nil
}

// notifyConfirmation records an order-confirmation notification and emails
// the buyer. Delivery failures are logged, not surfaced: the payment is
// already resolved.
func (s *paymentService) notifyConfirmation(payment *models.Payment) {
	notification := &models.Notification{
		UserID:  payment.UserID,
		Title:   "Payment Successful - Order Confirmation",
		Message: fmt.Sprintf("Your payment of %s was successful. Order: %s", payment.Amount.StringFixed(2), payment.Order.OrderNumber),
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		s.log.Error("failed to create confirmation notification", zap.Error(err), zap.Uint("payment_id", payment.ID))
	}

	user, err := s.userRepo.GetByID(payment.UserID)
	if err != nil {
		s.log.Error("failed to load user for confirmation email", zap.Error(err), zap.Uint("user_id", payment.UserID))
		return
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYour payment of %s was successful.\nOrder ID: %s\n\nThank you for shopping with us!",
		user.Username, payment.Amount.StringFixed(2), payment.Order.OrderNumber)
	if err := s.mail.Send(user.Email, "Payment Successful - Order Confirmation", body); err != nil {
		s.log.Error("failed to send confirmation email", zap.Error(err), zap.String("email", user.Email))
	}
}
