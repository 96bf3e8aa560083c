package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type OrderService interface {
	// PlaceOrder snapshots the caller's cart into an immutable order,
	// decrementing inventory and clearing the cart in one transaction.
	PlaceOrder(principal models.Principal, shippingAddress, couponCode string) (*models.Order, error)
	GetOrder(principal models.Principal, id uint) (*models.Order, error)
	ListOrders(principal models.Principal) ([]models.Order, error)
	ListAllOrders() ([]models.Order, error)
	ApplyCoupon(principal models.Principal, orderID uint, couponCode string) (*models.Order, error)
	AdminUpdateStatus(orderID uint, status string) (*models.Order, error)
}

type orderService struct {
	tx            repository.TxManager
	cartRepo      repository.CartRepository
	inventoryRepo repository.InventoryRepository
	orderRepo     repository.OrderRepository
	couponService CouponService
}

func NewOrderService(
	tx repository.TxManager,
	cartRepo repository.CartRepository,
	inventoryRepo repository.InventoryRepository,
	orderRepo repository.OrderRepository,
	couponService CouponService,
) OrderService {
	return &orderService{
		tx:            tx,
		cartRepo:      cartRepo,
		inventoryRepo: inventoryRepo,
		orderRepo:     orderRepo,
		couponService: couponService,
	}
}

// CartTotal sums price x quantity over cart lines with exact decimal
// arithmetic.
func CartTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

func (s *orderService) PlaceOrder(principal models.Principal, shippingAddress, couponCode string) (*models.Order, error) {
	if strings.TrimSpace(shippingAddress) == "" {
		return nil, apperrors.Validation("Shipping address is required.")
	}

	var order *models.Order
	err := s.tx.Transaction(func(tx *gorm.DB) error {
		carts := s.cartRepo.WithTx(tx)
		inventories := s.inventoryRepo.WithTx(tx)
		orders := s.orderRepo.WithTx(tx)

		cartItems, err := carts.GetByUser(principal.UserID)
		if err != nil {
			return apperrors.FromDB(err, "")
		}
		if len(cartItems) == 0 {
			return apperrors.BusinessRule("Cart is empty.")
		}

		totalPrice := CartTotal(cartItems)

		var coupon *models.Coupon
		discountPrice := decimal.Zero
		finalPrice := totalPrice
		if couponCode != "" {
			coupon, discountPrice, finalPrice, err = s.couponService.Evaluate(totalPrice, couponCode)
			if err != nil {
				return err
			}
		}

		// Check every line under a row lock before decrementing any, so a
		// failing line leaves all inventories untouched.
		locked := make([]*models.Inventory, len(cartItems))
		for i, item := range cartItems {
			inventory, err := inventories.GetByProductIDForUpdate(item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.Integrity(fmt.Sprintf("Inventory record not found for %s", item.Product.Name))
				}
				return apperrors.FromDB(err, "")
			}
			if inventory.Stock < item.Quantity {
				return apperrors.BusinessRule(
					fmt.Sprintf("Not enough stock for %s. Available: %d", item.Product.Name, inventory.Stock))
			}
			locked[i] = inventory
		}

		for i, item := range cartItems {
			locked[i].Stock -= item.Quantity
			if err := inventories.Update(locked[i]); err != nil {
				return apperrors.FromDB(err, "")
			}
		}

		orderItems := make([]models.OrderItem, len(cartItems))
		for i, item := range cartItems {
			orderItems[i] = models.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.Product.Name,
				UnitPrice:   item.Product.Price,
				Quantity:    item.Quantity,
			}
		}

		order = &models.Order{
			OrderNumber:     GenerateOrderNumber(),
			UserID:          principal.UserID,
			Items:           orderItems,
			TotalPrice:      totalPrice,
			DiscountPrice:   discountPrice,
			FinalPrice:      finalPrice,
			ShippingAddress: shippingAddress,
			Status:          string(models.OrderPending),
		}
		if coupon != nil {
			order.CouponID = &coupon.ID
		}
		if err := orders.Create(order); err != nil {
			return apperrors.FromDB(err, "")
		}

		if err := carts.DeleteByUser(principal.UserID); err != nil {
			return apperrors.FromDB(err, "")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrder(principal models.Principal, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.FromDB(err, "Order not found.")
	}
	if order.UserID != principal.UserID && !principal.IsAdmin {
		return nil, apperrors.NotFound("Order not found.")
	}
	return order, nil
}

func (s *orderService) ListOrders(principal models.Principal) ([]models.Order, error) {
	return s.orderRepo.GetByUser(principal.UserID)
}

func (s *orderService) ListAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) ApplyCoupon(principal models.Principal, orderID uint, couponCode string) (*models.Order, error) {
	if couponCode == "" {
		return nil, apperrors.Validation("Coupon code is required.")
	}

	order, err := s.GetOrder(principal, orderID)
	if err != nil {
		return nil, err
	}

	coupon, discount, final, err := s.couponService.Evaluate(order.TotalPrice, couponCode)
	if err != nil {
		return nil, err
	}

	order.CouponID = &coupon.ID
	order.DiscountPrice = discount
	order.FinalPrice = final
	if err := s.orderRepo.Update(order); err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	return order, nil
}

func (s *orderService) AdminUpdateStatus(orderID uint, status string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apperrors.FromDB(err, "Order not found.")
	}

	if !models.OrderStatus(order.Status).CanTransition(models.OrderStatus(status)) {
		return nil, apperrors.BusinessRule(
			fmt.Sprintf("Cannot move order from %s to %s.", order.Status, status))
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	return order, nil
}
