package services

import (
	"github.com/shopspring/decimal"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

// CheckoutService produces non-binding price quotes: cart total plus coupon
// discount, without touching inventory or the cart.
type CheckoutService interface {
	Preview(principal models.Principal, couponCode string) (*models.Checkout, error)
	History(principal models.Principal) ([]models.Checkout, error)
}

type checkoutService struct {
	cartRepo      repository.CartRepository
	checkoutRepo  repository.CheckoutRepository
	couponService CouponService
}

func NewCheckoutService(
	cartRepo repository.CartRepository,
	checkoutRepo repository.CheckoutRepository,
	couponService CouponService,
) CheckoutService {
	return &checkoutService{
		cartRepo:      cartRepo,
		checkoutRepo:  checkoutRepo,
		couponService: couponService,
	}
}

func (s *checkoutService) Preview(principal models.Principal, couponCode string) (*models.Checkout, error) {
	cartItems, err := s.cartRepo.GetByUser(principal.UserID)
	if err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	if len(cartItems) == 0 {
		return nil, apperrors.BusinessRule("Cart is empty.")
	}

	totalPrice := CartTotal(cartItems)

	var coupon *models.Coupon
	discountPrice := decimal.Zero
	finalPrice := totalPrice
	if couponCode != "" {
		coupon, discountPrice, finalPrice, err = s.couponService.Evaluate(totalPrice, couponCode)
		if err != nil {
			return nil, err
		}
	}

	items := make([]models.CheckoutItem, len(cartItems))
	for i, item := range cartItems {
		items[i] = models.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
		}
	}

	checkout := &models.Checkout{
		UserID:        principal.UserID,
		Items:         items,
		TotalPrice:    totalPrice,
		DiscountPrice: discountPrice,
		FinalPrice:    finalPrice,
	}
	if coupon != nil {
		checkout.CouponID = &coupon.ID
	}
	if err := s.checkoutRepo.Create(checkout); err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	return checkout, nil
}

func (s *checkoutService) History(principal models.Principal) ([]models.Checkout, error) {
	return s.checkoutRepo.GetByUser(principal.UserID)
}
