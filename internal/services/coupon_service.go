package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

var oneHundred = decimal.NewFromInt(100)

type CouponService interface {
	CreateCoupon(coupon *models.Coupon) error
	ListCoupons() ([]models.Coupon, error)
	DeactivateCoupon(id uint) error
	// Evaluate applies the coupon to an order total and returns the coupon,
	// the discount and the final price. Pure on the total: the same code and
	// total always yield the same result.
	Evaluate(total decimal.Decimal, code string) (*models.Coupon, decimal.Decimal, decimal.Decimal, error)
}

type couponService struct {
	couponRepo repository.CouponRepository
}

func NewCouponService(couponRepo repository.CouponRepository) CouponService {
	return &couponService{couponRepo: couponRepo}
}

func (s *couponService) CreateCoupon(coupon *models.Coupon) error {
	if coupon.Code == "" {
		return apperrors.Validation("Coupon code is required.")
	}
	if coupon.DiscountPercentage.IsNegative() || coupon.DiscountPercentage.GreaterThan(oneHundred) {
		return apperrors.Validation("Discount percentage must be between 0 and 100.")
	}
	coupon.IsActive = true
	return s.couponRepo.Create(coupon)
}

func (s *couponService) ListCoupons() ([]models.Coupon, error) {
	return s.couponRepo.GetAll()
}

// DeactivateCoupon retires a coupon without deleting the row, so past orders
// keep their reference.
func (s *couponService) DeactivateCoupon(id uint) error {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return apperrors.FromDB(err, "Coupon not found.")
	}
	coupon.IsActive = false
	return s.couponRepo.Update(coupon)
}

func (s *couponService) Evaluate(total decimal.Decimal, code string) (*models.Coupon, decimal.Decimal, decimal.Decimal, error) {
	coupon, err := s.couponRepo.GetActiveByCode(code)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, apperrors.BusinessRule("Invalid or inactive coupon.")
	}

	if total.LessThan(coupon.MinOrderAmount) {
		return nil, decimal.Zero, decimal.Zero, apperrors.BusinessRule(
			fmt.Sprintf("Minimum order amount should be %s to use this coupon.", coupon.MinOrderAmount.StringFixed(2)))
	}

	discount := total.Mul(coupon.DiscountPercentage).Div(oneHundred).Round(2)
	final := total.Sub(discount)
	return coupon, discount, final, nil
}
