package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/services"
)

type CouponHandler struct {
	couponService services.CouponService
}

func NewCouponHandler(couponService services.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

type couponRequest struct {
	Code               string          `json:"code" binding:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage" binding:"required"`
	MinOrderAmount     decimal.Decimal `json:"min_order_amount"`
}

func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.couponService.ListCoupons()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, coupons)
}

func (h *CouponHandler) Create(c *gin.Context) {
	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request: "+err.Error()))
		return
	}

	coupon := &models.Coupon{
		Code:               req.Code,
		DiscountPercentage: req.DiscountPercentage,
		MinOrderAmount:     req.MinOrderAmount,
	}
	if err := h.couponService.CreateCoupon(coupon); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

func (h *CouponHandler) Deactivate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.couponService.DeactivateCoupon(id); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deactivated."})
}
