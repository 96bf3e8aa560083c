package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/services"
)

type OrderHandler struct {
	orderService    services.OrderService
	checkoutService services.CheckoutService
}

func NewOrderHandler(orderService services.OrderService, checkoutService services.CheckoutService) *OrderHandler {
	return &OrderHandler{orderService: orderService, checkoutService: checkoutService}
}

type placeOrderRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
	CouponCode      string `json:"coupon_code"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request: "+err.Error()))
		return
	}

	order, err := h.orderService.PlaceOrder(p, req.ShippingAddress, req.CouponCode)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(p)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(p, id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type applyCouponRequest struct {
	CouponCode string `json:"coupon_code" binding:"required"`
}

func (h *OrderHandler) ApplyCoupon(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req applyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Coupon code is required."))
		return
	}

	order, err := h.orderService.ApplyCoupon(p, id, req.CouponCode)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon applied successfully!", "order_details": order})
}

// Checkout is the non-binding price preview: totals and discount only, no
// inventory or cart mutation.
type checkoutRequest struct {
	CouponCode string `json:"coupon_code"`
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		apperrors.Respond(c, apperrors.Validation("Invalid request: "+err.Error()))
		return
	}

	checkout, err := h.checkoutService.Preview(p, req.CouponCode)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, checkout)
}

func (h *OrderHandler) CheckoutHistory(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	checkouts, err := h.checkoutService.History(p)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, checkouts)
}

func (h *OrderHandler) AdminList(c *gin.Context) {
	orders, err := h.orderService.ListAllOrders()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) AdminUpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Status is required."))
		return
	}

	order, err := h.orderService.AdminUpdateStatus(id, req.Status)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
