package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/services"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type addCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

func (h *CartHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	items, err := h.cartService.ListItems(p)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CartHandler) Add(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request: "+err.Error()))
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.cartService.AddItem(p, req.ProductID, req.Quantity)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) Remove(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.cartService.RemoveItem(p, id); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed."})
}
