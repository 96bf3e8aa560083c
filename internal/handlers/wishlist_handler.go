package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/services"
)

type WishlistHandler struct {
	wishlistService services.WishlistService
}

func NewWishlistHandler(wishlistService services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

type addWishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

func (h *WishlistHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	items, err := h.wishlistService.List(p)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *WishlistHandler) Add(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req addWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request: "+err.Error()))
		return
	}

	item, err := h.wishlistService.Add(p, req.ProductID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.wishlistService.Remove(p, id); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Wishlist item removed."})
}
