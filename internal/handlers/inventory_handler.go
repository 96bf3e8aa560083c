package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/services"
)

type InventoryHandler struct {
	inventoryService services.InventoryService
}

func NewInventoryHandler(inventoryService services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

type inventoryResponse struct {
	models.Inventory
	IsLowStock bool `json:"is_low_stock"`
}

func (h *InventoryHandler) List(c *gin.Context) {
	inventories, err := h.inventoryService.List()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	out := make([]inventoryResponse, len(inventories))
	for i, inv := range inventories {
		out[i] = inventoryResponse{Inventory: inv, IsLowStock: inv.IsLowStock()}
	}
	c.JSON(http.StatusOK, out)
}

type updateInventoryRequest struct {
	Stock             int `json:"stock"`
	LowStockThreshold int `json:"low_stock_threshold"`
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request: "+err.Error()))
		return
	}

	inventory, err := h.inventoryService.Update(id, req.Stock, req.LowStockThreshold)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, inventory)
}
