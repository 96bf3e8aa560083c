package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/services"
)

type ReturnHandler struct {
	returnService services.ReturnService
}

func NewReturnHandler(returnService services.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

type createReturnRequest struct {
	OrderID uint   `json:"order_id" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
}

func (h *ReturnHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req createReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request: "+err.Error()))
		return
	}

	request, err := h.returnService.Create(p, req.OrderID, req.Reason)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *ReturnHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	requests, err := h.returnService.List(p)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

type updateReturnRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ReturnHandler) AdminUpdate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Status is required."))
		return
	}

	request, err := h.returnService.AdminUpdate(id, req.Status)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Return request updated to " + request.Status + "."})
}
