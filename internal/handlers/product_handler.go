package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type productRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Query("category"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request: "+err.Error()))
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Size:        req.Size,
		Color:       req.Color,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
		Stock:       req.Stock,
	}
	if err := h.productService.CreateProduct(product); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation("Invalid request: "+err.Error()))
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Size = req.Size
	product.Color = req.Color
	product.Category = req.Category
	product.Image = req.Image
	product.Description = req.Description
	product.Stock = req.Stock
	if err := h.productService.UpdateProduct(product); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted."})
}
