package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/services"
)

type InvoiceHandler struct {
	invoiceService services.InvoiceService
}

func NewInvoiceHandler(invoiceService services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) Generate(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.Generate(p, orderID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Invoice generated successfully!",
		"invoice_url": invoice.PDFPath,
	})
}

func (h *InvoiceHandler) Download(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	path, err := h.invoiceService.Download(p, orderID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.FileAttachment(path, fmt.Sprintf("invoice_%d.pdf", orderID))
}

func (h *InvoiceHandler) SendEmail(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.invoiceService.SendEmail(p, orderID); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice sent to your email."})
}
