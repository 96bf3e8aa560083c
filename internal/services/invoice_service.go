package services

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
	"shop_backend/pkg/mailer"
	"shop_backend/pkg/pdfgen"
)

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Invoice {{.Order.OrderNumber}}</title></head>
<body>
  <h1>Invoice</h1>
  <p>Order: {{.Order.OrderNumber}}</p>
  <p>Shipping address: {{.Order.ShippingAddress}}</p>
  <table border="1" cellpadding="4" cellspacing="0">
    <tr><th>Product</th><th>Unit price</th><th>Quantity</th><th>Total</th></tr>
    {{range .Order.Items}}
    <tr>
      <td>{{.ProductName}}</td>
      <td>{{.UnitPrice.StringFixed 2}}</td>
      <td>{{.Quantity}}</td>
      <td>{{.LineTotal.StringFixed 2}}</td>
    </tr>
    {{end}}
  </table>
  <p>Total: {{.Order.TotalPrice.StringFixed 2}}</p>
  <p>Discount: {{.Order.DiscountPrice.StringFixed 2}}</p>
  <p><strong>Amount due: {{.Order.FinalPrice.StringFixed 2}}</strong></p>
</body>
</html>`

var invoiceTmpl = template.Must(template.New("invoice").Parse(invoiceTemplate))

type InvoiceService interface {
	// Generate is idempotent: an existing invoice for the order is returned
	// as-is, otherwise the PDF is rendered and a new row persisted.
	Generate(principal models.Principal, orderID uint) (*models.Invoice, error)
	// Download returns the invoice's PDF path after an ownership check.
	Download(principal models.Principal, orderID uint) (string, error)
	SendEmail(principal models.Principal, orderID uint) error
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.OrderRepository
	renderer    pdfgen.Renderer
	mail        mailer.Mailer
	invoiceDir  string
}

func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	renderer pdfgen.Renderer,
	mail mailer.Mailer,
	invoiceDir string,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		renderer:    renderer,
		mail:        mail,
		invoiceDir:  invoiceDir,
	}
}

func (s *invoiceService) ownedOrder(principal models.Principal, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, apperrors.FromDB(err, "Order not found.")
	}
	if order.UserID != principal.UserID {
		return nil, apperrors.NotFound("Order not found.")
	}
	return order, nil
}

func (s *invoiceService) Generate(principal models.Principal, orderID uint) (*models.Invoice, error) {
	order, err := s.ownedOrder(principal, orderID)
	if err != nil {
		return nil, err
	}

	if invoice, err := s.invoiceRepo.GetByOrderID(order.ID); err == nil {
		return invoice, nil
	}

	var html bytes.Buffer
	if err := invoiceTmpl.Execute(&html, struct{ Order *models.Order }{order}); err != nil {
		return nil, fmt.Errorf("failed to render invoice template: %w", err)
	}

	pdfPath := filepath.Join(s.invoiceDir, fmt.Sprintf("invoice_%d.pdf", order.ID))
	if err := s.renderer.RenderHTML(html.String(), pdfPath); err != nil {
		return nil, apperrors.External("Failed to generate invoice PDF.", err)
	}

	invoice := &models.Invoice{
		OrderID: order.ID,
		PDFPath: pdfPath,
	}
	if err := s.invoiceRepo.Create(invoice); err != nil {
		return nil, apperrors.FromDB(err, "")
	}
	return invoice, nil
}

func (s *invoiceService) Download(principal models.Principal, orderID uint) (string, error) {
	order, err := s.ownedOrder(principal, orderID)
	if err != nil {
		return "", err
	}

	invoice, err := s.invoiceRepo.GetByOrderID(order.ID)
	if err != nil {
		return "", apperrors.FromDB(err, "Invoice not found.")
	}
	return invoice.PDFPath, nil
}

func (s *invoiceService) SendEmail(principal models.Principal, orderID uint) error {
	order, err := s.ownedOrder(principal, orderID)
	if err != nil {
		return err
	}

	invoice, err := s.invoiceRepo.GetByOrderID(order.ID)
	if err != nil {
		return apperrors.FromDB(err, "Invoice not found.")
	}

	subject := fmt.Sprintf("Invoice for Order %s", order.OrderNumber)
	body := "Please find the attached invoice for your order."
	if err := s.mail.SendWithAttachment(principal.Email, subject, body, invoice.PDFPath); err != nil {
		return apperrors.External("Failed to send invoice email.", err)
	}
	return nil
}
