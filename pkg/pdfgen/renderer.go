package pdfgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// Renderer turns an HTML document into a PDF file on disk.
type Renderer interface {
	RenderHTML(html, outputPath string) error
}

type WkhtmltopdfRenderer struct{}

func NewWkhtmltopdfRenderer() *WkhtmltopdfRenderer {
	return &WkhtmltopdfRenderer{}
}

func (r *WkhtmltopdfRenderer) RenderHTML(html, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return fmt.Errorf("failed to initialize pdf generator: %w", err)
	}

	pdfg.AddPage(wkhtmltopdf.NewPageReader(strings.NewReader(html)))

	if err := pdfg.Create(); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	if err := pdfg.WriteFile(outputPath); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
