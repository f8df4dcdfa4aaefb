package docs

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// readPDF extracts plain text from a PDF file page by page. The file is
// first read through pdfcpu in relaxed validation mode to reject files that
// are not structurally PDFs; text extraction then uses ledongthuc/pdf.
// Pages that fail to extract are skipped.
func (s *Service) readPDF(path string) (string, error) {
	if err := validatePDFContext(path); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %v", ErrDecodeFailure, err)
	}
	defer f.Close()

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails
			continue
		}

		builder.WriteString(content)
		if pageNum < reader.NumPage() {
			builder.WriteString("\n")
		}
	}

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text content could be extracted from PDF", ErrDecodeFailure)
	}

	return text, nil
}

// validatePDFContext reads the PDF cross-reference structure in relaxed
// validation mode, catching corrupt files before text extraction.
func validatePDFContext(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open PDF for validation: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if _, err := api.ReadContext(f, conf); err != nil {
		return fmt.Errorf("PDF validation failed: %w", err)
	}

	return nil
}
