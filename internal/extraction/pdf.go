package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFSource extracts text from a local PDF file, page by page in order.
type PDFSource struct {
	Path     string
	Filename string
}

// Describe returns the original filename as the source descriptor
func (s *PDFSource) Describe() string {
	return s.Filename
}

// Extract concatenates the text of every page with a blank-line separator.
func (s *PDFSource) Extract(_ context.Context) (string, error) {
	f, reader, err := pdf.Open(s.Path)
	if err != nil {
		return "", &ExtractionError{Message: fmt.Sprintf("failed to open PDF %s", s.Filename), Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Message: fmt.Sprintf("failed to decode page %d of %s", i, s.Filename), Cause: err}
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	return sb.String(), nil
}
