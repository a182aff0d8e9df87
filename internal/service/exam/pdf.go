package exam

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor turns PDF bytes into plain text plus a page count.
type TextExtractor interface {
	Extract(data []byte) (text string, pages int, err error)
}

// PDFTextExtractor implements TextExtractor on the ledongthuc/pdf reader.
type PDFTextExtractor struct{}

// Extract decodes the document and concatenates the plain text of every page.
func (PDFTextExtractor) Extract(data []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("read pdf: %w", err)
	}

	pages := reader.NumPage()
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", 0, fmt.Errorf("extract text from page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), pages, nil
}
