// Package pdftext extracts plain text from PDF bytes. It is the fallback
// path for PDF documents when the configured model has no document input.
package pdftext

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/policypulse/policypulse/constants"
)

// ExtractText pulls the text layer out of a PDF. Pages that fail to decode
// are skipped with a warning; the error return is reserved for documents we
// cannot open at all or that yield no text anywhere.
func ExtractText(raw []byte, log *slog.Logger) (string, error) {
	if log == nil {
		log = slog.Default()
	}
	if !constants.IsPDF(raw) {
		return "", fmt.Errorf("pdftext: content is not a PDF")
	}

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("pdftext: open: %w", err)
	}

	var b strings.Builder
	pages := reader.NumPage()
	skipped := 0
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			skipped++
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn("pdftext.page_failed", "page", i, "error", err)
			skipped++
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("pdftext: no extractable text in %d pages", pages)
	}
	if skipped > 0 {
		log.Warn("pdftext.pages_skipped", "skipped", skipped, "pages", pages)
	}
	return out, nil
}
