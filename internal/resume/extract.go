package resume

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText pulls plain text out of an uploaded resume, choosing the
// decoder by file extension. It never returns an error: undecodable content
// yields an empty string and the processor substitutes the default skill
// set, per the service's degrade-don't-fail contract.
func ExtractText(content []byte, filename string) string {
	lower := strings.ToLower(filename)

	switch {
	case strings.HasSuffix(lower, ".pdf"):
		text, err := extractPDF(content)
		if err != nil {
			slog.Warn("pdf extraction failed", "filename", filename, "error", err)
			return ""
		}
		return text
	case strings.HasSuffix(lower, ".docx"):
		text, err := extractDocx(content)
		if err != nil {
			slog.Warn("docx extraction failed", "filename", filename, "error", err)
			return ""
		}
		return text
	default:
		// .doc and anything else: best-effort plain-text decode.
		return string(bytes.ToValidUTF8(content, nil))
	}
}

func extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the document.
			slog.Warn("unreadable pdf page", "page", i, "error", err)
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func extractDocx(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("parsing docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
