package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding/charmap"
)

// TextExtractorService turns an uploaded resume file into UTF-8 text.
// Failures and unsupported extensions come back as strings prefixed with
// "Error" instead of Go errors; callers must treat any such string as a
// failed extraction, never as resume content.
type TextExtractorService interface {
	ExtractText(data []byte, fileName string) string
}

type textExtractorService struct{}

func NewTextExtractorService() TextExtractorService {
	return &textExtractorService{}
}

// IsExtractionError reports whether an extraction result is a diagnostic
// rather than document text.
func IsExtractionError(text string) bool {
	return strings.HasPrefix(text, "Error")
}

func (t *textExtractorService) ExtractText(data []byte, fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	case ".txt":
		return extractPlainText(data)
	default:
		return "Error: Unsupported file type. Please upload PDF, DOCX, or TXT files."
	}
}

func extractPDFText(data []byte) string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "Error: Could not extract text from PDF"
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return "Error: Could not extract text from PDF"
	}

	return text
}

func extractDocxText(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Sprintf("Error: Could not extract text from DOCX - %v", err)
	}
	defer doc.Close()

	return strings.TrimSpace(doc.Editable().GetContent())
}

func extractPlainText(data []byte) string {
	if utf8.Valid(data) {
		return strings.TrimSpace(string(data))
	}

	// Latin-1 fallback for legacy exports
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return fmt.Sprintf("Error: Could not decode text file - %v", err)
	}

	return strings.TrimSpace(string(decoded))
}
