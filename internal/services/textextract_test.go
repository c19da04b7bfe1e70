package services

import (
	"strings"
	"testing"
)

func TestExtractTextPlainUTF8(t *testing.T) {
	extractor := NewTextExtractorService()

	text := extractor.ExtractText([]byte("  Jane Doe\nBackend Engineer\n"), "resume.txt")
	if text != "Jane Doe\nBackend Engineer" {
		t.Errorf("unexpected text %q", text)
	}
	if IsExtractionError(text) {
		t.Error("valid text flagged as extraction error")
	}
}

func TestExtractTextLatin1Fallback(t *testing.T) {
	extractor := NewTextExtractorService()

	// "Jos\xe9" is latin-1, not valid UTF-8
	text := extractor.ExtractText([]byte{'J', 'o', 's', 0xe9}, "resume.TXT")
	if text != "José" {
		t.Errorf("expected latin-1 decode, got %q", text)
	}
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	extractor := NewTextExtractorService()

	text := extractor.ExtractText([]byte("whatever"), "resume.odt")
	if !IsExtractionError(text) {
		t.Fatalf("expected an Error-prefixed diagnostic, got %q", text)
	}
	if !strings.Contains(text, "Unsupported file type") {
		t.Errorf("unexpected diagnostic %q", text)
	}
}

func TestExtractTextBrokenPDF(t *testing.T) {
	extractor := NewTextExtractorService()

	text := extractor.ExtractText([]byte("not a pdf at all"), "resume.pdf")
	if !IsExtractionError(text) {
		t.Fatalf("expected an Error-prefixed diagnostic, got %q", text)
	}
}

func TestExtractTextBrokenDocx(t *testing.T) {
	extractor := NewTextExtractorService()

	text := extractor.ExtractText([]byte("not a docx"), "resume.docx")
	if !IsExtractionError(text) {
		t.Fatalf("expected an Error-prefixed diagnostic, got %q", text)
	}
}

func TestIsExtractionError(t *testing.T) {
	if !IsExtractionError("Error: Could not extract text from PDF") {
		t.Error("diagnostic not recognized")
	}
	if IsExtractionError("Jane Doe\nBackend Engineer") {
		t.Error("document text misflagged as diagnostic")
	}
}
