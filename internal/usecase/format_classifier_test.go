package usecase

import (
	"testing"

	"github.com/robridge/scanner/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify_NumericBarcodes(t *testing.T) {
	classifier := NewFormatClassifier()

	tests := []struct {
		name          string
		raw           string
		wantLength    int
		wantSymbology string
	}{
		{"EAN-8", "12345678", 8, SymbologyEAN8},
		{"UPC-A", "036000291452", 12, SymbologyUPCA},
		{"EAN-13", "8901030978456", 13, SymbologyEAN13},
		{"nine digits", "123456789", 9, SymbologyStandard},
		{"fourteen digits", "12345678901234", 14, SymbologyStandard},
		{"surrounding whitespace trimmed", "  8901030978456  ", 13, SymbologyEAN13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.raw)

			assert.Equal(t, domain.KindNumericBarcode, got.Kind)
			assert.Equal(t, tt.wantLength, got.Length)
			assert.Equal(t, tt.wantSymbology, got.Symbology)
			assert.Len(t, got.Digits, tt.wantLength)
		})
	}
}

func TestClassify_URLCodes(t *testing.T) {
	classifier := NewFormatClassifier()

	tests := []struct {
		name       string
		raw        string
		wantDomain string
	}{
		{"https URL", "https://github.com/foo/bar", "github.com"},
		{"http URL", "http://example.com/page", "example.com"},
		{"www prefix without scheme", "www.example.com", "www.example.com"},
		{"bare scheme and host", "https://example.com", "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.raw)

			assert.Equal(t, domain.KindURLCode, got.Kind)
			assert.Equal(t, tt.wantDomain, got.Domain)
		})
	}
}

func TestClassify_Unknown(t *testing.T) {
	classifier := NewFormatClassifier()

	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"free text", "not-a-barcode!!"},
		{"seven digits too short", "1234567"},
		{"fifteen digits too long", "123456789012345"},
		{"digits with letters", "12345678a"},
		{"digits with internal space", "1234 5678"},
		{"uppercase scheme not recognized", "HTTPS://example.com"},
		{"ftp scheme", "ftp://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.raw)

			assert.Equal(t, domain.KindUnknown, got.Kind)
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/foo/bar", "github.com"},
		{"http://example.com", "example.com"},
		{"www.example.com", "www.example.com"},
		{"https://world.openfoodfacts.org/product/123", "world.openfoodfacts.org"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDomain(tt.url))
		})
	}
}
