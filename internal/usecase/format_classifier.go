package usecase

import (
	"regexp"
	"strings"

	"github.com/robridge/scanner/internal/domain"
)

// Package-level compiled regex patterns for performance
var numericBarcodeRegex = regexp.MustCompile(`^\d{8,14}$`)

// Symbology names derived from digit count alone. Real symbology detection
// would need bar-width decoding; digit length is what the scanner gives us.
const (
	SymbologyEAN8     = "EAN-8"
	SymbologyUPCA     = "UPC-A (Universal Product Code)"
	SymbologyEAN13    = "EAN-13 (European Article Number)"
	SymbologyStandard = "Standard Product Barcode"
)

// FormatClassifier decides the shape of a scanned value: numeric product
// barcode, URL-bearing QR payload, or unknown. Classification is total —
// every input, including the empty string, resolves to exactly one kind.
type FormatClassifier struct{}

// NewFormatClassifier creates a new format classifier
func NewFormatClassifier() *FormatClassifier {
	return &FormatClassifier{}
}

// Classify determines the classification of a raw scanned value
func (c *FormatClassifier) Classify(raw string) domain.Classification {
	code := strings.TrimSpace(raw)

	if numericBarcodeRegex.MatchString(code) {
		return domain.Classification{
			Kind:      domain.KindNumericBarcode,
			Digits:    code,
			Length:    len(code),
			Symbology: symbologyForLength(len(code)),
		}
	}

	// Prefix checks are deliberately case-sensitive; scanners emit the URL
	// exactly as encoded and the deployed firmware relies on this behavior.
	if strings.HasPrefix(code, "http://") ||
		strings.HasPrefix(code, "https://") ||
		strings.HasPrefix(code, "www.") {
		return domain.Classification{
			Kind:   domain.KindURLCode,
			URL:    code,
			Domain: ExtractDomain(code),
		}
	}

	return domain.Classification{
		Kind: domain.KindUnknown,
		Raw:  code,
	}
}

// symbologyForLength maps digit count to the symbology display name
func symbologyForLength(length int) string {
	switch length {
	case 8:
		return SymbologyEAN8
	case 12:
		return SymbologyUPCA
	case 13:
		return SymbologyEAN13
	default:
		return SymbologyStandard
	}
}

// ExtractDomain pulls the domain out of a URL as the third '/'-delimited
// segment (scheme://domain/...). Values without any '/' are treated as a
// bare domain, which covers the "www." form.
func ExtractDomain(url string) string {
	if !strings.Contains(url, "/") {
		return url
	}
	parts := strings.Split(url, "/")
	if len(parts) > 2 {
		return parts[2]
	}
	return url
}
