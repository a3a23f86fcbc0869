package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/robridge/scanner/internal/domain"
)

// ScanService orchestrates the scan pipeline:
// classify -> (enrich | domain-classify) -> compose -> result.
// Analyze never fails past this boundary; any unexpected error is converted
// to a fixed degraded result so the caller always receives a well-formed
// response the display firmware can render.
type ScanService struct {
	classifier       *FormatClassifier
	enrichment       *EnrichmentService
	domainClassifier *DomainClassifier
	countries        CountryTable
	composer         *Composer
}

// NewScanService creates a scan service with its pipeline dependencies
func NewScanService(
	classifier *FormatClassifier,
	enrichment *EnrichmentService,
	domainClassifier *DomainClassifier,
	countries CountryTable,
	composer *Composer,
) *ScanService {
	return &ScanService{
		classifier:       classifier,
		enrichment:       enrichment,
		domainClassifier: domainClassifier,
		countries:        countries,
		composer:         composer,
	}
}

// Analyze runs the full pipeline for one scanned value. It always returns a
// result with Success=true — failures are represented as degraded content,
// not as an error status (wire compatibility with deployed devices).
func (s *ScanService) Analyze(ctx context.Context, input domain.ScanInput) (result *domain.ScanResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Scan] Panic during analysis of %q: %v", input.RawValue, r)
			result = degradedResult(input)
		}
	}()

	res, err := s.analyze(ctx, input)
	if err != nil {
		log.Printf("[Scan] Analysis error for %q: %v", input.RawValue, err)
		return degradedResult(input)
	}
	return res
}

// analyze is the fallible inner pipeline. Kept separate from Analyze so
// tests can tell a real result from a swallowed failure.
func (s *ScanService) analyze(ctx context.Context, input domain.ScanInput) (*domain.ScanResult, error) {
	classification := s.classifier.Classify(input.RawValue)

	switch classification.Kind {
	case domain.KindNumericBarcode:
		return s.analyzeBarcode(ctx, input, classification), nil
	case domain.KindURLCode:
		return s.analyzeURL(input, classification), nil
	case domain.KindUnknown:
		return s.analyzeUnknown(input, classification), nil
	default:
		return nil, fmt.Errorf("unhandled classification kind %d", classification.Kind)
	}
}

// analyzeBarcode enriches a numeric barcode and composes the product result
func (s *ScanService) analyzeBarcode(ctx context.Context, input domain.ScanInput, c domain.Classification) *domain.ScanResult {
	country := s.countries.CountryFor(c.Digits)
	prefix := c.Digits[:3]
	log.Printf("[Scan] Processing numeric barcode %s from %s", c.Digits, country)

	product := s.enrichment.Enrich(ctx, c.Digits)

	var title, full, short string
	if product.Found {
		title = product.ProductName
		if title == "" {
			title = "Unknown Product"
		}
		full, short = s.composer.ProductFound(product, country, prefix, c.Symbology)
	} else {
		title = fmt.Sprintf("Product Barcode - %s", country)
		full, short = s.composer.ProductNotFound(country, prefix, c.Symbology)
	}

	return &domain.ScanResult{
		Success:          true,
		Title:            title,
		Category:         fmt.Sprintf("%s Product", country),
		Description:      full,
		DescriptionShort: short,
		Country:          country,
		Barcode:          input.RawValue,
		DeviceID:         input.DeviceID,
	}
}

// analyzeURL classifies a QR link by domain and composes the templated result
func (s *ScanService) analyzeURL(input domain.ScanInput, c domain.Classification) *domain.ScanResult {
	host, profile := s.domainClassifier.Classify(c.URL)
	log.Printf("[Scan] QR analysis completed: %s - %s", profile.Title, profile.Category)

	full, short := s.composer.URLCode(profile, host)

	return &domain.ScanResult{
		Success:          true,
		Title:            profile.Title,
		Category:         profile.Category,
		Description:      full,
		DescriptionShort: short,
		Country:          "Website",
		Barcode:          input.RawValue,
		DeviceID:         input.DeviceID,
	}
}

// analyzeUnknown composes the fixed boilerplate for unrecognized input
func (s *ScanService) analyzeUnknown(input domain.ScanInput, c domain.Classification) *domain.ScanResult {
	log.Printf("[Scan] Processing unknown format: %q", c.Raw)

	full, short := s.composer.Unknown()

	return &domain.ScanResult{
		Success:          true,
		Title:            "Unknown",
		Category:         "Uncategorized",
		Description:      full,
		DescriptionShort: short,
		Country:          "Unknown",
		Barcode:          input.RawValue,
		DeviceID:         input.DeviceID,
	}
}

// degradedResult is the fixed response emitted when the pipeline fails
// unexpectedly. Success stays true: the display firmware treats any
// non-success payload as a protocol error.
func degradedResult(input domain.ScanInput) *domain.ScanResult {
	return &domain.ScanResult{
		Success:          true,
		Title:            "Unknown",
		Category:         "Uncategorized",
		Description:      "AI analysis temporarily unavailable. Please try again later or contact support if the issue persists.",
		DescriptionShort: "Analysis error. Please try again.",
		Country:          "Unknown",
		Barcode:          input.RawValue,
		DeviceID:         input.DeviceID,
	}
}
