package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/robridge/scanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider is a scripted ProductProvider for pipeline tests
type stubProvider struct {
	name  string
	rec   *domain.ProductRecord
	err   error
	delay time.Duration
	calls int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Lookup(ctx context.Context, barcode string) (*domain.ProductRecord, error) {
	p.calls++
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.rec, nil
}

// panicProvider simulates an unforeseen payload shape crashing normalization
type panicProvider struct{}

func (p *panicProvider) Name() string { return "panic" }

func (p *panicProvider) Lookup(ctx context.Context, barcode string) (*domain.ProductRecord, error) {
	panic("unexpected payload shape")
}

func newTestScanService(timeout time.Duration, providers ...domain.ProductProvider) *ScanService {
	enrichment := NewEnrichmentService(providers, nil, EnrichmentServiceConfig{
		LookupTimeout: timeout,
	})
	return NewScanService(
		NewFormatClassifier(),
		enrichment,
		NewDomainClassifier(),
		DefaultCountryTable(),
		NewComposer(),
	)
}

func TestAnalyze_IndianBarcodeAllProvidersMiss(t *testing.T) {
	missing := &stubProvider{name: "miss", err: domain.ErrProductNotFound}
	service := newTestScanService(time.Second, missing)

	result := service.Analyze(context.Background(), domain.ScanInput{
		RawValue: "8901030978456",
		DeviceID: "esp32-01",
	})

	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, "Product Barcode - India", result.Title)
	assert.Equal(t, "India Product", result.Category)
	assert.Equal(t, "India", result.Country)
	assert.Contains(t, result.DescriptionShort, "Type: "+SymbologyEAN13)
	assert.Equal(t, "8901030978456", result.Barcode)
	assert.Equal(t, "esp32-01", result.DeviceID)
	assert.LessOrEqual(t, utf8.RuneCountInString(result.DescriptionShort), domain.ShortDescriptionLimit)
}

func TestAnalyze_ProductFound(t *testing.T) {
	found := &stubProvider{name: "food", rec: &domain.ProductRecord{
		Found:       true,
		ProductName: "Maggi Noodles",
		Brand:       "Nestle",
		Category:    "Instant Noodles",
	}}
	service := newTestScanService(time.Second, found)

	result := service.Analyze(context.Background(), domain.ScanInput{RawValue: "8901030978456"})

	assert.True(t, result.Success)
	assert.Equal(t, "Maggi Noodles", result.Title)
	assert.Equal(t, "India Product", result.Category)
	assert.Contains(t, result.Description, "Product Identified: Maggi Noodles")
	assert.Contains(t, result.DescriptionShort, "Maggi Noodles by Nestle")
}

func TestAnalyze_FirstProviderSuccessShortCircuits(t *testing.T) {
	first := &stubProvider{name: "first", rec: &domain.ProductRecord{Found: true, ProductName: "Winner"}}
	second := &stubProvider{name: "second", rec: &domain.ProductRecord{Found: true, ProductName: "Loser"}}
	service := newTestScanService(time.Second, first, second)

	result := service.Analyze(context.Background(), domain.ScanInput{RawValue: "8901030978456"})

	assert.Equal(t, "Winner", result.Title)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestAnalyze_ProviderFailureFallsThrough(t *testing.T) {
	failing := &stubProvider{name: "failing", err: errors.New("connection refused")}
	backup := &stubProvider{name: "backup", rec: &domain.ProductRecord{Found: true, ProductName: "Backup Product"}}
	service := newTestScanService(time.Second, failing, backup)

	result := service.Analyze(context.Background(), domain.ScanInput{RawValue: "8901030978456"})

	assert.Equal(t, "Backup Product", result.Title)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, backup.calls)
}

func TestAnalyze_SlowProviderBoundedByTimeout(t *testing.T) {
	slow := &stubProvider{name: "slow", delay: 10 * time.Second}
	backup := &stubProvider{name: "backup", rec: &domain.ProductRecord{Found: true, ProductName: "Backup Product"}}
	service := newTestScanService(100*time.Millisecond, slow, backup)

	start := time.Now()
	result := service.Analyze(context.Background(), domain.ScanInput{RawValue: "8901030978456"})
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 2*time.Second, "slow provider must be abandoned at its timeout")
	assert.Equal(t, "Backup Product", result.Title)
	assert.Equal(t, 1, backup.calls)
}

func TestAnalyze_GitHubURL(t *testing.T) {
	service := newTestScanService(time.Second)

	result := service.Analyze(context.Background(), domain.ScanInput{
		RawValue: "https://github.com/foo/bar",
		DeviceID: "esp32-02",
	})

	assert.True(t, result.Success)
	assert.Equal(t, "GitHub", result.Title)
	assert.Equal(t, "Developer Platform", result.Category)
	assert.Equal(t, "Website", result.Country)
	assert.Contains(t, result.DescriptionShort, "QR code link to github.com")
	assert.Equal(t, "https://github.com/foo/bar", result.Barcode)
}

func TestAnalyze_UnknownInput(t *testing.T) {
	service := newTestScanService(time.Second)

	result := service.Analyze(context.Background(), domain.ScanInput{RawValue: "not-a-barcode!!"})

	assert.True(t, result.Success)
	assert.Equal(t, "Unknown", result.Title)
	assert.Equal(t, "Uncategorized", result.Category)
	assert.Equal(t, "Unknown", result.Country)
	assert.Equal(t, "Unknown format. Not a standard barcode or URL.", result.DescriptionShort)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	service := newTestScanService(time.Second)

	result := service.Analyze(context.Background(), domain.ScanInput{RawValue: ""})

	assert.True(t, result.Success)
	assert.Equal(t, "Unknown", result.Title)
	assert.Equal(t, "Uncategorized", result.Category)
}

func TestAnalyze_Idempotent(t *testing.T) {
	makeService := func() *ScanService {
		return newTestScanService(time.Second, &stubProvider{
			name: "stable",
			rec: &domain.ProductRecord{
				Found:       true,
				ProductName: "Stable Product",
				Brand:       "Brand",
				Category:    "Category",
			},
		})
	}

	input := domain.ScanInput{RawValue: "8901030978456", DeviceID: "esp32-03"}

	first := makeService().Analyze(context.Background(), input)
	second := makeService().Analyze(context.Background(), input)

	assert.Equal(t, *first, *second)
}

func TestAnalyze_PanicConvertedToDegradedResult(t *testing.T) {
	service := newTestScanService(time.Second, &panicProvider{})

	result := service.Analyze(context.Background(), domain.ScanInput{
		RawValue: "8901030978456",
		DeviceID: "esp32-04",
	})

	require.NotNil(t, result)
	assert.True(t, result.Success, "degraded results still report success for wire compatibility")
	assert.Equal(t, "Unknown", result.Title)
	assert.Equal(t, "Uncategorized", result.Category)
	assert.Equal(t, "Unknown", result.Country)
	assert.Contains(t, result.Description, "AI analysis temporarily unavailable")
	assert.Equal(t, "Analysis error. Please try again.", result.DescriptionShort)
	assert.Equal(t, "8901030978456", result.Barcode)
	assert.Equal(t, "esp32-04", result.DeviceID)
}
