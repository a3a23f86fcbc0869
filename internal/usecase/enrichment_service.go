package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robridge/scanner/internal/domain"
)

// EnrichmentServiceConfig holds configuration for the enrichment service
type EnrichmentServiceConfig struct {
	LookupTimeout time.Duration // per-provider budget
	CacheTTL      time.Duration
}

// EnrichmentService queries external product databases for a numeric barcode.
// Providers are tried sequentially in priority order with an independent
// timeout each; the first positive answer wins and nothing is merged across
// providers. Every provider failure is absorbed — enrichment is best-effort
// and never fails the scan.
type EnrichmentService struct {
	providers     []domain.ProductProvider
	cache         domain.CacheRepository
	lookupTimeout time.Duration
	cacheTTL      time.Duration
}

// NewEnrichmentService creates an enrichment service over an ordered provider list
func NewEnrichmentService(
	providers []domain.ProductProvider,
	cache domain.CacheRepository,
	config EnrichmentServiceConfig,
) *EnrichmentService {
	lookupTimeout := config.LookupTimeout
	if lookupTimeout == 0 {
		lookupTimeout = 5 * time.Second
	}
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &EnrichmentService{
		providers:     providers,
		cache:         cache,
		lookupTimeout: lookupTimeout,
		cacheTTL:      cacheTTL,
	}
}

// Enrich looks up product data for a barcode across all configured providers.
// Always returns a record; Found is false when every provider missed.
func (s *EnrichmentService) Enrich(ctx context.Context, barcode string) *domain.ProductRecord {
	cacheKey := fmt.Sprintf("product:%s", barcode)

	if cached := s.getFromCache(ctx, cacheKey); cached != nil {
		log.Printf("[Enrich] Cache hit for barcode %s", barcode)
		return cached
	}

	for _, provider := range s.providers {
		rec := s.lookupOne(ctx, provider, barcode)
		if rec != nil && rec.Found {
			log.Printf("[Enrich] %s found product %q for barcode %s", provider.Name(), rec.ProductName, barcode)
			if err := s.setInCache(ctx, cacheKey, rec); err != nil {
				log.Printf("[Enrich] Cache write failed for %s: %v", barcode, err)
			}
			return rec
		}
	}

	log.Printf("[Enrich] No provider had data for barcode %s", barcode)
	return &domain.ProductRecord{Found: false}
}

// lookupOne queries a single provider under its own timeout. Misses, timeouts
// and malformed payloads are all logged and swallowed; a nil return means
// "try the next provider".
func (s *EnrichmentService) lookupOne(ctx context.Context, provider domain.ProductProvider, barcode string) *domain.ProductRecord {
	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	rec, err := provider.Lookup(lookupCtx, barcode)
	if err != nil {
		log.Printf("[Enrich] %s miss for barcode %s: %v", provider.Name(), barcode, err)
		return nil
	}
	return rec
}

// getFromCache retrieves a product record from cache, tolerating the
// map-shaped values the cache stores after its JSON round-trip
func (s *EnrichmentService) getFromCache(ctx context.Context, key string) *domain.ProductRecord {
	if s.cache == nil {
		return nil
	}

	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	if rec, ok := value.(*domain.ProductRecord); ok {
		return rec
	}
	if dataMap, ok := value.(map[string]interface{}); ok {
		return mapToProductRecord(dataMap)
	}
	return nil
}

// setInCache stores a product record in cache
func (s *EnrichmentService) setInCache(ctx context.Context, key string, rec *domain.ProductRecord) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, key, rec, s.cacheTTL)
}

// mapToProductRecord converts a map (from JSON cache) to a ProductRecord
func mapToProductRecord(data map[string]interface{}) *domain.ProductRecord {
	rec := &domain.ProductRecord{}

	if v, ok := data["found"].(bool); ok {
		rec.Found = v
	}
	if v, ok := data["productName"].(string); ok {
		rec.ProductName = v
	}
	if v, ok := data["brand"].(string); ok {
		rec.Brand = v
	}
	if v, ok := data["category"].(string); ok {
		rec.Category = v
	}
	if v, ok := data["description"].(string); ok {
		rec.Description = v
	}
	if v, ok := data["imageUrl"].(string); ok {
		rec.ImageURL = v
	}

	return rec
}
