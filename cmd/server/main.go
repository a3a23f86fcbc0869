package main

import (
	"fmt"
	"log"
	"os"

	"github.com/robridge/scanner/config"
	httpDelivery "github.com/robridge/scanner/internal/delivery/http"
	"github.com/robridge/scanner/internal/domain"
	"github.com/robridge/scanner/internal/infrastructure/barcodelookup"
	"github.com/robridge/scanner/internal/infrastructure/cache"
	"github.com/robridge/scanner/internal/infrastructure/openfoodfacts"
	"github.com/robridge/scanner/internal/infrastructure/upcitemdb"
	"github.com/robridge/scanner/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Robridge Scanner v2.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Enrichment cache TTL: %s", cfg.Cache.TTL)

	// Providers in lookup priority order: food database first, then general
	// merchandise, then the generic last-resort lookup
	providers := []domain.ProductProvider{
		openfoodfacts.NewClient(cfg.Providers.OpenFoodFactsBaseURL),
		upcitemdb.NewClient(cfg.Providers.UPCItemDBBaseURL),
		barcodelookup.NewClient(cfg.Providers.BarcodeLookupBaseURL, cfg.Providers.BarcodeLookupAPIKey),
	}
	for _, p := range providers {
		log.Printf("Product provider configured: %s", p.Name())
	}
	log.Printf("Provider lookup timeout: %s", cfg.Providers.LookupTimeout)

	// Initialize usecase layer
	enrichment := usecase.NewEnrichmentService(
		providers,
		memoryCache,
		usecase.EnrichmentServiceConfig{
			LookupTimeout: cfg.Providers.LookupTimeout,
			CacheTTL:      cfg.Cache.TTL,
		},
	)

	scanService := usecase.NewScanService(
		usecase.NewFormatClassifier(),
		enrichment,
		usecase.NewDomainClassifier(),
		usecase.DefaultCountryTable(),
		usecase.NewComposer(),
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(scanService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
