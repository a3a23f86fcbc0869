package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/robridge/scanner/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Open Food Facts product API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Open Food Facts API client
func NewClient(baseURL string) *Client {
	// Open Food Facts asks clients to stay under 100 product queries/min
	limiter := rate.NewLimiter(rate.Limit(1.6), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// Name identifies this provider in logs
func (c *Client) Name() string {
	return "Open Food Facts"
}

// Lookup fetches product data for a barcode. Returns ErrProductNotFound when
// the barcode is not in the database (the API signals this with status 0 in
// an otherwise successful response).
func (c *Client) Lookup(ctx context.Context, barcode string) (*domain.ProductRecord, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "RobridgeScanner/2.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderFailure, resp.StatusCode)
	}

	var productResp ProductResponse
	if err := json.NewDecoder(resp.Body).Decode(&productResp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	if productResp.Status != 1 {
		return nil, domain.ErrProductNotFound
	}

	return MapToProductRecord(&productResp.Product), nil
}
