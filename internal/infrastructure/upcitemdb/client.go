package upcitemdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/robridge/scanner/internal/domain"
	"golang.org/x/time/rate"
)

// lookupResponse is the UPCitemdb trial lookup payload
type lookupResponse struct {
	Code  string `json:"code"`
	Items []item `json:"items"`
}

type item struct {
	Title       string   `json:"title"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Client handles communication with the UPCitemdb general merchandise API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new UPCitemdb client
func NewClient(baseURL string) *Client {
	// Trial tier allows 100 lookups/day; keep a conservative client-side cap
	limiter := rate.NewLimiter(rate.Limit(0.5), 5)

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
	return "UPCitemdb"
}

// Lookup fetches product data for a UPC/EAN barcode. A response without
// code "OK" or with an empty item list is a miss, not an error.
func (c *Client) Lookup(ctx context.Context, barcode string) (*domain.ProductRecord, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Add("upc", barcode)
	reqURL := fmt.Sprintf("%s/prod/trial/lookup?%s", c.baseURL, params.Encode())

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

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	if lookup.Code != "OK" || len(lookup.Items) == 0 {
		return nil, domain.ErrProductNotFound
	}

	first := lookup.Items[0]
	rec := &domain.ProductRecord{
		Found:       true,
		ProductName: first.Title,
		Brand:       first.Brand,
		Category:    first.Category,
		Description: first.Description,
	}
	if len(first.Images) > 0 {
		rec.ImageURL = first.Images[0]
	}

	return rec, nil
}
