package barcodelookup

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

// productsResponse is the Barcode Lookup v3 products payload
type productsResponse struct {
	Products []product `json:"products"`
}

type product struct {
	ProductName string   `json:"product_name"`
	Title       string   `json:"title"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Client handles communication with the Barcode Lookup API, the last-resort
// generic provider in the lookup chain
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Barcode Lookup client
func NewClient(baseURL, apiKey string) *Client {
	limiter := rate.NewLimiter(rate.Limit(0.5), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		apiKey:      apiKey,
		rateLimiter: limiter,
	}
}

// Name identifies this provider in logs
func (c *Client) Name() string {
	return "Barcode Lookup"
}

// Lookup fetches product data for a barcode. An empty products list is a
// miss, not an error.
func (c *Client) Lookup(ctx context.Context, barcode string) (*domain.ProductRecord, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Add("barcode", barcode)
	params.Add("formatted", "y")
	params.Add("key", c.apiKey)
	reqURL := fmt.Sprintf("%s/v3/products?%s", c.baseURL, params.Encode())

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

	var products productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	if len(products.Products) == 0 {
		return nil, domain.ErrProductNotFound
	}

	first := products.Products[0]
	name := first.ProductName
	if name == "" {
		name = first.Title
	}

	rec := &domain.ProductRecord{
		Found:       true,
		ProductName: name,
		Brand:       first.Brand,
		Category:    first.Category,
		Description: first.Description,
	}
	if len(first.Images) > 0 {
		rec.ImageURL = first.Images[0]
	}

	return rec, nil
}
