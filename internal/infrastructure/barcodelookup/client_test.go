package barcodelookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/robridge/scanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/products", r.URL.Path)
		assert.Equal(t, "8901030978456", r.URL.Query().Get("barcode"))
		assert.Equal(t, "y", r.URL.Query().Get("formatted"))
		assert.Equal(t, "demo", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [{
				"product_name": "Generic Soap",
				"brand": "SoapCo",
				"category": "Personal Care",
				"description": "A bar of soap",
				"images": ["https://images.example/soap.jpg"]
			}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo")

	rec, err := client.Lookup(context.Background(), "8901030978456")

	require.NoError(t, err)
	assert.True(t, rec.Found)
	assert.Equal(t, "Generic Soap", rec.ProductName)
	assert.Equal(t, "SoapCo", rec.Brand)
	assert.Equal(t, "https://images.example/soap.jpg", rec.ImageURL)
}

func TestLookup_NameFallsBackToTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [{"title": "Title Only Product"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo")

	rec, err := client.Lookup(context.Background(), "8901030978456")

	require.NoError(t, err)
	assert.Equal(t, "Title Only Product", rec.ProductName)
}

func TestLookup_EmptyProductsIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo")

	rec, err := client.Lookup(context.Background(), "0000000000000")

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestLookup_ForbiddenIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "expired-key")

	rec, err := client.Lookup(context.Background(), "8901030978456")

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrProviderFailure)
}
