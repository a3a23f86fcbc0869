package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ProductProvider defines the interface for an external product database.
// Lookup returns ErrProductNotFound when the barcode is not in the database;
// any other error means the provider could not answer. Providers are queried
// in a fixed priority order and a miss is never fatal.
type ProductProvider interface {
	Name() string
	Lookup(ctx context.Context, barcode string) (*ProductRecord, error)
}
