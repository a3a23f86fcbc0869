package domain

import "errors"

var (
	// ErrProductNotFound is returned when a barcode is not present in a provider database
	ErrProductNotFound = errors.New("product not found in provider database")

	// ErrProviderFailure is returned when a provider API request fails
	ErrProviderFailure = errors.New("provider API request failed")

	// ErrMalformedResponse is returned when a provider payload cannot be decoded
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
