package domain

import "errors"

var (
	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrDatabaseUnavailable is returned when no catalog connection can be established
	ErrDatabaseUnavailable = errors.New("catalog database unavailable")

	// ErrCatalogQueryFailed is returned when a catalog lookup fails
	ErrCatalogQueryFailed = errors.New("catalog query failed")
)
