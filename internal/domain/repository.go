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

// CatalogRepository defines prefix lookups against the product catalog.
// Both lookups are case-insensitive "starts with" matches capped at a small
// fixed count by the implementation.
type CatalogRepository interface {
	FetchBrandNames(ctx context.Context, prefix string) ([]NameRecord, error)
	FetchProductNames(ctx context.Context, prefix string) ([]NameRecord, error)
}

// ProductTypeClassifier classifies the product type(s) mentioned in a query.
// It returns the detected types, one confidence per type, and a
// spelling-corrected variant of the query. When nothing matches it returns
// the [UnknownProductType] sentinel as the single type.
type ProductTypeClassifier interface {
	ClassifyProductType(query string) (types []string, confidences []float64, correctedQuery string)
}

// PriceExtractor extracts an optional price range from a query.
// Returns nil when the query carries no price signal.
type PriceExtractor interface {
	ExtractPriceRange(query string) *PriceRange
}

// StyleClassifier produces an opaque style classification summary for a
// query. The orchestrator passes the mapping through unmodified.
type StyleClassifier interface {
	ExtractClassification(query string) map[string]interface{}
}
