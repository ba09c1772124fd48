package usecase

import (
	"regexp"
	"strconv"

	"github.com/furnishly/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	priceBetweenRegex = regexp.MustCompile(`(?i)\bbetween\s+(?:€|eur\s*|\$|usd\s*)?(\d+(?:\.\d+)?)\s+and\s+(?:€|eur\s*|\$|usd\s*)?(\d+(?:\.\d+)?)`)
	priceUnderRegex   = regexp.MustCompile(`(?i)\b(?:under|below|less than|up to|max(?:imum)?)\s+(?:€|eur\s*|\$|usd\s*)?(\d+(?:\.\d+)?)`)
	priceOverRegex    = regexp.MustCompile(`(?i)\b(?:over|above|more than|at least|from)\s+(?:€|eur\s*|\$|usd\s*)?(\d+(?:\.\d+)?)`)
	priceRangeRegex   = regexp.MustCompile(`(?i)(?:€|eur\s*|\$|usd\s*)?(\d+(?:\.\d+)?)\s*[-–]\s*(?:€|eur\s*|\$|usd\s*)?(\d+(?:\.\d+)?)`)
	usdMarkerRegex    = regexp.MustCompile(`(?i)\$|\busd\b|\bdollars?\b`)
)

// Extraction confidence per pattern family: keyword forms are explicit,
// a bare numeric range might be dimensions or a model number.
const (
	keywordPriceConfidence = 0.9
	rangePriceConfidence   = 0.7
)

// PriceService extracts an optional price range from a raw query.
// Stateless; implements domain.PriceExtractor.
type PriceService struct{}

// NewPriceService creates the price extractor.
func NewPriceService() *PriceService {
	return &PriceService{}
}

// ExtractPriceRange returns the price constraint found in the query, or nil
// when the query carries no price signal. Currency defaults to EUR; a dollar
// marker anywhere in the query switches it to USD.
func (s *PriceService) ExtractPriceRange(query string) *domain.PriceRange {
	currency := "EUR"
	if usdMarkerRegex.MatchString(query) {
		currency = "USD"
	}

	if m := priceBetweenRegex.FindStringSubmatch(query); m != nil {
		return &domain.PriceRange{
			Min:        parsePrice(m[1]),
			Max:        parsePrice(m[2]),
			Currency:   currency,
			Confidence: keywordPriceConfidence,
		}
	}

	if m := priceUnderRegex.FindStringSubmatch(query); m != nil {
		return &domain.PriceRange{
			Max:        parsePrice(m[1]),
			Currency:   currency,
			Confidence: keywordPriceConfidence,
		}
	}

	if m := priceOverRegex.FindStringSubmatch(query); m != nil {
		return &domain.PriceRange{
			Min:        parsePrice(m[1]),
			Currency:   currency,
			Confidence: keywordPriceConfidence,
		}
	}

	if m := priceRangeRegex.FindStringSubmatch(query); m != nil {
		return &domain.PriceRange{
			Min:        parsePrice(m[1]),
			Max:        parsePrice(m[2]),
			Currency:   currency,
			Confidence: rangePriceConfidence,
		}
	}

	return nil
}

// parsePrice converts a matched numeric group; the regexes guarantee a
// parseable value.
func parsePrice(s string) *float64 {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &value
}
