package domain

// UnknownProductType is the sentinel the product-type classifier returns when
// nothing in the query matches a known type. The orchestrator maps it to an
// empty list before the result leaves the service.
const UnknownProductType = "Unknown"

// PriceRange represents an extracted price constraint. Min or Max may be nil
// for open-ended ranges ("under 500", "from 200").
type PriceRange struct {
	Min        *float64 `json:"min"`
	Max        *float64 `json:"max"`
	Currency   string   `json:"currency"`
	Confidence float64  `json:"confidence"`
}

// ParserResult is the structured output of one query parse. All fields are
// value-owned by the result; nothing is shared across requests.
type ParserResult struct {
	ProductType           []string               `json:"product_type"`
	Features              []string               `json:"features"`
	PriceRange            *PriceRange            `json:"price_range"`
	Location              string                 `json:"location"`
	ClassificationSummary map[string]interface{} `json:"classification_summary"`
	Extras                []string               `json:"extras"`
	ConfidenceScore       float64                `json:"confidence_score"`
	OriginalQuery         string                 `json:"original_query"`
	SuggestedQuery        *string                `json:"suggested_query"`
}

// NameRecord is a single id/name row from the catalog.
type NameRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SuggestionResult holds prefix-matched suggestions for a partial query.
// Each list is capped by the collaborator that produced it, not here.
type SuggestionResult struct {
	ProductName []NameRecord `json:"product_name"`
	BrandName   []NameRecord `json:"brand_name"`
	Styles      []string     `json:"styles"`
}
