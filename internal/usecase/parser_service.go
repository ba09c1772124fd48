package usecase

import (
	"log"

	"github.com/furnishly/backend/internal/domain"
	"github.com/furnishly/backend/internal/matching"
)

// ParserService orchestrates one query parse: product-type classification,
// feature extraction on the corrected query, style classification and price
// extraction on the original query, assembled into a single ParserResult.
// Holds no mutable state across calls; every call is independent and
// re-entrant.
type ParserService struct {
	classifier     domain.ProductTypeClassifier
	features       *matching.FeatureExtractor
	classification domain.StyleClassifier
	price          domain.PriceExtractor
	debug          bool
}

// NewParserService wires the orchestrator with its collaborators.
func NewParserService(
	classifier domain.ProductTypeClassifier,
	features *matching.FeatureExtractor,
	classification domain.StyleClassifier,
	price domain.PriceExtractor,
	debug bool,
) *ParserService {
	return &ParserService{
		classifier:     classifier,
		features:       features,
		classification: classification,
		price:          price,
		debug:          debug,
	}
}

// Parse runs the full pipeline. Every stage always runs; a stage that fails
// degrades to its zero value and the stages that succeeded keep their
// results. No error or panic propagates to the caller.
func (s *ParserService) Parse(query string) *domain.ParserResult {
	if s.debug {
		log.Printf("[PARSER] parsing query: %q", query)
	}

	types, confidences, corrected := s.classifyStage(query)
	features := s.featureStage(corrected)
	classification := s.classificationStage(query)
	price := s.priceStage(query)

	productTypes := types
	if len(productTypes) == 1 && productTypes[0] == domain.UnknownProductType {
		productTypes = nil
	}
	if productTypes == nil {
		productTypes = []string{}
	}
	if features == nil {
		features = []string{}
	}

	confidence := 0.0
	if len(confidences) > 0 {
		confidence = confidences[0]
	}

	var suggested *string
	if corrected != query {
		suggested = &corrected
	}

	return &domain.ParserResult{
		ProductType:           productTypes,
		Features:              features,
		PriceRange:            price,
		Location:              "",
		ClassificationSummary: classification,
		Extras:                []string{},
		ConfidenceScore:       confidence,
		OriginalQuery:         query,
		SuggestedQuery:        suggested,
	}
}

// Each stage runs under its own recover so a panicking collaborator costs
// only its own field.

func (s *ParserService) classifyStage(query string) (types []string, confidences []float64, corrected string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PARSER] product type stage failed: %v", r)
			types, confidences, corrected = nil, nil, query
		}
	}()
	return s.classifier.ClassifyProductType(query)
}

func (s *ParserService) featureStage(text string) (features []string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PARSER] feature stage failed: %v", r)
			features = nil
		}
	}()
	return s.features.Extract(text)
}

func (s *ParserService) classificationStage(query string) (summary map[string]interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PARSER] classification stage failed: %v", r)
			summary = map[string]interface{}{}
		}
	}()
	return s.classification.ExtractClassification(query)
}

func (s *ParserService) priceStage(query string) (price *domain.PriceRange) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PARSER] price stage failed: %v", r)
			price = nil
		}
	}()
	return s.price.ExtractPriceRange(query)
}
