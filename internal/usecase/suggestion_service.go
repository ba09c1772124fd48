package usecase

import (
	"context"
	"log"

	"github.com/furnishly/backend/internal/domain"
)

// SuggestionService assembles prefix suggestions for a partial query:
// product and brand names from the catalog, styles from the style table.
// Catalog failures degrade to empty lists, never errors.
type SuggestionService struct {
	catalog domain.CatalogRepository
	styles  *StyleExtractor
	debug   bool
}

// NewSuggestionService wires the suggestion pipeline.
func NewSuggestionService(catalog domain.CatalogRepository, debug bool) *SuggestionService {
	return &SuggestionService{
		catalog: catalog,
		styles:  NewStyleExtractor(),
		debug:   debug,
	}
}

// Suggest returns the top matches for the query. Each list is bounded by the
// collaborator that produced it.
func (s *SuggestionService) Suggest(ctx context.Context, query string) *domain.SuggestionResult {
	products, err := s.catalog.FetchProductNames(ctx, query)
	if err != nil {
		log.Printf("[SUGGEST] product lookup failed: %v", err)
		products = nil
	}

	brands, err := s.catalog.FetchBrandNames(ctx, query)
	if err != nil {
		log.Printf("[SUGGEST] brand lookup failed: %v", err)
		brands = nil
	}

	if products == nil {
		products = []domain.NameRecord{}
	}
	if brands == nil {
		brands = []domain.NameRecord{}
	}

	return &domain.SuggestionResult{
		ProductName: products,
		BrandName:   brands,
		Styles:      s.styles.ExtractStyles(query),
	}
}
