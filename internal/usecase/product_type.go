package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/furnishly/backend/internal/domain"
	"github.com/furnishly/backend/internal/matching"
)

// correctionThreshold is the minimum similarity for a token to be treated as
// a misspelled product type and rewritten in the corrected query.
const correctionThreshold = 0.75

// productTypeNames are the canonical product types, lowercase.
var productTypeNames = []string{
	"sofa", "armchair", "chair", "table", "bed", "wardrobe", "desk",
	"bookshelf", "dresser", "bench", "ottoman", "stool", "cabinet",
	"sideboard", "nightstand",
}

// productTypeSynonyms fold common alternates onto a canonical type.
var productTypeSynonyms = map[string]string{
	"couch":     "sofa",
	"settee":    "sofa",
	"sectional": "sofa",
	"bureau":    "desk",
	"shelf":     "bookshelf",
	"commode":   "dresser",
}

// ProductTypeService is a dictionary product-type classifier with
// similarity-based spell correction. It owns no mutable state after
// construction.
type ProductTypeService struct {
	similarity *matching.SimilarityMatcher
	types      []string
	typeSet    map[string]bool
	debug      bool
}

// NewProductTypeService creates the classifier.
func NewProductTypeService(debug bool) *ProductTypeService {
	types := make([]string, len(productTypeNames))
	copy(types, productTypeNames)
	sort.Strings(types)

	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[t] = true
	}

	return &ProductTypeService{
		similarity: matching.NewSimilarityMatcher(),
		types:      types,
		typeSet:    typeSet,
		debug:      debug,
	}
}

// ClassifyProductType scans the query for known product types. Misspelled
// tokens close to a type are corrected in the returned query; confidence is
// 1.0 for exact hits and the similarity score for corrected ones. When
// nothing matches, the sentinel [domain.UnknownProductType] is returned and
// the corrected query equals the input.
func (s *ProductTypeService) ClassifyProductType(query string) ([]string, []float64, string) {
	words := strings.Fields(query)
	corrected := make([]string, len(words))
	copy(corrected, words)

	var types []string
	var confidences []float64

	for i, word := range words {
		token := strings.ToLower(strings.Trim(word, ",.!?;:"))
		if token == "" {
			continue
		}

		if canonical, ok := s.lookup(token); ok {
			if !containsString(types, canonical) {
				types = append(types, titleCase(canonical))
				confidences = append(confidences, 1.0)
			}
			continue
		}

		// Short tokens correct too aggressively
		if len(token) < 4 {
			continue
		}

		term, score := s.similarity.BestMatch(token, s.types)
		if score < correctionThreshold {
			continue
		}

		if s.debug {
			log.Printf("[CLASSIFY] corrected %q -> %q (%.2f)", token, term, score)
		}
		corrected[i] = term
		if !containsString(types, term) {
			types = append(types, titleCase(term))
			confidences = append(confidences, score)
		}
	}

	correctedQuery := strings.Join(corrected, " ")
	if len(words) == 0 {
		correctedQuery = query
	}

	if len(types) == 0 {
		return []string{domain.UnknownProductType}, nil, correctedQuery
	}
	return types, confidences, correctedQuery
}

// lookup resolves a token to a canonical type, folding synonyms and simple
// plurals.
func (s *ProductTypeService) lookup(token string) (string, bool) {
	if s.typeSet[token] {
		return token, true
	}
	if canonical, ok := productTypeSynonyms[token]; ok {
		return canonical, true
	}
	if singular := strings.TrimSuffix(token, "s"); singular != token {
		if s.typeSet[singular] {
			return singular, true
		}
		if canonical, ok := productTypeSynonyms[singular]; ok {
			return canonical, true
		}
	}
	return "", false
}

// titleCase uppercases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// containsString reports whether list already holds value, case-insensitive
// on the canonical lowercase form.
func containsString(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
