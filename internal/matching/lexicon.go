package matching

import (
	"sort"
	"strings"
)

// featureCategories maps each canonical furniture feature to its category.
// Keys are the canonical lowercase form; synonyms are intentionally not
// mapped, a phrase either is the canonical term or reaches it through the
// fuzzy pass.
var featureCategories = map[string]string{
	// Materials
	"leather":            "material",
	"leather upholstery": "material",
	"fabric":             "material",
	"velvet":             "material",
	"rattan":             "material",
	// Legs and frames
	"metal legs":           "legs",
	"wooden legs":          "legs",
	"brushed metal legs":   "legs",
	"metal frame":          "frame",
	"solid wood frame":     "frame",
	"solid oak wood frame": "frame",
	// Shapes
	"l shape": "shape",
	"c shape": "shape",
	"u shape": "shape",
	"corner":  "shape",
	// Function
	"recliner":          "function",
	"sofa bed":          "function",
	"storage":           "function",
	"adjustable height": "function",
	"extendable":        "function",
	// Comfort
	"high back": "comfort",
	"armrest":   "comfort",
	"cushion":   "comfort",
	// Detailing
	"stitching detail": "detail",
	"tufted detail":    "detail",
	"carved detail":    "detail",
}

// Lexicon is the static mapping from canonical feature names to categories.
// Built once at startup, read-only afterwards, safe for unlimited concurrent
// readers.
type Lexicon struct {
	featureToCategory map[string]string
	vocabulary        []string
}

// NewLexicon builds the lexicon from the built-in feature table.
func NewLexicon() *Lexicon {
	features := make(map[string]string, len(featureCategories))
	vocabulary := make([]string, 0, len(featureCategories))

	for feature, category := range featureCategories {
		key := strings.ToLower(feature)
		features[key] = category
		vocabulary = append(vocabulary, key)
	}

	// Sorted vocabulary keeps fuzzy scans deterministic
	sort.Strings(vocabulary)

	return &Lexicon{
		featureToCategory: features,
		vocabulary:        vocabulary,
	}
}

// Lookup returns the canonical feature for a phrase, case-insensitive.
func (l *Lexicon) Lookup(phrase string) (string, bool) {
	key := strings.ToLower(phrase)
	if _, ok := l.featureToCategory[key]; ok {
		return key, true
	}
	return "", false
}

// Contains reports whether the feature exists in the lexicon.
func (l *Lexicon) Contains(feature string) bool {
	_, ok := l.Lookup(feature)
	return ok
}

// Category returns the category of a canonical feature.
func (l *Lexicon) Category(feature string) (string, bool) {
	category, ok := l.featureToCategory[strings.ToLower(feature)]
	return category, ok
}

// Vocabulary returns the full sorted list of canonical features. Callers
// must treat the slice as read-only.
func (l *Lexicon) Vocabulary() []string {
	return l.vocabulary
}

// Size returns the number of canonical features.
func (l *Lexicon) Size() int {
	return len(l.featureToCategory)
}
