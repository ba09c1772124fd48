package matching

import (
	"github.com/antzucaro/matchr"
)

// SimilarityMatcher scores how close a candidate phrase is to vocabulary
// terms. Scores are normalized Levenshtein similarity: 1 - distance/maxLen,
// so 1.0 is identical and 0.0 shares nothing. Stateless and safe for
// concurrent use.
type SimilarityMatcher struct{}

// NewSimilarityMatcher creates a new similarity matcher
func NewSimilarityMatcher() *SimilarityMatcher {
	return &SimilarityMatcher{}
}

// Score returns the normalized similarity between two strings.
func (m *SimilarityMatcher) Score(a, b string) float64 {
	if a == b {
		return 1.0
	}

	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}

	distance := matchr.Levenshtein(a, b)
	return 1.0 - float64(distance)/float64(maxLen)
}

// BestMatch returns the vocabulary term with the highest similarity to the
// phrase, along with its score. Ties resolve to the earliest term, so a
// sorted vocabulary yields deterministic results. Returns ("", 0) for an
// empty vocabulary.
func (m *SimilarityMatcher) BestMatch(phrase string, vocabulary []string) (string, float64) {
	best := ""
	bestScore := -1.0

	for _, term := range vocabulary {
		if score := m.Score(phrase, term); score > bestScore {
			best = term
			bestScore = score
		}
	}

	if bestScore < 0 {
		return "", 0
	}
	return best, bestScore
}
