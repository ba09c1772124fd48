package matching

import (
	"log"
	"strings"
)

// Default fuzzy-match tuning. The thresholds and the phrase-length gate are
// empirically calibrated; override them through Config, not here.
const (
	defaultFuzzyThreshold       = 0.93
	defaultStrictFuzzyThreshold = 0.96
	defaultMinFuzzyPhraseLen    = 6
)

// strictSimilarityTerms produce too many fuzzy false positives at the normal
// threshold and require the strict one.
var strictSimilarityTerms = []string{"detail", "metal"}

// windowSizes are tried largest-first so longer phrases get first refusal.
var windowSizes = [4]int{4, 3, 2, 1}

// ContextRule gates acceptance of an ambiguous candidate phrase on its
// surrounding tokens. A candidate whose phrase contains Trigger is accepted
// only if at least one of RequiredTerms appears within WindowSize tokens on
// either side of the phrase's start index.
type ContextRule struct {
	Trigger       string
	WindowSize    int
	RequiredTerms []string
}

// defaultContextRules: "leather" alone is ambiguous (leather wallet, leather
// jacket) and needs a furniture part nearby. New ambiguous terms get new
// rows here, not new branches.
var defaultContextRules = []ContextRule{
	{
		Trigger:       "leather",
		WindowSize:    2,
		RequiredTerms: []string{"sofa", "chair", "back", "seat", "arm", "cushion"},
	},
}

// Config holds tuning for the windowed matcher. Zero values fall back to the
// calibrated defaults.
type Config struct {
	FuzzyThreshold       float64
	StrictFuzzyThreshold float64
	MinFuzzyPhraseLen    int
	EnableDebugLogging   bool
}

// WindowedMatcher scans tokenized text with shrinking windows, resolving
// exact matches against the lexicon and fuzzy matches against its
// vocabulary. Read-only after construction; per-call state (consumed
// indices, detected list) is allocated fresh in Extract.
type WindowedMatcher struct {
	lexicon              *Lexicon
	similarity           *SimilarityMatcher
	fuzzyThreshold       float64
	strictFuzzyThreshold float64
	minFuzzyPhraseLen    int
	contextRules         []ContextRule
	debug                bool
}

// NewWindowedMatcher creates a windowed matcher over the given lexicon.
func NewWindowedMatcher(lexicon *Lexicon, cfg Config) *WindowedMatcher {
	fuzzyThreshold := cfg.FuzzyThreshold
	if fuzzyThreshold <= 0 {
		fuzzyThreshold = defaultFuzzyThreshold
	}

	strictThreshold := cfg.StrictFuzzyThreshold
	if strictThreshold <= 0 {
		strictThreshold = defaultStrictFuzzyThreshold
	}

	minLen := cfg.MinFuzzyPhraseLen
	if minLen <= 0 {
		minLen = defaultMinFuzzyPhraseLen
	}

	return &WindowedMatcher{
		lexicon:              lexicon,
		similarity:           NewSimilarityMatcher(),
		fuzzyThreshold:       fuzzyThreshold,
		strictFuzzyThreshold: strictThreshold,
		minFuzzyPhraseLen:    minLen,
		contextRules:         defaultContextRules,
		debug:                cfg.EnableDebugLogging,
	}
}

// Extract returns canonical features detected in the text, in acceptance
// order: largest windows first, left-to-right within a window size. Input is
// expected pre-lowercased and trimmed; empty text yields an empty result.
func (m *WindowedMatcher) Extract(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	// Consumed-index arena for this call: once a window is accepted its
	// indices never become available again.
	consumed := make([]bool, len(words))
	var detected []string

	for _, size := range windowSizes {
		for start := 0; start+size <= len(words); start++ {
			if anyConsumed(consumed, start, size) {
				continue
			}

			phrase := strings.Join(words[start:start+size], " ")
			feature, kind := m.resolve(phrase)
			if feature == "" {
				continue
			}

			// A rejected phrase leaves its indices available for a
			// shorter window in a later pass.
			if !m.contextAccepted(phrase, words, start) {
				if m.debug {
					log.Printf("[MATCH] rejected by context: %q", phrase)
				}
				continue
			}

			if containsString(detected, feature) {
				continue
			}

			detected = append(detected, feature)
			for i := start; i < start+size; i++ {
				consumed[i] = true
			}

			if m.debug {
				log.Printf("[MATCH] %s match: %q -> %q (window %d, start %d)",
					kind, phrase, feature, size, start)
			}
		}
	}

	return detected
}

// resolve maps a phrase to a canonical feature, trying an exact lexicon
// lookup first and a fuzzy vocabulary match second. Returns the feature and
// the match kind, or ("", "") when nothing qualifies.
func (m *WindowedMatcher) resolve(phrase string) (string, string) {
	if feature, ok := m.lexicon.Lookup(phrase); ok {
		return feature, "exact"
	}

	// Fuzzy matching on short phrases is noise
	if len(phrase) <= m.minFuzzyPhraseLen {
		return "", ""
	}

	term, score := m.similarity.BestMatch(phrase, m.lexicon.Vocabulary())
	if score < m.thresholdFor(phrase) {
		return "", ""
	}
	if feature, ok := m.lexicon.Lookup(term); ok {
		return feature, "fuzzy"
	}
	return "", ""
}

// thresholdFor picks the fuzzy threshold for a phrase.
func (m *WindowedMatcher) thresholdFor(phrase string) float64 {
	for _, term := range strictSimilarityTerms {
		if strings.Contains(phrase, term) {
			return m.strictFuzzyThreshold
		}
	}
	return m.fuzzyThreshold
}

// contextAccepted applies every context rule whose trigger appears in the
// phrase. The context window spans up to WindowSize tokens before and after
// the phrase's start index, clamped to the token sequence.
func (m *WindowedMatcher) contextAccepted(phrase string, words []string, start int) bool {
	for _, rule := range m.contextRules {
		if !strings.Contains(phrase, rule.Trigger) {
			continue
		}

		lo := start - rule.WindowSize
		if lo < 0 {
			lo = 0
		}
		hi := start + rule.WindowSize + 1
		if hi > len(words) {
			hi = len(words)
		}

		context := strings.ToLower(strings.Join(words[lo:hi], " "))
		supported := false
		for _, term := range rule.RequiredTerms {
			if strings.Contains(context, term) {
				supported = true
				break
			}
		}
		if !supported {
			return false
		}
	}
	return true
}

// anyConsumed reports whether any index in [start, start+size) is consumed.
func anyConsumed(consumed []bool, start, size int) bool {
	for i := start; i < start+size; i++ {
		if consumed[i] {
			return true
		}
	}
	return false
}

// containsString reports whether list already holds value.
func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
