package matching

import (
	"log"
	"regexp"
	"strings"
)

// featurePattern ties a regex to the canonical feature it evidences.
type featurePattern struct {
	re      *regexp.Regexp
	feature string
}

// typoCorrection rewrites a known misspelling so the direct patterns can be
// re-tested against the corrected text.
type typoCorrection struct {
	re          *regexp.Regexp
	replacement string
}

// directPatterns catch phrasings the windowed scan cannot see, e.g.
// hyphenated or inflected forms that never tokenize to a lexicon phrase.
var directPatterns = []featurePattern{
	{regexp.MustCompile(`(?i)\bl[-\s]?shaped?\b`), "l shape"},
	{regexp.MustCompile(`(?i)\bc[-\s]?shaped?\b`), "c shape"},
	{regexp.MustCompile(`(?i)\bu[-\s]?shaped?\b`), "u shape"},
	{regexp.MustCompile(`(?i)\breclin(?:er|ing)\b`), "recliner"},
	{regexp.MustCompile(`(?i)\bpull[-\s]?out\b`), "sofa bed"},
	{regexp.MustCompile(`(?i)\bheight[-\s]adjustable\b`), "adjustable height"},
	{regexp.MustCompile(`(?i)\bstorage\b`), "storage"},
	// Keeps the furniture-part guard: plain "leather" is not enough
	{regexp.MustCompile(`(?i)\bleather\s+(?:sofa|couch|chair|seat|cushion)s?\b`), "leather"},
}

// typoCorrections map frequent misspellings to their anchor word.
var typoCorrections = []typoCorrection{
	{regexp.MustCompile(`(?i)\blethe?r\b`), "leather"},
	{regexp.MustCompile(`(?i)\breclia?ner\b`), "recliner"},
	{regexp.MustCompile(`(?i)\bstorege\b`), "storage"},
}

// PatternMatcher runs an independent regex pass over the raw query text. It
// shares no state with the windowed scan and is purely additive; duplicate
// suppression against the windowed results is the caller's job.
type PatternMatcher struct {
	lexicon     *Lexicon
	direct      []featurePattern
	corrections []typoCorrection
	debug       bool
}

// NewPatternMatcher creates a pattern matcher with the built-in tables.
func NewPatternMatcher(lexicon *Lexicon, debug bool) *PatternMatcher {
	return newPatternMatcher(lexicon, directPatterns, typoCorrections, debug)
}

func newPatternMatcher(lexicon *Lexicon, direct []featurePattern, corrections []typoCorrection, debug bool) *PatternMatcher {
	return &PatternMatcher{
		lexicon:     lexicon,
		direct:      direct,
		corrections: corrections,
		debug:       debug,
	}
}

// ExtractFromPatterns returns canonical features evidenced by the pattern
// tables: direct patterns first, then every direct pattern re-tested against
// typo-corrected copies of the text. Targets missing from the lexicon are
// skipped; first occurrence wins.
func (p *PatternMatcher) ExtractFromPatterns(text string) []string {
	var detected []string

	for _, pattern := range p.direct {
		if !pattern.re.MatchString(text) {
			continue
		}
		detected = p.collect(detected, pattern.feature, text)
	}

	for _, correction := range p.corrections {
		for _, match := range correction.re.FindAllString(text, -1) {
			corrected := strings.ReplaceAll(text, match, correction.replacement)
			for _, pattern := range p.direct {
				if !pattern.re.MatchString(corrected) {
					continue
				}
				detected = p.collect(detected, pattern.feature, corrected)
			}
		}
	}

	return detected
}

// collect appends the feature if it is known and not already present.
func (p *PatternMatcher) collect(detected []string, feature, text string) []string {
	canonical, ok := p.lexicon.Lookup(feature)
	if !ok || containsString(detected, canonical) {
		return detected
	}
	if p.debug {
		log.Printf("[MATCH] pattern match: %q in %q", canonical, text)
	}
	return append(detected, canonical)
}
