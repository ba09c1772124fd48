package matching

import (
	"log"
	"strings"
)

// ExclusionRule marks two features as mutually exclusive. When both are
// detected, the raw text is checked for each signal: if exactly one signal
// is present, the other feature is dropped. Both or neither present is an
// ambiguous tie and both features survive.
type ExclusionRule struct {
	FeatureA string
	FeatureB string
	SignalA  string
	SignalB  string
}

// defaultExclusionRules: an L-shaped and a C-shaped piece cannot both be
// meant. New exclusive pairs are new rows, not new branches.
var defaultExclusionRules = []ExclusionRule{
	{FeatureA: "l shape", FeatureB: "c shape", SignalA: "l", SignalB: "c"},
}

// FeatureExtractor is the full extraction pipeline: windowed scan, pattern
// pass, union, disambiguation. Read-only after construction and safe for
// concurrent use with a shared lexicon.
type FeatureExtractor struct {
	windowed   *WindowedMatcher
	patterns   *PatternMatcher
	exclusions []ExclusionRule
	debug      bool
}

// NewFeatureExtractor wires the extraction pipeline over one lexicon.
func NewFeatureExtractor(lexicon *Lexicon, cfg Config) *FeatureExtractor {
	return &FeatureExtractor{
		windowed:   NewWindowedMatcher(lexicon, cfg),
		patterns:   NewPatternMatcher(lexicon, cfg.EnableDebugLogging),
		exclusions: defaultExclusionRules,
		debug:      cfg.EnableDebugLogging,
	}
}

// Extract runs both passes on the text and resolves exclusions. The windowed
// scan sees the lowercased trimmed text; the pattern pass sees the raw text
// (its patterns are case-insensitive). Output order is windowed acceptance
// order followed by pattern order.
func (e *FeatureExtractor) Extract(text string) []string {
	clean := strings.TrimSpace(strings.ToLower(text))

	features := e.windowed.Extract(clean)
	for _, feature := range e.patterns.ExtractFromPatterns(text) {
		if !containsString(features, feature) {
			features = append(features, feature)
		}
	}

	return e.disambiguate(features, clean)
}

// disambiguate applies the exclusion table against the lowercased text.
func (e *FeatureExtractor) disambiguate(features []string, text string) []string {
	for _, rule := range e.exclusions {
		if !containsString(features, rule.FeatureA) || !containsString(features, rule.FeatureB) {
			continue
		}

		hasA := strings.Contains(text, rule.SignalA)
		hasB := strings.Contains(text, rule.SignalB)

		switch {
		case hasA && !hasB:
			features = removeString(features, rule.FeatureB)
			if e.debug {
				log.Printf("[MATCH] exclusion dropped %q (signal %q)", rule.FeatureB, rule.SignalA)
			}
		case hasB && !hasA:
			features = removeString(features, rule.FeatureA)
			if e.debug {
				log.Printf("[MATCH] exclusion dropped %q (signal %q)", rule.FeatureA, rule.SignalB)
			}
			// both or neither signal: ambiguous tie, leave both in place
		}
	}
	return features
}

// removeString returns list without value, preserving order.
func removeString(list []string, value string) []string {
	kept := list[:0]
	for _, item := range list {
		if item != value {
			kept = append(kept, item)
		}
	}
	return kept
}
