package usecase

import "strings"

// maxStyleSuggestions caps the style suggestion list.
const maxStyleSuggestions = 10

// StyleExtractor suggests styles whose name starts with the typed query.
type StyleExtractor struct {
	styles []string
}

// NewStyleExtractor creates the extractor over the built-in style table.
func NewStyleExtractor() *StyleExtractor {
	return newStyleExtractor(furnitureStyles)
}

func newStyleExtractor(styles []string) *StyleExtractor {
	return &StyleExtractor{styles: styles}
}

// ExtractStyles returns up to maxStyleSuggestions styles beginning with the
// query prefix, case-insensitive, title-cased, in table order.
func (e *StyleExtractor) ExtractStyles(query string) []string {
	prefix := strings.ToLower(strings.TrimSpace(query))

	matches := []string{}
	if prefix == "" {
		return matches
	}

	for _, style := range e.styles {
		if !strings.HasPrefix(style, prefix) {
			continue
		}
		matches = append(matches, titleCase(style))
		if len(matches) == maxStyleSuggestions {
			break
		}
	}
	return matches
}
