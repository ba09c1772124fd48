package usecase

import "strings"

// styleKeywordScore is the score assigned to a style keyword found verbatim
// in the query.
const styleKeywordScore = 0.9

// ClassificationService produces the opaque style classification summary the
// orchestrator passes through unmodified. Implements domain.StyleClassifier.
type ClassificationService struct {
	styles []string
}

// NewClassificationService creates the classifier over the built-in style
// vocabulary.
func NewClassificationService() *ClassificationService {
	return &ClassificationService{styles: furnitureStyles}
}

// ExtractClassification scans the query for style keywords and returns a
// labels/scores summary. Runs on the original query; spelling correction is
// intentionally not applied to classification.
func (s *ClassificationService) ExtractClassification(query string) map[string]interface{} {
	q := strings.ToLower(query)

	labels := []string{}
	scores := []float64{}
	for _, style := range s.styles {
		if strings.Contains(q, style) {
			labels = append(labels, style)
			scores = append(scores, styleKeywordScore)
		}
	}

	return map[string]interface{}{
		"labels": labels,
		"scores": scores,
	}
}
