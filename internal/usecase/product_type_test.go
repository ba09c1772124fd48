package usecase

import (
	"reflect"
	"testing"

	"github.com/furnishly/backend/internal/domain"
)

func TestClassifyProductType(t *testing.T) {
	s := NewProductTypeService(false)

	t.Run("exact match scores full confidence", func(t *testing.T) {
		types, confidences, corrected := s.ClassifyProductType("modern sofa with storage")
		if !reflect.DeepEqual(types, []string{"Sofa"}) {
			t.Errorf("types = %v, want [Sofa]", types)
		}
		if !reflect.DeepEqual(confidences, []float64{1.0}) {
			t.Errorf("confidences = %v, want [1]", confidences)
		}
		if corrected != "modern sofa with storage" {
			t.Errorf("corrected = %q, want input unchanged", corrected)
		}
	})

	t.Run("synonyms fold onto the canonical type", func(t *testing.T) {
		types, _, _ := s.ClassifyProductType("grey couch")
		if !reflect.DeepEqual(types, []string{"Sofa"}) {
			t.Errorf("types = %v, want [Sofa]", types)
		}
	})

	t.Run("plurals resolve to the singular type", func(t *testing.T) {
		types, _, _ := s.ClassifyProductType("dining chairs")
		if !reflect.DeepEqual(types, []string{"Chair"}) {
			t.Errorf("types = %v, want [Chair]", types)
		}
	})

	t.Run("trailing punctuation is stripped", func(t *testing.T) {
		types, _, _ := s.ClassifyProductType("a desk, please")
		if !reflect.DeepEqual(types, []string{"Desk"}) {
			t.Errorf("types = %v, want [Desk]", types)
		}
	})

	t.Run("misspelling is corrected and scored by similarity", func(t *testing.T) {
		// "sofaa" is distance 1 from "sofa": similarity 4/5 = 0.8
		types, confidences, corrected := s.ClassifyProductType("sofaa with legs")
		if !reflect.DeepEqual(types, []string{"Sofa"}) {
			t.Errorf("types = %v, want [Sofa]", types)
		}
		if !reflect.DeepEqual(confidences, []float64{0.8}) {
			t.Errorf("confidences = %v, want [0.8]", confidences)
		}
		if corrected != "sofa with legs" {
			t.Errorf("corrected = %q, want %q", corrected, "sofa with legs")
		}
	})

	t.Run("duplicate types collapse", func(t *testing.T) {
		types, confidences, _ := s.ClassifyProductType("sofa couch")
		if !reflect.DeepEqual(types, []string{"Sofa"}) {
			t.Errorf("types = %v, want [Sofa]", types)
		}
		if len(confidences) != 1 {
			t.Errorf("confidences = %v, want one entry", confidences)
		}
	})

	t.Run("no match yields the unknown sentinel", func(t *testing.T) {
		types, confidences, corrected := s.ClassifyProductType("red thing")
		if !reflect.DeepEqual(types, []string{domain.UnknownProductType}) {
			t.Errorf("types = %v, want sentinel", types)
		}
		if confidences != nil {
			t.Errorf("confidences = %v, want nil", confidences)
		}
		if corrected != "red thing" {
			t.Errorf("corrected = %q, want input unchanged", corrected)
		}
	})

	t.Run("short tokens never trigger correction", func(t *testing.T) {
		// "bad" is distance 1 from "bed" but under the length floor
		types, _, corrected := s.ClassifyProductType("bad")
		if !reflect.DeepEqual(types, []string{domain.UnknownProductType}) {
			t.Errorf("types = %v, want sentinel", types)
		}
		if corrected != "bad" {
			t.Errorf("corrected = %q, want input unchanged", corrected)
		}
	})
}
