package matching

import "testing"

func TestLexicon(t *testing.T) {
	lexicon := NewLexicon()

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		for _, phrase := range []string{"metal legs", "Metal Legs", "METAL LEGS"} {
			feature, ok := lexicon.Lookup(phrase)
			if !ok {
				t.Fatalf("Lookup(%q) not found", phrase)
			}
			if feature != "metal legs" {
				t.Errorf("Lookup(%q) = %q, want %q", phrase, feature, "metal legs")
			}
		}
	})

	t.Run("unknown phrase misses", func(t *testing.T) {
		if _, ok := lexicon.Lookup("flux capacitor"); ok {
			t.Error("Lookup(unknown) found a feature")
		}
	})

	t.Run("every feature has exactly one category", func(t *testing.T) {
		for _, feature := range lexicon.Vocabulary() {
			category, ok := lexicon.Category(feature)
			if !ok || category == "" {
				t.Errorf("Category(%q) = %q, %v", feature, category, ok)
			}
		}
	})

	t.Run("vocabulary is sorted and complete", func(t *testing.T) {
		vocab := lexicon.Vocabulary()
		if len(vocab) != lexicon.Size() {
			t.Errorf("len(Vocabulary()) = %d, want %d", len(vocab), lexicon.Size())
		}
		for i := 1; i < len(vocab); i++ {
			if vocab[i-1] >= vocab[i] {
				t.Errorf("vocabulary not sorted at %d: %q >= %q", i, vocab[i-1], vocab[i])
			}
		}
	})

	t.Run("contains matches lookup", func(t *testing.T) {
		if !lexicon.Contains("L Shape") {
			t.Error("Contains(\"L Shape\") = false, want true")
		}
		if lexicon.Contains("spaceship") {
			t.Error("Contains(\"spaceship\") = true, want false")
		}
	})
}
