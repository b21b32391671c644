package extract

import "testing"

func TestThemeTagger_BasicTagging(t *testing.T) {
	tagger := NewThemeTagger()

	text := "In the beginning God created the heaven and the earth."
	themes := tagger.Tag(text)

	found := map[string]bool{}
	for _, th := range themes {
		found[th] = true
	}

	if !found["creation"] {
		t.Errorf("expected 'creation' theme, got %v", themes)
	}
	if !found["god"] {
		t.Errorf("expected 'god' theme, got %v", themes)
	}
}

func TestThemeTagger_CaseInsensitive(t *testing.T) {
	tagger := NewThemeTagger()

	themes := tagger.Tag("THE ANGEL GABRIEL APPEARED IN A DREAM")

	found := map[string]bool{}
	for _, th := range themes {
		found[th] = true
	}
	if !found["angels"] {
		t.Errorf("expected 'angels' theme, got %v", themes)
	}
	if !found["dreams"] {
		t.Errorf("expected 'dreams' theme, got %v", themes)
	}
}

func TestThemeTagger_NoDuplicates(t *testing.T) {
	tagger := NewThemeTagger()

	// Multiple keywords of the same theme must yield the theme once
	themes := tagger.Tag("an angel, a seraph, and the archangel Michael")

	count := 0
	for _, th := range themes {
		if th == "angels" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected 'angels' exactly once, got %d in %v", count, themes)
	}
}

func TestThemeTagger_EmptyAndMiss(t *testing.T) {
	tagger := NewThemeTagger()

	if themes := tagger.Tag(""); len(themes) != 0 {
		t.Errorf("expected no themes for empty text, got %v", themes)
	}
	if themes := tagger.Tag("zzz qqq xxx"); len(themes) != 0 {
		t.Errorf("expected no themes for unrelated text, got %v", themes)
	}
}

func TestThemeTagger_DeterministicOrder(t *testing.T) {
	tagger := NewThemeTagger()

	text := "the angel of death brought a dream about the garden of eden"
	first := tagger.Tag(text)
	for i := 0; i < 10; i++ {
		again := tagger.Tag(text)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed: %v vs %v", i, again, first)
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: order changed: %v vs %v", i, again, first)
			}
		}
	}
}

func TestThemeTagger_CustomTaxonomy(t *testing.T) {
	tagger := NewThemeTaggerWith([]Theme{
		{ID: "water", Keywords: []string{"FLOOD", "sea"}},
	})

	themes := tagger.Tag("the flood covered the earth")
	if len(themes) != 1 || themes[0] != "water" {
		t.Errorf("expected [water], got %v", themes)
	}
}
