package extract

import (
	"reflect"
	"testing"
)

func TestReferenceExtractor_ChapterAndVerse(t *testing.T) {
	e := NewReferenceExtractor()

	refs := e.Extract("In the beginning God created the heaven... Genesis 1:1")

	if !contains(refs, "Genesis 1:1") {
		t.Errorf("expected Genesis 1:1, got %v", refs)
	}
}

func TestReferenceExtractor_VerseRange(t *testing.T) {
	e := NewReferenceExtractor()

	refs := e.Extract("The serpent is cursed in Genesis 3:14-15 above all cattle.")

	if !contains(refs, "Genesis 3:14-15") {
		t.Errorf("expected Genesis 3:14-15, got %v", refs)
	}
}

func TestReferenceExtractor_AbbreviationPeriodStripped(t *testing.T) {
	e := NewReferenceExtractor()

	tests := []struct {
		in   string
		want string
	}{
		{"as told in Gen. 2:7", "Gen 2:7"},
		{"compare Deut. 6", "Deut 6"},
		{"see Ps. 104:2", "Ps 104:2"},
	}
	for _, tt := range tests {
		refs := e.Extract(tt.in)
		if !contains(refs, tt.want) {
			t.Errorf("Extract(%q): expected %q, got %v", tt.in, tt.want, refs)
		}
	}
}

func TestReferenceExtractor_BareBookName(t *testing.T) {
	e := NewReferenceExtractor()

	refs := e.Extract("a tradition preserved in the Zohar and the Talmud")

	if !contains(refs, "Zohar") || !contains(refs, "Talmud") {
		t.Errorf("expected bare Zohar and Talmud citations, got %v", refs)
	}
}

func TestReferenceExtractor_LongestNameWins(t *testing.T) {
	e := NewReferenceExtractor()

	refs := e.Extract("as expounded in Genesis Rabbah 8:1")

	if !contains(refs, "Genesis Rabbah 8:1") {
		t.Errorf("expected Genesis Rabbah 8:1, got %v", refs)
	}
	if contains(refs, "Genesis 8:1") {
		t.Errorf("Genesis must not shadow Genesis Rabbah: %v", refs)
	}
}

func TestReferenceExtractor_CaseInsensitiveCanonical(t *testing.T) {
	e := NewReferenceExtractor()

	refs := e.Extract("GENESIS 1:1 and genesis 1:1 and Genesis 1:1")

	want := []string{"Genesis 1:1"}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("expected single canonical citation %v, got %v", want, refs)
	}
}

func TestReferenceExtractor_DedupFirstSeenOrder(t *testing.T) {
	e := NewReferenceExtractor()

	refs := e.Extract("Exodus 3:2, then Isaiah 6:1, then Exodus 3:2 again")

	want := []string{"Exodus 3:2", "Isaiah 6:1"}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("expected %v, got %v", want, refs)
	}
}

func TestReferenceExtractor_NoMatch(t *testing.T) {
	e := NewReferenceExtractor()

	if refs := e.Extract("nothing scriptural here at all"); len(refs) != 0 {
		t.Errorf("expected no references, got %v", refs)
	}
	if refs := e.Extract(""); len(refs) != 0 {
		t.Errorf("expected no references for empty text, got %v", refs)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
