package segment

import (
	"strings"
	"testing"

	"github.com/mythindex/aggadah/internal/model"
)

func legendsSpec() model.SourceSpec {
	return model.SourceSpec{
		Work:        model.SourceLegendsVolOne,
		Kind:        model.KindLegends,
		Volume:      1,
		StartMarker: "START OF LEGENDS",
		StartOffset: 3,
	}
}

const legendsBody = "On the first day of creation the light shone from one end of the world to the other, and the generations to come were shown to the first man, every one of them in turn, with all their deeds and all their days."

func TestLegendsSegmenter_ChapterAndRecord(t *testing.T) {
	input := strings.Join([]string{
		"The Library of Legends, Volume One",
		"front matter line",
		"table of contents",
		"START OF LEGENDS",
		"I",
		"",
		"THE CREATION OF THE WORLD",
		"",
		"THE FIRST THINGS CREATED",
		legendsBody + " [1]",
		"And the light of those days endures for the righteous in the world to come.",
		"THE ALPHABET PLEADS ITS CASE",
		legendsBody,
	}, "\n")

	seg := NewLegendsSegmenter(testSegmenterConfig(), nil)
	drafts, found := seg.Segment(input, legendsSpec())
	if !found {
		t.Fatal("expected content start marker to be found")
	}
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}

	first := drafts[0]
	if first.Book != "I. The Creation Of The World" {
		t.Errorf("book = %q", first.Book)
	}
	if first.Title != "The First Things Created" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Section != "" {
		t.Errorf("legends records carry no section, got %q", first.Section)
	}
	if first.Number != 0 {
		t.Errorf("legends records carry no number, got %d", first.Number)
	}
	if strings.Contains(first.Content(), "[1]") {
		t.Error("footnote marker not stripped from content")
	}
	if !strings.Contains(first.Content(), "endures for the righteous") {
		t.Errorf("content truncated: %q", first.Content())
	}

	if drafts[1].Title != "The Alphabet Pleads Its Case" {
		t.Errorf("second title = %q", drafts[1].Title)
	}
}

func TestLegendsSegmenter_MarkerRespectsOffset(t *testing.T) {
	// The marker text also appears before the offset; segmentation must
	// start at the occurrence past it.
	input := strings.Join([]string{
		"CONTENTS: START OF LEGENDS .... 3", // line 0, inside front matter
		"filler",
		"filler",
		"START OF LEGENDS",
		"I",
		"THE CREATION OF THE WORLD",
		"THE SIX DAYS RETOLD HERE",
		legendsBody,
	}, "\n")

	seg := NewLegendsSegmenter(testSegmenterConfig(), nil)
	drafts, found := seg.Segment(input, legendsSpec())
	if !found {
		t.Fatal("expected marker past the offset to be found")
	}
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Title != "The Six Days Retold Here" {
		t.Errorf("title = %q", drafts[0].Title)
	}
}

func TestLegendsSegmenter_StructureNotFound(t *testing.T) {
	seg := NewLegendsSegmenter(testSegmenterConfig(), nil)
	drafts, found := seg.Segment("plain text with no marker\nat all\n", legendsSpec())
	if found {
		t.Error("expected found=false when the marker is missing")
	}
	if drafts != nil {
		t.Errorf("expected nil drafts, got %v", drafts)
	}
}

func TestLegendsSegmenter_ShortRecordDiscarded(t *testing.T) {
	input := strings.Join([]string{
		"x", "x", "x",
		"START OF LEGENDS",
		"I",
		"THE CREATION OF THE WORLD",
		"A SHORT STUB ENTRY",
		"Under one hundred characters of narrative.",
	}, "\n")

	seg := NewLegendsSegmenter(testSegmenterConfig(), nil)
	drafts, found := seg.Segment(input, legendsSpec())
	if !found {
		t.Fatal("expected marker to be found")
	}
	if len(drafts) != 0 {
		t.Errorf("expected stub to be discarded, got %d drafts", len(drafts))
	}
}

func TestLegendsSegmenter_NoiseAndRuleLines(t *testing.T) {
	input := strings.Join([]string{
		"x", "x", "x",
		"START OF LEGENDS",
		"I",
		"THE CREATION OF THE WORLD",
		"THE SEVEN HEAVENS DESCRIBED",
		legendsBody,
		"214",
		"iv",
		"*** END OF SECTION MARKER RULE ***",
		"and the story continued past the page break without interruption.",
	}, "\n")

	seg := NewLegendsSegmenter(testSegmenterConfig(), nil)
	drafts, _ := seg.Segment(input, legendsSpec())

	// The horizontal-rule line never starts a record; only one draft exists.
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	content := drafts[0].Content()
	if strings.Contains(content, "214") || strings.Contains(content, " iv ") {
		t.Errorf("numeric/roman noise leaked into content: %q", content)
	}
	if !strings.Contains(content, "continued past the page break") {
		t.Errorf("content after rule line missing: %q", content)
	}
}

func TestLegendsSegmenter_ChapterWithoutTitleLine(t *testing.T) {
	input := strings.Join([]string{
		"x", "x", "x",
		"START OF LEGENDS",
		"II",
		"this chapter has no caps title within reach",
		"lowercase filler",
		"another filler",
		"yet another",
		"THE NAMELESS CHAPTER ENTRY",
		legendsBody,
	}, "\n")

	seg := NewLegendsSegmenter(testSegmenterConfig(), nil)
	drafts, _ := seg.Segment(input, legendsSpec())
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Book != "II" {
		t.Errorf("book = %q, want bare numeral when no title pairs", drafts[0].Book)
	}
	if drafts[0].Title != "The Nameless Chapter Entry" {
		t.Errorf("title = %q", drafts[0].Title)
	}
}
