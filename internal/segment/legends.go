package segment

import (
	"regexp"
	"strings"

	"github.com/mythindex/aggadah/internal/model"
	"github.com/mythindex/aggadah/internal/textutil"
)

var (
	// The two volumes number their chapters I through VIII
	legendsChapter  = regexp.MustCompile(`^(VIII|VII|VI|V|IV|III|II|I)$`)
	legendsFootnote = regexp.MustCompile(`\[\d+\]`)
)

// chapterTitleLookahead is how many lines past a chapter numeral the
// machine scans for the all-caps chapter title.
const chapterTitleLookahead = 4

// LegendsSegmenter recovers Chapter(Roman numeral) / titled-section
// structure from one volume of the two-volume anthology. Simpler than the
// Tree of Souls machine: no commentary or sources sub-modes exist in this
// layout, and footnote markers are stripped from the narrative.
type LegendsSegmenter struct {
	minContent int
	ocrFixes   []textutil.Substitution
}

// NewLegendsSegmenter builds a segmenter with the given thresholds
func NewLegendsSegmenter(cfg model.SegmenterConfig, fixes []textutil.Substitution) *LegendsSegmenter {
	return &LegendsSegmenter{
		minContent: cfg.MinContentLegends,
		ocrFixes:   fixes,
	}
}

// Segment runs the machine over one volume. The Gutenberg-style scans open
// with hundreds of lines of front matter, so content starts at the first
// line at or past spec.StartOffset that contains spec.StartMarker; found is
// false (and no records are produced) when the marker never appears.
func (s *LegendsSegmenter) Segment(text string, spec model.SourceSpec) (drafts []Draft, found bool) {
	lines := splitLines(text)

	start := 0
	if spec.StartMarker != "" {
		start = -1
		for i := spec.StartOffset; i < len(lines); i++ {
			if strings.Contains(lines[i], spec.StartMarker) {
				start = i
				break
			}
		}
		if start < 0 {
			return nil, false
		}
	}

	var (
		chapter string
		current *Draft
	)

	flush := func() {
		if current != nil && len(current.Content()) > s.minContent {
			drafts = append(drafts, *current)
		}
		current = nil
	}

	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(s.fix(lines[i]))
		if line == "" || textutil.IsNumericOnly(line) {
			continue
		}
		// Bare numerals outside the chapter range are page debris
		if textutil.IsRomanNumeral(line) && !legendsChapter.MatchString(line) {
			continue
		}

		if legendsChapter.MatchString(line) {
			flush()
			chapter = line
			// Pair the numeral with the first all-caps line among the next few
			for j := i + 1; j <= i+chapterTitleLookahead && j < len(lines); j++ {
				next := strings.TrimSpace(s.fix(lines[j]))
				if next == "" {
					continue
				}
				if textutil.IsAllUpper(next) && !legendsChapter.MatchString(next) {
					chapter = line + ". " + textutil.TitleCase(next)
					i = j
					break
				}
			}
			continue
		}

		if s.isTitleLine(line, chapter) {
			flush()
			current = &Draft{
				Title:  textutil.TitleCase(line),
				Book:   chapter,
				Work:   spec.Work,
				Volume: spec.Volume,
			}
			continue
		}

		if current != nil {
			body := strings.TrimSpace(legendsFootnote.ReplaceAllString(line, ""))
			if body != "" {
				current.ContentLines = append(current.ContentLines, body)
			}
		}
	}
	flush()

	return drafts, true
}

func (s *LegendsSegmenter) fix(line string) string {
	if s.ocrFixes != nil {
		return textutil.FixOCRErrorsWith(line, s.ocrFixes)
	}
	return textutil.FixOCRErrors(line)
}

// isTitleLine recognizes an all-caps record title. A current chapter is
// required, and horizontal rules ("***") never qualify.
func (s *LegendsSegmenter) isTitleLine(line, chapter string) bool {
	if chapter == "" {
		return false
	}
	if len(line) < 6 || len(line) > 79 {
		return false
	}
	if strings.Contains(line, "***") {
		return false
	}
	if !textutil.IsAllUpper(line) {
		return false
	}
	return !legendsChapter.MatchString(line)
}
