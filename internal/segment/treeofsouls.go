package segment

import (
	"regexp"
	"strings"

	"github.com/mythindex/aggadah/internal/model"
	"github.com/mythindex/aggadah/internal/textutil"
)

// treeMode is the tagged state of the Tree of Souls machine
type treeMode int

const (
	treeSeeking    treeMode = iota // Between structural units, nothing accumulating
	treeContent                    // Accumulating primary narrative
	treeCommentary                 // Accumulating editorial analysis
	treeSources                    // Accumulating citation lines
	treeSkip                       // Inside a "Studies" block, discarded
)

var (
	treeBookHeader    = regexp.MustCompile(`^BOOK (ONE|TWO|THREE|FOUR|FIVE|SIX|SEVEN|EIGHT|NINE|TEN)$`)
	treeBookSubtitle  = regexp.MustCompile(`^MYTHS (OF|ABOUT) `)
	treeNumbered      = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
	treeRunningHeader = regexp.MustCompile(`^\d+\s+MYTHS OF`)
	treeSourcesHeader = regexp.MustCompile(`^Sources:?\s*$`)
	treeStudiesHeader = regexp.MustCompile(`^Studies:?\s*$`)
)

// commentaryLeadIns open editorial analysis once enough narrative has
// accumulated. The set is closed on purpose: a length threshold plus these
// phrases keeps in-narrative dialogue out of the commentary field.
var commentaryLeadIns = []string{
	"This myth",
	"This story",
	"This legend",
	"According to",
	"The idea",
	"The notion",
	"The concept",
	"The theme",
	"The motif",
	"Here the",
	"In this myth",
	"Note that",
}

// TreeSegmenter recovers Book / Section / numbered-myth structure from the
// single-volume anthology. Capitalization and numbering are the only
// structural signals the scan offers.
type TreeSegmenter struct {
	minContent    int
	commentaryMin int
	ocrFixes      []textutil.Substitution
}

// NewTreeSegmenter builds a segmenter with the given thresholds. A nil
// fixes list means the built-in OCR repairs.
func NewTreeSegmenter(cfg model.SegmenterConfig, fixes []textutil.Substitution) *TreeSegmenter {
	return &TreeSegmenter{
		minContent:    cfg.MinContentTree,
		commentaryMin: cfg.CommentaryMinContent,
		ocrFixes:      fixes,
	}
}

// treeMachine holds the machine state for one document pass
type treeMachine struct {
	seg     *TreeSegmenter
	mode    treeMode
	book    string
	section string
	current *Draft
	drafts  []Draft

	lines []string
	i     int // Index of the line being dispatched
}

// Segment runs the state machine over the whole document and returns the
// surviving drafts in order. found reports whether any book header was
// located; when false no records were produced and the document likely is
// not the expected anthology.
func (s *TreeSegmenter) Segment(text string) (drafts []Draft, found bool) {
	m := &treeMachine{
		seg:   s,
		mode:  treeSeeking,
		lines: splitLines(text),
	}

	for m.i = 0; m.i < len(m.lines); m.i++ {
		line := strings.TrimSpace(s.fix(m.lines[m.i]))
		if line == "" {
			continue
		}
		m.dispatch(line)
		if m.book != "" {
			found = true
		}
	}
	m.flush()

	return m.drafts, found
}

func (s *TreeSegmenter) fix(line string) string {
	if s.ocrFixes != nil {
		return textutil.FixOCRErrorsWith(line, s.ocrFixes)
	}
	return textutil.FixOCRErrors(line)
}

// dispatch routes one non-empty line. The checks run in priority order;
// the first match wins.
func (m *treeMachine) dispatch(line string) {
	switch {
	case m.isNoise(line):
		// Page folios, list numerals, running headers: no state change

	case treeBookHeader.MatchString(line):
		m.flush()
		m.book = textutil.TitleCase(line)
		if sub, ok := m.peekSubtitle(); ok {
			m.book += ": " + textutil.TitleCase(sub)
		}
		m.section = ""
		m.mode = treeSeeking

	case m.isSectionHeading(line):
		m.flush()
		m.section = textutil.TitleCase(line)
		m.mode = treeSeeking

	case m.isNumberedHeading(line):
		m.flush()
		sub := treeNumbered.FindStringSubmatch(line)
		m.current = &Draft{
			Number:  atoi(sub[1]),
			Title:   textutil.TitleCase(sub[2]),
			Book:    m.book,
			Section: m.section,
			Work:    model.SourceTreeOfSouls,
		}
		m.mode = treeContent

	case treeSourcesHeader.MatchString(line):
		m.mode = treeSources

	case treeStudiesHeader.MatchString(line):
		m.mode = treeSkip

	case m.current != nil && m.mode != treeSeeking && m.mode != treeSkip:
		m.accumulate(line)
	}
}

// isNoise drops the typographic debris OCR leaves between records
func (m *treeMachine) isNoise(line string) bool {
	return textutil.IsNumericOnly(line) ||
		textutil.IsRomanNumeral(line) ||
		line == "CONTENTS" ||
		treeRunningHeader.MatchString(line)
}

// isSectionHeading recognizes an all-caps section label. A current book is
// required so front-matter caps lines never open a section.
func (m *treeMachine) isSectionHeading(line string) bool {
	if m.book == "" {
		return false
	}
	if len(line) < 6 || len(line) > 59 {
		return false
	}
	if !textutil.IsAllUpper(line) {
		return false
	}
	if treeNumbered.MatchString(line) || treeBookHeader.MatchString(line) {
		return false
	}
	if treeSourcesHeader.MatchString(line) || treeStudiesHeader.MatchString(line) {
		return false
	}
	return true
}

// isNumberedHeading recognizes "<n>. TITLE IN CAPS"
func (m *treeMachine) isNumberedHeading(line string) bool {
	sub := treeNumbered.FindStringSubmatch(line)
	if sub == nil {
		return false
	}
	return textutil.IsAllUpper(sub[2])
}

// peekSubtitle absorbs a "MYTHS OF/ABOUT ..." line that immediately follows
// a book header, advancing past it when found.
func (m *treeMachine) peekSubtitle() (string, bool) {
	for j := m.i + 1; j < len(m.lines); j++ {
		next := strings.TrimSpace(m.seg.fix(m.lines[j]))
		if next == "" {
			continue
		}
		if treeBookSubtitle.MatchString(next) {
			m.i = j
			return next, true
		}
		return "", false
	}
	return "", false
}

// accumulate buffers a body line under the current sub-mode
func (m *treeMachine) accumulate(line string) {
	if m.mode == treeSources {
		for _, frag := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';'
		}) {
			frag = strings.TrimSpace(frag)
			if len(frag) > 2 {
				m.current.Sources = append(m.current.Sources, frag)
			}
		}
		return
	}

	if m.mode == treeContent && m.startsCommentary(line) {
		// Permanent for this record: analysis never returns to narrative
		m.mode = treeCommentary
	}

	if m.mode == treeCommentary {
		m.current.CommentaryLines = append(m.current.CommentaryLines, line)
	} else {
		m.current.ContentLines = append(m.current.ContentLines, line)
	}
}

// startsCommentary applies the analytical lead-in heuristic. Quotation
// marks and speech verbs on the candidate line veto the switch so dialogue
// stays in the narrative.
func (m *treeMachine) startsCommentary(line string) bool {
	if len(m.current.Content()) <= m.seg.commentaryMin {
		return false
	}

	matched := false
	for _, lead := range commentaryLeadIns {
		if strings.HasPrefix(line, lead) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	if strings.ContainsAny(line, `"“”`) {
		return false
	}
	lower := strings.ToLower(line)
	if strings.Contains(lower, "said") || strings.Contains(lower, "spoke") {
		return false
	}
	return true
}

// flush closes the in-progress record, keeping it only when its narrative
// exceeds the minimum length, and returns the machine to seeking.
func (m *treeMachine) flush() {
	if m.current != nil && len(m.current.Content()) > m.seg.minContent {
		m.drafts = append(m.drafts, *m.current)
	}
	m.current = nil
	m.mode = treeSeeking
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
