package segment

import (
	"strings"

	"github.com/mythindex/aggadah/internal/extract"
	"github.com/mythindex/aggadah/internal/model"
	"github.com/mythindex/aggadah/internal/textutil"
)

// Finalizer converts surviving drafts into finished records: cleans the
// text fields, runs the annotators, filters degenerate sources, and assigns
// the stable identifier. Records are never mutated after this step.
type Finalizer struct {
	refs   *extract.ReferenceExtractor
	themes *extract.ThemeTagger
	cfg    model.SegmenterConfig
}

// NewFinalizer wires the two annotators to the finalization step
func NewFinalizer(refs *extract.ReferenceExtractor, themes *extract.ThemeTagger, cfg model.SegmenterConfig) *Finalizer {
	return &Finalizer{refs: refs, themes: themes, cfg: cfg}
}

// Finalize produces the finished record. ok is false when cleaning leaves
// the narrative at or below the source's minimum length; such records are
// noise and never reach the corpus.
func (f *Finalizer) Finalize(d Draft) (model.MythRecord, bool) {
	content := textutil.CleanText(d.Content())
	commentary := textutil.CleanText(d.Commentary())

	if len(content) <= f.minFor(d.Work) {
		return model.MythRecord{}, false
	}

	// Tree of Souls annotates over the unioned text; Legends over the
	// narrative alone. The asymmetry is deliberate and preserved.
	annotate := content
	if d.Work == model.SourceTreeOfSouls {
		annotate = strings.TrimSpace(d.Title + " " + content + " " + commentary)
	}

	var sources []string
	for _, s := range d.Sources {
		if len(strings.TrimSpace(s)) > 2 {
			sources = append(sources, strings.TrimSpace(s))
		}
	}

	return model.MythRecord{
		ID:                 f.recordID(d),
		Number:             d.Number,
		Title:              d.Title,
		Content:            content,
		Commentary:         commentary,
		Sources:            sources,
		Book:               d.Book,
		Section:            d.Section,
		SourceWork:         d.Work,
		BiblicalReferences: f.refs.Extract(annotate),
		Themes:             f.themes.Tag(annotate),
	}, true
}

// FinalizeAll finalizes a segmenter's drafts in order, dropping noise
func (f *Finalizer) FinalizeAll(drafts []Draft) []model.MythRecord {
	records := make([]model.MythRecord, 0, len(drafts))
	for _, d := range drafts {
		if rec, ok := f.Finalize(d); ok {
			records = append(records, rec)
		}
	}
	return records
}

func (f *Finalizer) minFor(work model.Source) int {
	if work == model.SourceTreeOfSouls {
		return f.cfg.MinContentTree
	}
	return f.cfg.MinContentLegends
}

// recordID derives the stable slug from source tag and title. The volume
// tag is already part of the Legends source names, so sufficiently similar
// titles within one source can still collide; collisions are intentionally
// left unresolved.
func (f *Finalizer) recordID(d Draft) string {
	return textutil.Slugify(string(d.Work) + "-" + d.Title)
}
