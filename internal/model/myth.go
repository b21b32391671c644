package model

// MythRecord is one finalized unit of extracted narrative content
type MythRecord struct {
	ID                 string   `json:"id"`                           // Stable slug: source tag + normalized title
	Number             int      `json:"number,omitempty"`             // Sequence number from the numbered heading (Tree of Souls only)
	Title              string   `json:"title"`                        // Title-cased heading
	Content            string   `json:"content"`                      // Primary narrative text
	Commentary         string   `json:"commentary,omitempty"`         // Editorial analysis (Tree of Souls only)
	Sources            []string `json:"sources,omitempty"`            // Citations from a "Sources" sub-section (Tree of Souls only)
	Book               string   `json:"book,omitempty"`               // Book/chapter label inherited from the last heading
	Section            string   `json:"section,omitempty"`            // Section label, reset on every new book
	SourceWork         Source   `json:"sourceWork"`                   // Which anthology/volume produced the record
	BiblicalReferences []string `json:"biblicalReferences,omitempty"` // Deduplicated canonical citations
	Themes             []string `json:"themes,omitempty"`             // Deduplicated fixed-taxonomy tags
}

// Source identifies which anthology/volume a record came from
type Source string

const (
	SourceTreeOfSouls   Source = "tree-of-souls"
	SourceLegendsVolOne Source = "legends-vol-1"
	SourceLegendsVolTwo Source = "legends-vol-2"
)

// AllSources lists the source works in their fixed corpus order.
// Records are concatenated and filter vocabularies emitted in this order.
var AllSources = []Source{
	SourceTreeOfSouls,
	SourceLegendsVolOne,
	SourceLegendsVolTwo,
}

// SourceKind selects which segmenter handles a source document
type SourceKind string

const (
	KindTreeOfSouls SourceKind = "tree"    // 4-mode segmenter with commentary/sources
	KindLegends     SourceKind = "legends" // Chapter/title segmenter with footnote stripping
)

// SourceSpec describes one input document to segment
type SourceSpec struct {
	Work        Source     `json:"work" yaml:"work" mapstructure:"work"`
	Kind        SourceKind `json:"kind" yaml:"kind" mapstructure:"kind"`
	Path        string     `json:"path" yaml:"path" mapstructure:"path"`
	Volume      int        `json:"volume,omitempty" yaml:"volume,omitempty" mapstructure:"volume"`            // Legends volume number, seeds record IDs
	StartMarker string     `json:"startMarker,omitempty" yaml:"start_marker,omitempty" mapstructure:"start_marker"` // Content-start marker (Legends only)
	StartOffset int        `json:"startOffset,omitempty" yaml:"start_offset,omitempty" mapstructure:"start_offset"` // Minimum line index before the marker counts
}
