package model

import "time"

// Corpus is the assembled database handed to the browsing application
type Corpus struct {
	Metadata Metadata     `json:"metadata"`
	Myths    []MythRecord `json:"myths"`
}

// Metadata is the envelope around the record list
type Metadata struct {
	Generated     time.Time     `json:"generated"`
	Version       string        `json:"version"`
	RunID         string        `json:"runId"`
	Stats         Stats         `json:"stats"`
	FilterOptions FilterOptions `json:"filterOptions"`
}

// Stats holds the frequency histograms, recomputed in full on every run
type Stats struct {
	Total     int            `json:"total"`
	BySources map[Source]int `json:"bySources"`
	Themes    map[string]int `json:"themes"` // Records containing each theme
	Books     map[string]int `json:"books"`  // Records carrying each book label
}

// FilterOptions is the authoritative vocabulary for the consumer's filter
// controls. Every value listed has a nonzero count in Stats and vice versa.
type FilterOptions struct {
	Sources []Source `json:"sources"` // Fixed enumeration order
	Themes  []string `json:"themes"`  // Descending frequency, ties lexicographic
	Books   []string `json:"books"`   // Lexicographic
}

// SchemaVersion is written to every corpus envelope
const SchemaVersion = "1.0"
