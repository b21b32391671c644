package model

import "time"

// Config is the complete pipeline configuration
type Config struct {
	Sources     []SourceSpec      `json:"sources" yaml:"sources" mapstructure:"sources"`
	Segmenter   SegmenterConfig   `json:"segmenter" yaml:"segmenter" mapstructure:"segmenter"`
	Extraction  ExtractionConfig  `json:"extraction" yaml:"extraction" mapstructure:"extraction"`
	Cache       CacheConfig       `json:"cache" yaml:"cache" mapstructure:"cache"`
	Output      OutputConfig      `json:"output" yaml:"output" mapstructure:"output"`
	Concurrency ConcurrencyConfig `json:"concurrency" yaml:"concurrency" mapstructure:"concurrency"`
}

// SegmenterConfig holds the structural heuristic thresholds
type SegmenterConfig struct {
	MinContentTree       int `json:"min_content_tree" yaml:"min_content_tree" mapstructure:"min_content_tree"`             // Records below this are noise (Tree of Souls)
	MinContentLegends    int `json:"min_content_legends" yaml:"min_content_legends" mapstructure:"min_content_legends"`    // Records below this are noise (Legends)
	CommentaryMinContent int `json:"commentary_min_content" yaml:"commentary_min_content" mapstructure:"commentary_min_content"` // Content length before a lead-in may open commentary
}

// ExtractionConfig points at optional vocabulary override files
type ExtractionConfig struct {
	TaxonomyFile string `json:"taxonomy_file,omitempty" yaml:"taxonomy_file,omitempty" mapstructure:"taxonomy_file"` // YAML theme taxonomy replacing the built-in one
	OCRFixesFile string `json:"ocr_fixes_file,omitempty" yaml:"ocr_fixes_file,omitempty" mapstructure:"ocr_fixes_file"`
}

// CacheConfig controls the segmentation result cache
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `json:"dir" yaml:"dir" mapstructure:"dir"`
	TTL     time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`
}

// OutputConfig controls where and how the corpus is written
type OutputConfig struct {
	Path       string `json:"path" yaml:"path" mapstructure:"path"`
	Pretty     bool   `json:"pretty" yaml:"pretty" mapstructure:"pretty"`
	SQLitePath string `json:"sqlite_path,omitempty" yaml:"sqlite_path,omitempty" mapstructure:"sqlite_path"`
	Verbose    bool   `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}

// ConcurrencyConfig controls parallel segmentation
type ConcurrencyConfig struct {
	SegmentWorkers int `json:"segment_workers" yaml:"segment_workers" mapstructure:"segment_workers"`
}

// DefaultConfig returns the standard configuration. The Legends start
// markers and offsets are corpus-specific and deliberately configuration,
// not constants.
func DefaultConfig() *Config {
	return &Config{
		Sources: []SourceSpec{
			{Work: SourceTreeOfSouls, Kind: KindTreeOfSouls, Path: "tree-of-souls.txt"},
			{Work: SourceLegendsVolOne, Kind: KindLegends, Path: "legends-vol-1.txt", Volume: 1, StartMarker: "*** START OF", StartOffset: 0},
			{Work: SourceLegendsVolTwo, Kind: KindLegends, Path: "legends-vol-2.txt", Volume: 2, StartMarker: "*** START OF", StartOffset: 0},
		},
		Segmenter: SegmenterConfig{
			MinContentTree:       50,
			MinContentLegends:    100,
			CommentaryMinContent: 300,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".aggadah-cache",
			TTL:     24 * time.Hour,
		},
		Output: OutputConfig{
			Path:   "myths-database.json",
			Pretty: false,
		},
		Concurrency: ConcurrencyConfig{
			SegmentWorkers: 3,
		},
	}
}

// SpecFor returns the configured SourceSpec for the given work, if any
func (c *Config) SpecFor(work Source) (SourceSpec, bool) {
	for _, s := range c.Sources {
		if s.Work == work {
			return s, true
		}
	}
	return SourceSpec{}, false
}
