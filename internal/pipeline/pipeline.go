// Package pipeline orchestrates the complete conversion: read each source
// document, segment it, finalize the records, and aggregate the corpus.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mythindex/aggadah/internal/cache"
	"github.com/mythindex/aggadah/internal/extract"
	"github.com/mythindex/aggadah/internal/model"
	"github.com/mythindex/aggadah/internal/segment"
	"github.com/mythindex/aggadah/internal/textutil"
	"github.com/mythindex/aggadah/internal/worker"
)

// Pipeline converts source documents into the myth corpus
type Pipeline struct {
	cfg       *model.Config
	tree      *segment.TreeSegmenter
	legends   *segment.LegendsSegmenter
	finalizer *segment.Finalizer
	cache     cache.Cache // nil when disabled
}

// New builds a pipeline from configuration, loading any vocabulary
// override files up front so a bad file fails the run before segmentation.
func New(cfg *model.Config) (*Pipeline, error) {
	var fixes []textutil.Substitution
	if cfg.Extraction.OCRFixesFile != "" {
		loaded, err := textutil.LoadOCRFixes(cfg.Extraction.OCRFixesFile)
		if err != nil {
			return nil, err
		}
		fixes = loaded
	}

	tagger := extract.NewThemeTagger()
	if cfg.Extraction.TaxonomyFile != "" {
		themes, err := extract.LoadTaxonomy(cfg.Extraction.TaxonomyFile)
		if err != nil {
			return nil, err
		}
		tagger = extract.NewThemeTaggerWith(themes)
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewLayered(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}

	return &Pipeline{
		cfg:       cfg,
		tree:      segment.NewTreeSegmenter(cfg.Segmenter, fixes),
		legends:   segment.NewLegendsSegmenter(cfg.Segmenter, fixes),
		finalizer: segment.NewFinalizer(extract.NewReferenceExtractor(), tagger, cfg.Segmenter),
		cache:     c,
	}, nil
}

// SegmentSource converts one source document into finalized records. A
// missing or unreadable file is fatal; a document without the expected
// structure only warns and yields zero records so the other sources still
// produce output.
func (p *Pipeline) SegmentSource(ctx context.Context, spec model.SourceSpec) ([]model.MythRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(spec.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", spec.Work, err)
	}
	text := string(data)

	key := cache.Key(string(spec.Work), text)
	if p.cache != nil {
		if raw, found := p.cache.Get(key); found {
			var records []model.MythRecord
			if err := json.Unmarshal(raw, &records); err == nil {
				return records, nil
			}
			// Corrupt entry: fall through and resegment
		}
	}

	records, err := p.segmentText(spec, text)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if raw, err := json.Marshal(records); err == nil {
			_ = p.cache.Set(key, raw, p.cfg.Cache.TTL)
		}
	}

	return records, nil
}

func (p *Pipeline) segmentText(spec model.SourceSpec, text string) ([]model.MythRecord, error) {
	var (
		drafts []segment.Draft
		found  bool
	)

	switch spec.Kind {
	case model.KindTreeOfSouls:
		drafts, found = p.tree.Segment(text)
	case model.KindLegends:
		drafts, found = p.legends.Segment(text, spec)
	default:
		return nil, fmt.Errorf("unknown source kind %q", spec.Kind)
	}

	if !found {
		fmt.Fprintf(os.Stderr, "Warning: %s: expected structure not found, yielding no records\n", spec.Work)
		return []model.MythRecord{}, nil
	}

	return p.finalizer.FinalizeAll(drafts), nil
}

// BuildCorpus segments every configured source concurrently and assembles
// the final database. Segmenters share no state, so the only coordination
// is the ordered merge at the end.
func (p *Pipeline) BuildCorpus(ctx context.Context) (*model.Corpus, error) {
	proc := worker.NewSourceProcessor(p, p.cfg.Concurrency.SegmentWorkers)
	results := proc.Process(ctx, p.cfg.Sources)

	// A canceled context makes the pool drop jobs and in-flight results.
	// A partial corpus must never be reported as a successful build.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build interrupted: %w", err)
	}
	if len(results) != len(p.cfg.Sources) {
		return nil, fmt.Errorf("segmented %d of %d sources", len(results), len(p.cfg.Sources))
	}

	bySource := make(map[model.Source][]model.MythRecord, len(results))
	for _, r := range results {
		if r.Err != nil {
			return nil, fmt.Errorf("segment %s: %w", r.Spec.Work, r.Err)
		}
		bySource[r.Spec.Work] = r.Records
	}

	return Aggregate(bySource), nil
}
