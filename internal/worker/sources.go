package worker

import (
	"context"

	"github.com/mythindex/aggadah/internal/model"
)

// Segmenter converts one source document into finalized records
type Segmenter interface {
	SegmentSource(ctx context.Context, spec model.SourceSpec) ([]model.MythRecord, error)
}

// SourceJob segments a single source document
type SourceJob struct {
	Spec      model.SourceSpec
	Segmenter Segmenter
}

// SourceResult pairs a source with its records or its failure
type SourceResult struct {
	Spec    model.SourceSpec
	Records []model.MythRecord
	Err     error
}

// Failed reports the job's error, if any
func (r *SourceResult) Failed() error {
	return r.Err
}

// Run executes the segmentation
func (j *SourceJob) Run(ctx context.Context) Result {
	records, err := j.Segmenter.SegmentSource(ctx, j.Spec)
	return &SourceResult{Spec: j.Spec, Records: records, Err: err}
}

// SourceProcessor segments several source documents concurrently
type SourceProcessor struct {
	segmenter   Segmenter
	concurrency int
}

// NewSourceProcessor wires a segmenter to a pool of the given size
func NewSourceProcessor(segmenter Segmenter, concurrency int) *SourceProcessor {
	return &SourceProcessor{segmenter: segmenter, concurrency: concurrency}
}

// Process segments every source and returns one result per source. Result
// order is not defined; callers key on the source work.
func (p *SourceProcessor) Process(ctx context.Context, specs []model.SourceSpec) []*SourceResult {
	if len(specs) == 0 {
		return nil
	}

	pool := NewPool(p.concurrency)
	pool.Start(ctx)

	go func() {
		for _, spec := range specs {
			pool.Submit(ctx, &SourceJob{Spec: spec, Segmenter: p.segmenter})
		}
		pool.CloseJobs()
	}()

	raw := pool.Collect()
	results := make([]*SourceResult, 0, len(raw))
	for _, r := range raw {
		if sr, ok := r.(*SourceResult); ok {
			results = append(results, sr)
		}
	}
	return results
}
