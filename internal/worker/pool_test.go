package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/mythindex/aggadah/internal/model"
)

type stubSegmenter struct {
	fail model.Source
}

func (s *stubSegmenter) SegmentSource(_ context.Context, spec model.SourceSpec) ([]model.MythRecord, error) {
	if spec.Work == s.fail {
		return nil, errors.New("boom")
	}
	return []model.MythRecord{{ID: string(spec.Work) + "-rec", SourceWork: spec.Work}}, nil
}

func TestSourceProcessor_AllSources(t *testing.T) {
	specs := []model.SourceSpec{
		{Work: model.SourceTreeOfSouls},
		{Work: model.SourceLegendsVolOne},
		{Work: model.SourceLegendsVolTwo},
	}

	proc := NewSourceProcessor(&stubSegmenter{}, 2)
	results := proc.Process(context.Background(), specs)

	if len(results) != len(specs) {
		t.Fatalf("expected %d results, got %d", len(specs), len(results))
	}

	var works []string
	for _, r := range results {
		if r.Failed() != nil {
			t.Errorf("%s: unexpected error: %v", r.Spec.Work, r.Err)
		}
		if len(r.Records) != 1 {
			t.Errorf("%s: expected 1 record, got %d", r.Spec.Work, len(r.Records))
		}
		works = append(works, string(r.Spec.Work))
	}

	sort.Strings(works)
	want := []string{"legends-vol-1", "legends-vol-2", "tree-of-souls"}
	for i := range want {
		if works[i] != want[i] {
			t.Errorf("missing result for %s (got %v)", want[i], works)
		}
	}
}

func TestSourceProcessor_ErrorSurfaces(t *testing.T) {
	specs := []model.SourceSpec{
		{Work: model.SourceTreeOfSouls},
		{Work: model.SourceLegendsVolOne},
	}

	proc := NewSourceProcessor(&stubSegmenter{fail: model.SourceLegendsVolOne}, 2)
	results := proc.Process(context.Background(), specs)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	failed := 0
	for _, r := range results {
		if r.Failed() != nil {
			failed++
			if r.Spec.Work != model.SourceLegendsVolOne {
				t.Errorf("wrong source failed: %s", r.Spec.Work)
			}
		}
	}
	if failed != 1 {
		t.Errorf("expected exactly 1 failure, got %d", failed)
	}
}

func TestSourceProcessor_ManyJobsFewWorkers(t *testing.T) {
	var specs []model.SourceSpec
	for i := 0; i < 20; i++ {
		specs = append(specs, model.SourceSpec{Work: model.Source(fmt.Sprintf("w-%02d", i))})
	}

	proc := NewSourceProcessor(&stubSegmenter{}, 2)
	results := proc.Process(context.Background(), specs)

	if len(results) != 20 {
		t.Fatalf("expected 20 results, got %d", len(results))
	}
}

func TestSourceProcessor_Empty(t *testing.T) {
	proc := NewSourceProcessor(&stubSegmenter{}, 2)
	if results := proc.Process(context.Background(), nil); results != nil {
		t.Errorf("expected nil results, got %v", results)
	}
}
