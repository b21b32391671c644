package pipeline

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mythindex/aggadah/internal/model"
)

// Aggregate merges the per-source record sets in fixed source order,
// recomputes the frequency statistics from scratch, and derives the filter
// vocabularies the browsing application treats as authoritative. Every
// theme and book listed has a nonzero count, and vice versa.
func Aggregate(bySource map[model.Source][]model.MythRecord) *model.Corpus {
	var myths []model.MythRecord
	for _, src := range model.AllSources {
		myths = append(myths, bySource[src]...)
	}

	stats := model.Stats{
		Total:     len(myths),
		BySources: make(map[model.Source]int, len(model.AllSources)),
		Themes:    make(map[string]int),
		Books:     make(map[string]int),
	}
	for _, src := range model.AllSources {
		stats.BySources[src] = len(bySource[src])
	}
	for _, m := range myths {
		for _, th := range m.Themes {
			stats.Themes[th]++
		}
		if m.Book != "" {
			stats.Books[m.Book]++
		}
	}

	themes := make([]string, 0, len(stats.Themes))
	for th := range stats.Themes {
		themes = append(themes, th)
	}
	sort.Slice(themes, func(i, j int) bool {
		if stats.Themes[themes[i]] != stats.Themes[themes[j]] {
			return stats.Themes[themes[i]] > stats.Themes[themes[j]]
		}
		return themes[i] < themes[j] // Deterministic tie-break
	})

	books := make([]string, 0, len(stats.Books))
	for b := range stats.Books {
		books = append(books, b)
	}
	sort.Strings(books)

	return &model.Corpus{
		Metadata: model.Metadata{
			Generated: time.Now().UTC(),
			Version:   model.SchemaVersion,
			RunID:     uuid.NewString(),
			Stats:     stats,
			FilterOptions: model.FilterOptions{
				Sources: append([]model.Source(nil), model.AllSources...),
				Themes:  themes,
				Books:   books,
			},
		},
		Myths: myths,
	}
}
