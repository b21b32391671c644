package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mythindex/aggadah/internal/model"
)

// WriteCorpus serializes the assembled database to path
func WriteCorpus(corpus *model.Corpus, path string, pretty bool) error {
	return writeJSON(corpus, path, pretty)
}

// WriteRecords serializes a single source's records to path, used by the
// segment command for inspecting one segmenter in isolation.
func WriteRecords(records []model.MythRecord, path string, pretty bool) error {
	return writeJSON(records, path, pretty)
}

func writeJSON(v any, path string, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
