package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mythindex/aggadah/internal/model"
	"github.com/mythindex/aggadah/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	segmentOut     string
	segmentPretty  bool
	segmentNoCache bool
	segmentTimeout time.Duration
)

// segmentCmd represents the segment command
var segmentCmd = &cobra.Command{
	Use:   "segment <work> <file>",
	Short: "Segment a single source document and write its records",
	Long: `Segment runs one source through its segmenter in isolation:
- Read the transcription from the given file
- Segment it along the work's structural conventions
- Normalize, tag, and write the finalized records as a JSON array

The work argument selects the segmenter and must be one of:
  tree-of-souls, legends-vol-1, legends-vol-2

Example:
  aggadah segment tree-of-souls tree-of-souls.txt
  aggadah segment legends-vol-1 vol1.txt --out vol1-records.json --pretty`,
	Args: cobra.ExactArgs(2),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)

	segmentCmd.Flags().StringVar(&segmentOut, "out", "records.json", "output JSON path")
	segmentCmd.Flags().BoolVar(&segmentPretty, "pretty", false, "indent the output JSON")
	segmentCmd.Flags().BoolVar(&segmentNoCache, "no-cache", false, "disable cache (force fresh segmentation)")
	segmentCmd.Flags().DurationVar(&segmentTimeout, "timeout", 2*time.Minute, "segmentation timeout")
}

func runSegment(cmd *cobra.Command, args []string) error {
	work := model.Source(args[0])
	path := args[1]

	ctx, cancel := context.WithTimeout(context.Background(), segmentTimeout)
	defer cancel()

	cfg := configFromViper()
	cfg.Cache.Enabled = !segmentNoCache
	cfg.Output.Verbose = verbose

	spec, ok := cfg.SpecFor(work)
	if !ok {
		return fmt.Errorf("unknown source work %q (expected one of: %s, %s, %s)",
			args[0], model.SourceTreeOfSouls, model.SourceLegendsVolOne, model.SourceLegendsVolTwo)
	}
	spec.Path = path

	if verbose {
		fmt.Fprintf(os.Stderr, "Segmenting: %s\n", path)
		fmt.Fprintf(os.Stderr, "Work: %s\n", work)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("configure pipeline: %w", err)
	}

	records, err := p.SegmentSource(ctx, spec)
	if err != nil {
		return fmt.Errorf("segment failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d records\n", len(records))
		fmt.Fprintln(os.Stderr)
	}

	if err := pipeline.WriteRecords(records, segmentOut, segmentPretty); err != nil {
		return fmt.Errorf("write records: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ %s: %d records written to %s\n", work, len(records), segmentOut)

	return nil
}
