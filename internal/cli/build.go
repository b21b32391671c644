package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mythindex/aggadah/internal/model"
	"github.com/mythindex/aggadah/internal/pipeline"
	"github.com/mythindex/aggadah/internal/store"
	"github.com/spf13/cobra"
)

var (
	outPath      string
	pretty       bool
	sqlitePath   string
	noCache      bool
	cacheDir     string
	concurrency  int
	buildTimeout time.Duration
	treePath     string
	legendsOne   string
	legendsTwo   string
	taxonomyFile string
	ocrFixesFile string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the full myth corpus from all configured sources",
	Long: `Build segments every configured source document in parallel:
- Read each transcription from disk
- Segment it along its structural conventions
- Normalize OCR artifacts, tag themes and biblical references
- Merge records in fixed source order with stats and filter vocabularies

Example:
  aggadah build --tree tree-of-souls.txt --legends-1 vol1.txt --legends-2 vol2.txt
  aggadah build --out corpus.json --pretty
  aggadah build --sqlite corpus.db --no-cache`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	// Output flags
	buildCmd.Flags().StringVar(&outPath, "out", "myths-database.json", "output JSON path")
	buildCmd.Flags().BoolVar(&pretty, "pretty", false, "indent the output JSON")
	buildCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "also export the corpus to a SQLite database at this path")

	// Source flags (default paths come from the config file)
	buildCmd.Flags().StringVar(&treePath, "tree", "", "path to the Tree of Souls transcription")
	buildCmd.Flags().StringVar(&legendsOne, "legends-1", "", "path to the Legends volume 1 transcription")
	buildCmd.Flags().StringVar(&legendsTwo, "legends-2", "", "path to the Legends volume 2 transcription")

	// Vocabulary overrides
	buildCmd.Flags().StringVar(&taxonomyFile, "taxonomy", "", "YAML theme taxonomy replacing the built-in one")
	buildCmd.Flags().StringVar(&ocrFixesFile, "ocr-fixes", "", "YAML OCR substitution list replacing the built-in one")

	// Cache and concurrency flags
	buildCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh segmentation)")
	buildCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "cache directory (default: .aggadah-cache)")
	buildCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of segmentation workers (default: one per source)")
	buildCmd.Flags().DurationVar(&buildTimeout, "timeout", 5*time.Minute, "total timeout for the build")
}

// buildConfig assembles the pipeline configuration from defaults, the config
// file loaded by viper, and flags, in ascending priority.
func buildConfig() *model.Config {
	cfg := configFromViper()

	cfg.Output.Path = outPath
	cfg.Output.Pretty = pretty
	cfg.Output.SQLitePath = sqlitePath
	cfg.Output.Verbose = verbose
	cfg.Cache.Enabled = !noCache
	if cacheDir != "" {
		cfg.Cache.Dir = cacheDir
	}
	if concurrency > 0 {
		cfg.Concurrency.SegmentWorkers = concurrency
	}
	if taxonomyFile != "" {
		cfg.Extraction.TaxonomyFile = taxonomyFile
	}
	if ocrFixesFile != "" {
		cfg.Extraction.OCRFixesFile = ocrFixesFile
	}

	overrides := map[model.Source]string{
		model.SourceTreeOfSouls:   treePath,
		model.SourceLegendsVolOne: legendsOne,
		model.SourceLegendsVolTwo: legendsTwo,
	}
	for i, spec := range cfg.Sources {
		if p := overrides[spec.Work]; p != "" {
			cfg.Sources[i].Path = p
		}
	}

	return cfg
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), buildTimeout)
	defer cancel()

	cfg := buildConfig()

	if verbose {
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
		fmt.Fprintf(os.Stderr, "  Aggadah Corpus Build\n")
		fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
		fmt.Fprintf(os.Stderr, "\n")
		for _, spec := range cfg.Sources {
			fmt.Fprintf(os.Stderr, "  %-14s %s\n", spec.Work+":", spec.Path)
		}
		fmt.Fprintf(os.Stderr, "  Workers:       %d\n", cfg.Concurrency.SegmentWorkers)
		fmt.Fprintf(os.Stderr, "  Cache:         %v\n", cfg.Cache.Enabled)
		fmt.Fprintf(os.Stderr, "  Output:        %s\n", cfg.Output.Path)
		fmt.Fprintf(os.Stderr, "\n")
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("configure pipeline: %w", err)
	}

	corpus, err := p.BuildCorpus(ctx)
	if err != nil {
		return fmt.Errorf("build corpus: %w", err)
	}

	if err := pipeline.WriteCorpus(corpus, cfg.Output.Path, cfg.Output.Pretty); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}

	if cfg.Output.SQLitePath != "" {
		if verbose {
			fmt.Fprintf(os.Stderr, "⚙️  Exporting to SQLite: %s\n", cfg.Output.SQLitePath)
		}
		if err := store.Export(ctx, cfg.Output.SQLitePath, corpus); err != nil {
			return fmt.Errorf("export sqlite: %w", err)
		}
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Build Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d myths\n", corpus.Metadata.Stats.Total)
	for _, src := range model.AllSources {
		fmt.Fprintf(os.Stderr, "  %-10s %d\n", src+":", corpus.Metadata.Stats.BySources[src])
	}
	fmt.Fprintf(os.Stderr, "  Themes:    %d\n", len(corpus.Metadata.FilterOptions.Themes))
	fmt.Fprintf(os.Stderr, "  Books:     %d\n", len(corpus.Metadata.FilterOptions.Books))
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", cfg.Output.Path)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
