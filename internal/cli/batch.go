package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avosk/discern/internal/pipeline"
	"github.com/avosk/discern/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyze every text file under a directory in parallel",
	Long: `Batch walks a directory, collects analyzable files (.txt, .md, .html),
and scores them concurrently with a fixed worker pool. A per-file JSON
report is written when an output directory is given; a score summary
always goes to stdout.

Example:
  discern batch ./inbox
  discern batch ./inbox --concurrency 8 --output-dir ./reports
  discern batch ./inbox --seed 42 --lang ja`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	addAnalysisFlags(batchCmd)
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for per-file JSON reports (optional)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	root := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.BatchWorkers = concurrency

	paths, err := worker.CollectFiles(root)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "No analyzable files under %s\n", root)
		return nil
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "Analyzing %d files with %d workers...\n\n", len(paths), concurrency)

	analyzer := pipeline.NewAnalyzer(cfg)
	processor := worker.NewBatchProcessor(analyzer, concurrency, language, effectiveDensityBias(cfg), seedFromFlags(cmd))
	results := processor.ProcessFiles(ctx, paths)

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	successCount := 0
	failureCount := 0
	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Path, result.Error)
			continue
		}

		successCount++
		fmt.Printf("%6.2f  %-6s  %s\n", result.Report.Result.OverallThreatScore, result.Report.Band, result.Path)

		if outputDir != "" {
			if err := writeReportJSON(result, outputDir); err != nil {
				fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Path, err)
			}
		}
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d analyzed, %d failed\n", successCount, failureCount)
	if outputDir != "" {
		fmt.Fprintf(os.Stderr, "Reports: %s\n", outputDir)
	}

	return nil
}

func writeReportJSON(result *worker.FileResult, dir string) error {
	data, err := json.MarshalIndent(result.Report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	name := sanitizeFilename(strings.TrimSuffix(filepath.Base(result.Path), filepath.Ext(result.Path))) + ".json"
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// sanitizeFilename makes a string safe for use as a filename.
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s = replacer.Replace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
