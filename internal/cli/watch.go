package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/avosk/discern/internal/pipeline"
	"github.com/avosk/discern/internal/worker"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and analyze files as they appear",
	Long: `Watch monitors a directory and scores every analyzable file (.txt,
.md, .html) that is created or modified in it. Useful for a drop folder
of texts to review.

Writes are debounced so editors that save in multiple steps trigger a
single analysis.

Example:
  discern watch ./inbox
  discern watch ./inbox --format json --lang ja`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	addAnalysisFlags(watchCmd)
	watchCmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := args[0]

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(root); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analyzer := pipeline.NewAnalyzer(cfg)
	renderer := pipeline.NewRenderer(format, verbose)
	seed := seedFromFlags(cmd)

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl-C to stop)\n", root)

	// Debounce: a path is re-analyzed at most once per window.
	const debounce = 500 * time.Millisecond
	lastRun := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !analyzableFile(event.Name) {
				continue
			}
			if last, seen := lastRun[event.Name]; seen && time.Since(last) < debounce {
				continue
			}
			lastRun[event.Name] = time.Now()

			job := &worker.AnalyzeJob{
				Path:        event.Name,
				Language:    language,
				DensityBias: effectiveDensityBias(cfg),
				Seed:        seed,
				Analyzer:    analyzer,
			}
			result, ok := job.Execute(ctx).(*worker.FileResult)
			if !ok {
				continue
			}
			if result.Error != nil {
				fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Path, result.Error)
				continue
			}
			if err := renderer.Render(os.Stdout, result.Report); err != nil {
				fmt.Fprintf(os.Stderr, "Render error: %v\n", err)
			}
		}
	}
}

// analyzableFile reports whether the watcher should score this path.
func analyzableFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".html", ".htm":
		return true
	}
	return false
}
