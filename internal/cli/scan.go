package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/avosk/discern/internal/cache"
	"github.com/avosk/discern/internal/pipeline"
)

var (
	scanTimeout time.Duration
	userAgent   string
	maxBytes    int64
	noRobots    bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch a URL and analyze its visible text",
	Long: `Scan fetches a single web page, reduces it to visible text, and runs
the same analysis as the analyze command.

Fetching is polite: robots.txt is honored, redirects are capped, and
fetched text is cached on disk so repeat scans skip the network.

Example:
  discern scan https://example.com/newsletter
  discern scan https://example.com/article --format json --seed 42
  discern scan https://example.com --no-robots --timeout 10s`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	addAnalysisFlags(scanCmd)
	scanCmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 30*time.Second, "fetch timeout")
	scanCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent (default from config)")
	scanCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	scanCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Scan.Timeout = scanTimeout
	cfg.Scan.MaxBodyBytes = maxBytes
	if userAgent != "" {
		cfg.Scan.UserAgent = userAgent
	}
	if noRobots {
		cfg.Scan.RespectRobots = false
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", scanTimeout)
		fmt.Fprintf(os.Stderr, "Robots: %v\n", cfg.Scan.RespectRobots)
		fmt.Fprintln(os.Stderr)
	}

	fetcher := pipeline.NewFetcher(cfg.Scan, pageCache(cfg.Cache.Enabled), cfg.Cache.TTL)
	page, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Fetched %d chars of visible text from %s\n\n", len(page.Text), page.FinalURL)
	}

	analyzer := pipeline.NewAnalyzer(cfg)
	report, err := analyzer.Analyze(ctx, pipeline.Request{
		Text:        page.Text,
		Source:      page.FinalURL,
		Language:    language,
		DensityBias: effectiveDensityBias(cfg),
		Seed:        seedFromFlags(cmd),
	})
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	renderer := pipeline.NewRenderer(format, verbose)
	return renderer.Render(os.Stdout, report)
}

// pageCache builds the layered page cache under ~/.discern/cache, or nil
// when caching is disabled or the home directory is unknown.
func pageCache(enabled bool) cache.Cache {
	if !enabled {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return cache.NewLayeredCache(15*time.Minute, filepath.Join(home, ".discern", "cache"), 24*time.Hour)
}
