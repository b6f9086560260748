package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/avosk/discern/internal/pipeline"
	"github.com/avosk/discern/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local analysis API server",
	Long: `Serve exposes the analyzer over HTTP on a local address:

  POST /analyse   {"text": "...", "language": "en", "density_bias": 0.5, "seed": 42}
  GET  /health    liveness probe
  GET  /metrics   Prometheus metrics

Requests are rate limited per client. The server binds to localhost by
default; this is a local tool, not a public service.

Example:
  discern serve
  discern serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	addAnalysisFlags(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.HTTP.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analyzer := pipeline.NewAnalyzer(cfg)
	srv := server.New(analyzer, cfg)

	fmt.Fprintf(os.Stderr, "Listening on http://%s\n", cfg.HTTP.Addr)
	if err := srv.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
