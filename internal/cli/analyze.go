package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avosk/discern/internal/model"
	"github.com/avosk/discern/internal/pipeline"
)

var (
	language    string
	densityBias float64
	seedValue   int64
	format      string
	noCache     bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a text file for rhetorical manipulation patterns",
	Long: `Analyze scores a single text on seven dimensions:
- Vague authority language and undefined mystical terms
- Appeals that bypass critical thinking
- Manufactured urgency and scarcity
- Fear/euphoria emotional whipsawing
- Internal contradictions
- Unverifiable sourcing
- Escalating commitment demands

Pass "-" to read from stdin. HTML files are reduced to visible text first.

Example:
  discern analyze channeled-message.txt
  discern analyze newsletter.html --lang en --density 0.5
  discern analyze message.txt --seed 42 --format json
  cat message.txt | discern analyze - --llm ollama --llm-model llama3`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	addAnalysisFlags(analyzeCmd)
	analyzeCmd.Flags().StringVar(&format, "format", "table", "output format (table, json)")
}

// addAnalysisFlags registers the flags shared by every scoring command.
func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&language, "lang", "", "text language (en, ja; default from config)")
	cmd.Flags().Float64Var(&densityBias, "density", -1, "heuristic density bias in [0,1] (default from config)")
	cmd.Flags().Int64Var(&seedValue, "seed", 0, "heuristic seed for reproducible runs")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the seeded-result cache")

	cmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an LLM explanation (never affects the score)")
	cmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	cmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	text, source, err := readInput(path)
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	req := pipeline.Request{
		Text:        text,
		Source:      source,
		Language:    language,
		DensityBias: effectiveDensityBias(cfg),
		Seed:        seedFromFlags(cmd),
	}

	analyzer := pipeline.NewAnalyzer(cfg)
	report, err := analyzer.Analyze(context.Background(), req)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	renderer := pipeline.NewRenderer(format, verbose)
	return renderer.Render(os.Stdout, report)
}

// readInput loads the text to analyze from a file or stdin, stripping
// HTML when the extension indicates it.
func readInput(path string) (text, source string, err error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read file: %w", err)
	}

	text = string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = pipeline.VisibleText(text)
		if err != nil {
			return "", "", fmt.Errorf("extract text: %w", err)
		}
	}

	return text, path, nil
}

// buildConfig merges defaults, config file values and analysis flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if v := viper.GetString("analysis.language"); v != "" {
		cfg.Analysis.Language = v
	}
	if viper.IsSet("analysis.density_bias") {
		cfg.Analysis.DensityBias = viper.GetFloat64("analysis.density_bias")
	}
	if viper.IsSet("analysis.max_text_chars") {
		cfg.Analysis.MaxTextChars = viper.GetInt("analysis.max_text_chars")
	}

	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Output.Verbose = verbose

	if llmEnabled {
		if err := configureLLM(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// configureLLM wires the explanation provider from flags and environment.
func configureLLM(cfg *model.Config) error {
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", llmProvider)
	}

	return nil
}

// effectiveDensityBias resolves the flag against the configured default.
func effectiveDensityBias(cfg *model.Config) float64 {
	if densityBias < 0 {
		return cfg.Analysis.DensityBias
	}
	return densityBias
}

// seedFromFlags returns the seed only when the flag was given: an absent
// seed means a fresh heuristic draw, and zero is a valid seed.
func seedFromFlags(cmd *cobra.Command) *int64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	seed := seedValue
	return &seed
}
