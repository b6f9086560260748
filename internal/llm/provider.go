// Package llm adds an optional model-generated reading of a finished
// report. It runs strictly after scoring and its output never feeds back
// into any score.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/avosk/discern/internal/model"
)

// Provider is one LLM backend.
type Provider interface {
	// Name returns the provider name for report attribution.
	Name() string

	// Explain generates a prose reading of the report.
	Explain(ctx context.Context, req ExplainRequest) (*ExplainResponse, error)

	// IsAvailable checks that the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// ExplainRequest is the input for explanation generation.
type ExplainRequest struct {
	Report model.Report

	// Prompt overrides the default prompt when non-empty.
	Prompt string

	Model     string
	MaxTokens int
}

// ExplainResponse is the provider's output.
type ExplainResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai", "ollama", "" (disabled).
	Provider string

	Model   string
	APIKey  string
	BaseURL string

	Timeout   int // seconds
	MaxTokens int
}

// ConfigFromModel converts the runtime LLM configuration.
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// BuildPrompt constructs the default explanation prompt. The framing
// matters: the tool flags rhetorical patterns, it does not judge beliefs,
// and the prompt forbids the model from doing so either.
func BuildPrompt(report model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are explaining the output of a rhetorical-pattern analyzer. The tool
scores TECHNIQUE, never belief: a high score means the text leans on
manipulation patterns, not that its worldview is false.

CRITICAL RULES:
1. Describe patterns, never truth. Say "the text uses urgency framing",
   never "the text is wrong".
2. Only discuss the signals listed below. Do not speculate about the
   author or audience.
3. If every dimension is near zero, say the text shows little of what
   the tool measures.

Result:
- Overall score: %.2f/100 (%s band)
- Technical contribution: %.2f
- Heuristic contribution: %.2f

Dimension signals:
`, report.Result.OverallThreatScore, report.Band,
		report.Result.TechContribution, report.Result.HeuristicContribution)

	for _, dim := range report.Dimensions {
		fmt.Fprintf(&b, "- %s: %.2f", dim.Dimension, dim.Score)
		if len(dim.Evidence) > 0 {
			fmt.Fprintf(&b, " (e.g. %s)", joinSamples(dim.Evidence, 3))
		}
		b.WriteString("\n")
	}

	b.WriteString("\nProvide a 3-4 sentence reading of which rhetorical patterns dominate and how strongly.")
	return b.String()
}

func joinSamples(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}
