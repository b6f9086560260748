package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/avosk/discern/internal/model"
)

// Explainer wraps a configured provider behind a nil-safe facade.
type Explainer struct {
	provider Provider
	config   Config
}

// NewExplainer builds an explainer from configuration. An empty provider
// name yields a disabled explainer, not an error.
func NewExplainer(config Config) (*Explainer, error) {
	provider, err := newProvider(config)
	if err != nil {
		return nil, err
	}
	return &Explainer{provider: provider, config: config}, nil
}

func newProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "ollama":
		return NewOllamaProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
}

// IsEnabled reports whether a provider is configured.
func (e *Explainer) IsEnabled() bool {
	return e != nil && e.provider != nil
}

// Explain produces the explanation block for a finished report.
func (e *Explainer) Explain(ctx context.Context, report *model.Report) (*model.LLMExplanation, error) {
	if !e.IsEnabled() {
		return nil, nil
	}

	resp, err := e.provider.Explain(ctx, ExplainRequest{Report: *report})
	if err != nil {
		return nil, err
	}

	return &model.LLMExplanation{
		Enabled:  true,
		Provider: e.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Text,
	}, nil
}
