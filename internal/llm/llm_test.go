package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/avosk/discern/internal/model"
)

func TestNewExplainerDisabled(t *testing.T) {
	e, err := NewExplainer(Config{})
	if err != nil {
		t.Fatalf("NewExplainer error: %v", err)
	}
	if e.IsEnabled() {
		t.Error("explainer without a provider should be disabled")
	}

	block, err := e.Explain(context.Background(), &model.Report{})
	if err != nil {
		t.Fatalf("Explain error: %v", err)
	}
	if block != nil {
		t.Error("disabled explainer should return no explanation block")
	}
}

func TestNewExplainerUnknownProvider(t *testing.T) {
	if _, err := NewExplainer(Config{Provider: "carrier-pigeon"}); err == nil {
		t.Error("expected error for an unknown provider")
	}
}

func TestNewExplainerOpenAIRequiresKey(t *testing.T) {
	if _, err := NewExplainer(Config{Provider: "openai"}); err == nil {
		t.Error("expected error when the OpenAI key is missing")
	}
}

func TestNewExplainerOllamaRequiresModel(t *testing.T) {
	if _, err := NewExplainer(Config{Provider: "ollama"}); err == nil {
		t.Error("expected error when the Ollama model is missing")
	}
	if _, err := NewExplainer(Config{Provider: "ollama", Model: "llama3"}); err != nil {
		t.Errorf("ollama with a model should configure: %v", err)
	}
}

func TestExplainerNilSafe(t *testing.T) {
	var e *Explainer
	if e.IsEnabled() {
		t.Error("nil explainer should report disabled")
	}
}

func TestBuildPrompt(t *testing.T) {
	report := model.Report{
		Band: model.BandHigh,
		Result: model.ThreatResult{
			OverallThreatScore:    81.5,
			TechContribution:      74.2,
			HeuristicContribution: 92.4,
		},
		Dimensions: []model.DimensionOutcome{
			{Dimension: model.DimUrgency, Score: 0.8, Evidence: []string{"act now", "last chance", "final window", "hurry"}},
			{Dimension: model.DimVagueness, Score: 0.1},
		},
	}

	prompt := BuildPrompt(report)

	for _, want := range []string{
		"81.50/100",
		"high band",
		"urgency: 0.80",
		`"act now", "last chance", "final window"`,
		"vagueness: 0.10",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Samples are capped at three.
	if strings.Contains(prompt, "hurry") {
		t.Error("prompt should cap evidence samples at three")
	}
	// The framing forbids truth judgments.
	if !strings.Contains(prompt, "never belief") {
		t.Error("prompt should state the technique-not-belief framing")
	}
}

func TestBuildPromptZeroDimensions(t *testing.T) {
	prompt := BuildPrompt(model.Report{Band: model.BandLow})
	if !strings.Contains(prompt, "0.00/100") {
		t.Errorf("prompt should show a zero score, got:\n%s", prompt)
	}
}
