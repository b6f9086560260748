// Package pipeline orchestrates a full analysis run: validation, marker
// and engine lookup, scoring, optional result caching, and report assembly.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/avosk/discern/internal/cache"
	"github.com/avosk/discern/internal/llm"
	"github.com/avosk/discern/internal/markers"
	"github.com/avosk/discern/internal/model"
	"github.com/avosk/discern/internal/nlp"
	"github.com/avosk/discern/internal/score"
)

// Analyzer wires the scoring components together. One Analyzer serves any
// number of concurrent requests.
type Analyzer struct {
	registry  *markers.Registry
	engines   *nlp.Provider
	scorer    *score.Scorer
	results   cache.Cache // seeded results only; nil disables caching
	explainer *llm.Explainer
	config    *model.Config
}

// NewAnalyzer creates an analyzer from configuration.
func NewAnalyzer(cfg *model.Config) *Analyzer {
	var explainer *llm.Explainer
	if cfg.LLM.Provider != "" {
		e, err := llm.NewExplainer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			explainer = e
		}
	}

	var results cache.Cache
	if cfg.Cache.Enabled {
		results = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
	}

	return &Analyzer{
		registry:  markers.NewRegistry(),
		engines:   nlp.NewProvider(),
		scorer:    score.NewScorer(),
		results:   results,
		explainer: explainer,
		config:    cfg,
	}
}

// Request is one analysis invocation.
type Request struct {
	Text        string
	Source      string // file path, URL, or "stdin"; informational
	Language    string // empty uses the configured default
	DensityBias float64
	Seed        *int64 // nil means a fresh heuristic draw
}

// cachedAnalysis is the replayable part of a report: everything except
// provenance, which is rebuilt per request.
type cachedAnalysis struct {
	Result     model.ThreatResult       `json:"result"`
	Dimensions []model.DimensionOutcome `json:"dimensions"`
}

// Analyze runs the hybrid analysis and assembles a report.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*model.Report, error) {
	if req.DensityBias < 0 || req.DensityBias > 1 {
		return nil, fmt.Errorf("%w: density_bias %v outside [0,1]", model.ErrValidation, req.DensityBias)
	}
	if limit := a.config.Analysis.MaxTextChars; limit > 0 && utf8.RuneCountInString(req.Text) > limit {
		return nil, fmt.Errorf("%w: text exceeds %d characters", model.ErrValidation, limit)
	}

	lang := markers.Language(req.Language)
	if lang == "" {
		lang = markers.Language(a.config.Analysis.Language)
	}

	bundle, err := a.registry.Get(lang)
	if err != nil {
		return nil, err
	}

	// Whitespace-only input carries no tech signal, but the heuristic
	// layer has no linguistic content and still draws.
	if strings.TrimSpace(req.Text) == "" {
		result, outcomes := a.scorer.Hybrid(score.NewText(req.Text, &nlp.Doc{}), bundle, req.DensityBias, req.Seed)
		analysis := cachedAnalysis{Result: result, Dimensions: outcomes}
		return a.finishReport(ctx, a.buildReport(req, lang, analysis)), nil
	}

	// Only seeded runs are replayable; an unseeded heuristic draw must
	// stay fresh on every call.
	var key string
	if req.Seed != nil && a.results != nil {
		key = cache.ResultKey(req.Text, string(lang), req.DensityBias, *req.Seed)
		if data, found := a.results.Get(key); found {
			var cached cachedAnalysis
			if err := json.Unmarshal(data, &cached); err == nil {
				return a.finishReport(ctx, a.buildReport(req, lang, cached)), nil
			}
		}
	}

	engine, err := a.engines.Get(lang)
	if err != nil {
		return nil, err
	}

	doc, err := engine.Analyze(req.Text)
	if err != nil {
		return nil, fmt.Errorf("analyze text: %w", err)
	}

	result, outcomes := a.scorer.Hybrid(score.NewText(req.Text, doc), bundle, req.DensityBias, req.Seed)
	analysis := cachedAnalysis{Result: result, Dimensions: outcomes}

	if key != "" {
		if data, err := json.Marshal(analysis); err == nil {
			_ = a.results.Set(key, data, 0)
		}
	}

	return a.finishReport(ctx, a.buildReport(req, lang, analysis)), nil
}

// buildReport attaches fresh provenance to an analysis.
func (a *Analyzer) buildReport(req Request, lang markers.Language, analysis cachedAnalysis) *model.Report {
	return &model.Report{
		ID:         uuid.NewString(),
		Source:     req.Source,
		Language:   string(lang),
		AnalyzedAt: time.Now().UTC(),
		TextChars:  utf8.RuneCountInString(req.Text),
		Result:     analysis.Result,
		Band:       model.Band(analysis.Result.OverallThreatScore),
		Dimensions: analysis.Dimensions,
	}
}

// finishReport generates the optional LLM explanation. It runs after
// scoring and never alters the result.
func (a *Analyzer) finishReport(ctx context.Context, report *model.Report) *model.Report {
	if a.explainer == nil || !a.explainer.IsEnabled() {
		return report
	}

	explanation, err := a.explainer.Explain(ctx, report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM explanation failed: %v\n", err)
		return report
	}
	report.LLM = explanation
	return report
}
