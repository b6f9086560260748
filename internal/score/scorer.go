package score

import (
	"github.com/avosk/discern/internal/markers"
	"github.com/avosk/discern/internal/model"
)

// Hybrid blend: the transparent tech composite dominates, the heuristic
// layer only perturbs.
const (
	hybridTechWeight      = 0.6
	hybridHeuristicWeight = 0.4
)

// Scorer runs the full dimension battery and combines the results into a
// hybrid ThreatResult. It is stateless and safe for concurrent use.
type Scorer struct {
	weights    Weights
	dimensions []Dimension
}

// NewScorer builds a scorer with the default dimension weights.
func NewScorer() *Scorer {
	return &Scorer{
		weights:    DefaultWeights(),
		dimensions: Dimensions(),
	}
}

// Tech runs every dimension scorer and returns the weighted 0-100 composite
// together with the per-dimension outcomes in composite order.
func (s *Scorer) Tech(t Text, b *markers.Bundle) (float64, []model.DimensionOutcome) {
	outcomes := make([]model.DimensionOutcome, 0, len(s.dimensions))
	for _, dim := range s.dimensions {
		outcomes = append(outcomes, dim.Score(t, b))
	}
	return s.weights.Composite(outcomes), outcomes
}

// Hybrid combines the tech composite with the heuristic layer into the
// final ThreatResult. With a non-nil seed the whole result is
// deterministic for identical inputs.
func (s *Scorer) Hybrid(t Text, b *markers.Bundle, densityBias float64, seed *int64) (model.ThreatResult, []model.DimensionOutcome) {
	tech, outcomes := s.Tech(t, b)

	// The blend uses the raw heuristic draw; contributions are rounded
	// only when the result is assembled.
	heuristic := Heuristic(densityBias, seed)
	overall := round2(hybridTechWeight*tech + hybridHeuristicWeight*heuristic)

	result := model.ThreatResult{
		OverallThreatScore:    overall,
		TechContribution:      tech,
		HeuristicContribution: round2(heuristic),
		DetectedEntities:      nonNil(t.Doc.Entities),
		Message:               model.Disclaimer,
	}
	for _, out := range outcomes {
		switch out.Dimension {
		case model.DimAuthority:
			result.AuthorityHits = nonNil(out.Evidence)
		case model.DimUrgency:
			result.UrgencyHits = nonNil(out.Evidence)
		case model.DimEmotion:
			result.EmotionHits = nonNil(out.Evidence)
		case model.DimContradiction:
			result.ContradictionHits = nonNil(out.Evidence)
		case model.DimAttribution:
			result.SourceAttributionHits = nonNil(out.Evidence)
		case model.DimEscalation:
			result.EscalationHits = nonNil(out.Evidence)
		}
	}

	return result, outcomes
}

// nonNil keeps the JSON encoding of hit lists as [] rather than null.
func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
