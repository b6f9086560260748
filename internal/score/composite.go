package score

import (
	"fmt"
	"math"

	"github.com/avosk/discern/internal/model"
)

// Weights holds the per-dimension contribution to the composite score.
// They must sum to 1 so the composite stays in [0,100].
type Weights struct {
	Vagueness     float64
	Authority     float64
	Urgency       float64
	Emotion       float64
	Contradiction float64
	Attribution   float64
	Escalation    float64
}

// DefaultWeights reflect which dimensions are the strongest manipulation
// signals: authority deference and vagueness lead, escalation follows.
func DefaultWeights() Weights {
	return Weights{
		Vagueness:     0.17,
		Authority:     0.17,
		Urgency:       0.13,
		Emotion:       0.13,
		Contradiction: 0.13,
		Attribution:   0.13,
		Escalation:    0.14,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Vagueness + w.Authority + w.Urgency + w.Emotion +
		w.Contradiction + w.Attribution + w.Escalation
}

// Validate checks that the weights form a convex combination.
func (w Weights) Validate() error {
	for _, v := range []float64{
		w.Vagueness, w.Authority, w.Urgency, w.Emotion,
		w.Contradiction, w.Attribution, w.Escalation,
	} {
		if v < 0 {
			return fmt.Errorf("%w: negative dimension weight %v", model.ErrValidation, v)
		}
	}
	if math.Abs(w.Sum()-1) > 1e-9 {
		return fmt.Errorf("%w: dimension weights sum to %v, want 1", model.ErrValidation, w.Sum())
	}
	return nil
}

// of returns the weight for a named dimension.
func (w Weights) of(d model.Dimension) float64 {
	switch d {
	case model.DimVagueness:
		return w.Vagueness
	case model.DimAuthority:
		return w.Authority
	case model.DimUrgency:
		return w.Urgency
	case model.DimEmotion:
		return w.Emotion
	case model.DimContradiction:
		return w.Contradiction
	case model.DimAttribution:
		return w.Attribution
	case model.DimEscalation:
		return w.Escalation
	}
	return 0
}

// Composite folds per-dimension outcomes into a 0-100 score.
func (w Weights) Composite(outcomes []model.DimensionOutcome) float64 {
	var weighted float64
	for _, out := range outcomes {
		weighted += clamp01(out.Score) * w.of(out.Dimension)
	}
	return round2(clamp01(weighted) * 100)
}

// round2 rounds to two decimal places, matching the wire format.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
