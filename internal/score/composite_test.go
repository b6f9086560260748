package score

import (
	"errors"
	"testing"

	"github.com/avosk/discern/internal/model"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	if !almostEqual(w.Sum(), 1.0) {
		t.Errorf("Sum() = %v, want 1", w.Sum())
	}
	if err := w.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsBadWeights(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Weights)
	}{
		{"negative weight", func(w *Weights) { w.Vagueness = -0.1; w.Authority = 0.44 }},
		{"sum above one", func(w *Weights) { w.Escalation = 0.5 }},
		{"sum below one", func(w *Weights) { w.Urgency = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := DefaultWeights()
			tt.mutate(&w)
			err := w.Validate()
			if !errors.Is(err, model.ErrValidation) {
				t.Errorf("Validate() = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCompositeAllZeroOutcomes(t *testing.T) {
	var outcomes []model.DimensionOutcome
	for _, d := range Dimensions() {
		outcomes = append(outcomes, model.DimensionOutcome{Dimension: d.Name()})
	}

	if got := DefaultWeights().Composite(outcomes); got != 0 {
		t.Errorf("Composite(zeros) = %v, want 0", got)
	}
}

func TestCompositeAllMaxOutcomes(t *testing.T) {
	var outcomes []model.DimensionOutcome
	for _, d := range Dimensions() {
		outcomes = append(outcomes, model.DimensionOutcome{Dimension: d.Name(), Score: 1})
	}

	if got := DefaultWeights().Composite(outcomes); got != 100 {
		t.Errorf("Composite(ones) = %v, want 100", got)
	}
}

func TestCompositeWeighsPerDimension(t *testing.T) {
	outcomes := []model.DimensionOutcome{
		{Dimension: model.DimAuthority, Score: 1},
	}

	// Only the authority weight contributes.
	if got := DefaultWeights().Composite(outcomes); !almostEqual(got, 17) {
		t.Errorf("Composite = %v, want 17", got)
	}
}

func TestCompositeClampsOutOfRangeSubScores(t *testing.T) {
	outcomes := []model.DimensionOutcome{
		{Dimension: model.DimAuthority, Score: 5},
		{Dimension: model.DimVagueness, Score: -3},
	}

	got := DefaultWeights().Composite(outcomes)
	if !almostEqual(got, 17) {
		t.Errorf("Composite = %v, want 17 after clamping", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.234, 1.23},
		{1.236, 1.24},
		{0, 0},
		{99.999, 100},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
