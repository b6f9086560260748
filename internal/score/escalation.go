package score

import (
	"fmt"
	"strings"

	"github.com/avosk/discern/internal/markers"
	"github.com/avosk/discern/internal/model"
	"github.com/avosk/discern/internal/nlp"
)

// escalationMinHits guards against single stray markers: a trend needs at
// least two matches across the whole document.
const escalationMinHits = 2

// Gradient weights for the three-segment trend: the early→late rise
// dominates, early→middle and middle→late refine it.
const (
	gradientEarlyLate = 0.6
	gradientEarlyMid  = 0.2
	gradientMidLate   = 0.2
)

// escalation detects foot-in-the-door commitment progression: the document
// is split into contiguous segments of (approximately) equal sentence
// count, each segment's intensity is the sum of matched marker tier
// levels, and the score reflects how strongly intensity rises from early
// to late segments.
type escalation struct{}

func (escalation) Name() model.Dimension { return model.DimEscalation }

type segment struct {
	label  string
	text   string // folded segment text
	hits   []string
	weight int // sum of matched tier levels
}

func (escalation) Score(t Text, b *markers.Bundle) model.DimensionOutcome {
	zero := model.DimensionOutcome{Dimension: model.DimEscalation}

	sents := t.Doc.Sentences
	// No trend is observable over a single sentence.
	if len(sents) < 2 {
		return zero
	}

	segments := splitSegments(sents)

	totalHits := 0
	for i := range segments {
		seg := &segments[i]
		for _, tier := range b.EscalationTiers {
			for _, phrase := range tier.Phrases {
				if strings.Contains(seg.text, phrase) {
					seg.hits = append(seg.hits, phrase)
					seg.weight += tier.Level
				}
			}
		}
		totalHits += len(seg.hits)
	}

	if totalHits < escalationMinHits {
		return zero
	}

	maxTier := float64(b.MaxTierLevel())
	rise := func(from, to segment) float64 {
		d := float64(to.weight - from.weight)
		if d < 0 {
			return 0
		}
		return clamp01(d / maxTier)
	}

	var raw float64
	if len(segments) == 3 {
		raw = rise(segments[0], segments[2])*gradientEarlyLate +
			rise(segments[0], segments[1])*gradientEarlyMid +
			rise(segments[1], segments[2])*gradientMidLate
	} else {
		raw = rise(segments[0], segments[1])
	}

	score := clamp01(raw)
	if score == 0 {
		return zero
	}

	var evidence []string
	for _, seg := range segments {
		if len(seg.hits) > 0 {
			evidence = append(evidence, fmt.Sprintf("%s: %s", seg.label, strings.Join(seg.hits, ", ")))
		}
	}

	return model.DimensionOutcome{
		Dimension: model.DimEscalation,
		Score:     score,
		Evidence:  evidence,
	}
}

// splitSegments divides sentences into early/middle/late thirds. When the
// sentence count is not divisible by three, the late segment absorbs the
// remainder. With exactly two sentences the split degrades to early/late.
func splitSegments(sents []nlp.Sentence) []segment {
	if len(sents) == 2 {
		return []segment{
			{label: "early", text: foldSentences(sents[:1])},
			{label: "late", text: foldSentences(sents[1:])},
		}
	}

	third := len(sents) / 3
	return []segment{
		{label: "early", text: foldSentences(sents[:third])},
		{label: "middle", text: foldSentences(sents[third : 2*third])},
		{label: "late", text: foldSentences(sents[2*third:])},
	}
}

func foldSentences(sents []nlp.Sentence) string {
	parts := make([]string, 0, len(sents))
	for _, s := range sents {
		parts = append(parts, strings.ToLower(s.Text))
	}
	return strings.Join(parts, " ")
}
