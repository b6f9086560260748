package model

// Disclaimer is attached verbatim to every ThreatResult.
const Disclaimer = "Run on your own texts only — this is a local tool."

// Dimension identifies one of the seven independent analysis axes.
type Dimension string

const (
	DimVagueness     Dimension = "vagueness"
	DimAuthority     Dimension = "authority"
	DimUrgency       Dimension = "urgency"
	DimEmotion       Dimension = "emotion"
	DimContradiction Dimension = "contradiction"
	DimAttribution   Dimension = "attribution"
	DimEscalation    Dimension = "escalation"
)

// DimensionOutcome is the normalized output of a single dimension scorer:
// a sub-score in [0,1] and the matched evidence strings, de-duplicated with
// first-occurrence order preserved.
type DimensionOutcome struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
	Evidence  []string  `json:"evidence,omitempty"`
}

// ThreatResult is the immutable output of one hybrid analysis call.
// Field names mirror the reference API schema.
type ThreatResult struct {
	OverallThreatScore    float64 `json:"overall_threat_score"`
	TechContribution      float64 `json:"tech_contribution"`
	HeuristicContribution float64 `json:"heuristic_contribution"`

	DetectedEntities      []string `json:"detected_entities"`
	AuthorityHits         []string `json:"authority_hits"`
	UrgencyHits           []string `json:"urgency_hits"`
	EmotionHits           []string `json:"emotion_hits"`
	ContradictionHits     []string `json:"contradiction_hits"`
	SourceAttributionHits []string `json:"source_attribution_hits"`
	EscalationHits        []string `json:"escalation_hits"`

	Message string `json:"message"`
}

// ThreatBand buckets an overall score for display purposes.
type ThreatBand string

const (
	BandLow    ThreatBand = "low"    // 0-33
	BandMedium ThreatBand = "medium" // 34-66
	BandHigh   ThreatBand = "high"   // 67-100
)

// Band classifies a 0-100 score into a threat band.
func Band(score float64) ThreatBand {
	switch {
	case score <= 33:
		return BandLow
	case score <= 66:
		return BandMedium
	default:
		return BandHigh
	}
}
