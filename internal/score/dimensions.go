// Package score implements the multi-dimensional scoring engine: seven
// independent dimension scorers, their weighted composite ("tech" score),
// the seedable heuristic layer, and the hybrid combiner that merges them
// into a ThreatResult.
package score

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/avosk/discern/internal/markers"
	"github.com/avosk/discern/internal/model"
	"github.com/avosk/discern/internal/nlp"
)

// Saturation and bonus constants. Each dimension normalizes raw match
// counts into [0,1] with these; they are fixed, not user-tunable.
const (
	authoritySaturation = 0.15
	urgencySaturation   = 0.20
	emotionDensity      = 0.12
	contrastBonusFactor = 1.5
	contrastBonusCap    = 0.5
	attributionDensity  = 0.12
	citationOffsetStep  = 0.15
	citationOffsetCap   = 0.4
	vaguenessScale      = 1.5
)

// Text is the preprocessed input shared by all dimension scorers: the raw
// text, its case-folded form, and the linguistic analysis. The offset
// table maps every byte of the folded form back to its source rune in
// Raw, since folding can change a rune's byte length.
type Text struct {
	Raw     string
	Lowered string
	Doc     *nlp.Doc

	offsets []int
}

// NewText folds the raw text once for all substring matchers.
func NewText(raw string, doc *nlp.Doc) Text {
	lowered, offsets := foldWithOffsets(raw)
	return Text{
		Raw:     raw,
		Lowered: lowered,
		Doc:     doc,
		offsets: offsets,
	}
}

// foldWithOffsets lower-cases raw rune by rune, recording for every byte
// of the folded form the byte offset of its source rune. A final entry
// maps one past the end, so span ends resolve on rune boundaries.
func foldWithOffsets(raw string) (string, []int) {
	var b strings.Builder
	b.Grow(len(raw))
	offsets := make([]int, 0, len(raw)+1)

	for i, r := range raw {
		lr := unicode.ToLower(r)
		for n := utf8.RuneLen(lr); n > 0; n-- {
			offsets = append(offsets, i)
		}
		b.WriteRune(lr)
	}
	offsets = append(offsets, len(raw))

	return b.String(), offsets
}

// Dimension scores one analysis axis. Scorers are independent: none reads
// another's output, and all are total over well-formed input. No scorer
// fails once preprocessing has succeeded.
type Dimension interface {
	Name() model.Dimension
	Score(t Text, b *markers.Bundle) model.DimensionOutcome
}

// Dimensions returns the seven scorers in composite order.
func Dimensions() []Dimension {
	return []Dimension{
		vagueness{},
		authority{},
		urgency{},
		emotion{},
		contradiction{},
		attribution{},
		escalation{},
	}
}

// --- Vagueness: density of vague adjectives ---

type vagueness struct{}

func (vagueness) Name() model.Dimension { return model.DimVagueness }

// Score is the ratio of vague adjective tokens to all adjective tokens
// (total tokens when the text has no adjectives), scaled and capped at 1.
func (vagueness) Score(t Text, b *markers.Bundle) model.DimensionOutcome {
	var adjCount, vagueCount int
	var evidence []string
	for _, tok := range t.Doc.Tokens {
		if tok.POS != nlp.PosAdjective {
			continue
		}
		adjCount++
		if b.VagueAdjectives[tok.Lemma] {
			vagueCount++
			evidence = append(evidence, tok.Text)
		}
	}

	denom := adjCount
	if denom == 0 {
		denom = len(t.Doc.Tokens)
	}

	score := 0.0
	if denom > 0 {
		score = clamp01(float64(vagueCount) / float64(denom) * vaguenessScale)
	}

	return model.DimensionOutcome{
		Dimension: model.DimVagueness,
		Score:     score,
		Evidence:  dedupe(evidence),
	}
}

// --- Authority: phrases that bypass critical thinking ---

type authority struct{}

func (authority) Name() model.Dimension { return model.DimAuthority }

func (authority) Score(t Text, b *markers.Bundle) model.DimensionOutcome {
	hits := t.matchPhrases(b.AuthorityPhrases)
	return model.DimensionOutcome{
		Dimension: model.DimAuthority,
		Score:     clamp01(float64(len(hits)) * authoritySaturation),
		Evidence:  dedupe(hits),
	}
}

// --- Urgency: manufactured time pressure ---

type urgency struct{}

func (urgency) Name() model.Dimension { return model.DimUrgency }

func (urgency) Score(t Text, b *markers.Bundle) model.DimensionOutcome {
	hits := t.matchPhrases(b.UrgencyPatterns)
	return model.DimensionOutcome{
		Dimension: model.DimUrgency,
		Score:     clamp01(float64(len(hits)) * urgencySaturation),
		Evidence:  dedupe(hits),
	}
}

// --- Emotion: fear/euphoria whipsawing ---

type emotion struct{}

func (emotion) Name() model.Dimension { return model.DimEmotion }

// Score sums fear and euphoria densities. The contrast bonus applies only
// when both polarities occur in the same text: manipulative whipsawing
// rather than mere negativity.
func (emotion) Score(t Text, b *markers.Bundle) model.DimensionOutcome {
	fearHits := lemmaMatches(t.Doc, b.FearWords)
	fearHits = append(fearHits, t.matchPhrases(b.FearPhrases)...)
	euphoriaHits := lemmaMatches(t.Doc, b.EuphoriaWords)
	euphoriaHits = append(euphoriaHits, t.matchPhrases(b.EuphoriaPhrases)...)

	fearDensity := clamp01(float64(len(fearHits)) * emotionDensity)
	euphoriaDensity := clamp01(float64(len(euphoriaHits)) * emotionDensity)

	contrastBonus := 0.0
	if len(fearHits) > 0 && len(euphoriaHits) > 0 {
		contrastBonus = fearDensity * euphoriaDensity * contrastBonusFactor
		if contrastBonus > contrastBonusCap {
			contrastBonus = contrastBonusCap
		}
	}

	return model.DimensionOutcome{
		Dimension: model.DimEmotion,
		Score:     clamp01(fearDensity + euphoriaDensity + contrastBonus),
		Evidence:  dedupe(append(fearHits, euphoriaHits...)),
	}
}

// --- Contradiction: opposing rhetorical poles in the same text ---

type contradiction struct{}

func (contradiction) Name() model.Dimension { return model.DimContradiction }

// Score is the fraction of pairs triggered. Matching is symmetric in the
// poles: swapping PoleA and PoleB cannot change the outcome.
func (contradiction) Score(t Text, b *markers.Bundle) model.DimensionOutcome {
	var labels []string
	for _, pair := range b.ContradictionPairs {
		if containsAny(t.Lowered, pair.PoleA) && containsAny(t.Lowered, pair.PoleB) {
			labels = append(labels, pair.Label)
		}
	}

	score := 0.0
	if len(b.ContradictionPairs) > 0 {
		score = float64(len(labels)) / float64(len(b.ContradictionPairs))
	}

	return model.DimensionOutcome{
		Dimension: model.DimContradiction,
		Score:     clamp01(score),
		Evidence:  dedupe(labels),
	}
}

// --- Source attribution: unfalsifiable vs. verifiable sourcing ---

type attribution struct{}

func (attribution) Name() model.Dimension { return model.DimAttribution }

// Score counts unfalsifiable and unnamed-authority hits, offset by
// verifiable citation markers, floored at zero before normalization.
// Citations are an offset only and are never reported as evidence.
func (attribution) Score(t Text, b *markers.Bundle) model.DimensionOutcome {
	unfalsifiable := t.matchPhrases(b.UnfalsifiableSourcePhrases)
	unnamed := t.matchPhrases(b.UnnamedAuthorityPhrases)
	verifiable := countPresent(t.Lowered, b.VerifiableCitationMarkers)

	suspicious := clamp01(float64(len(unfalsifiable)+len(unnamed)) * attributionDensity)
	offset := float64(verifiable) * citationOffsetStep
	if offset > citationOffsetCap {
		offset = citationOffsetCap
	}

	score := suspicious - offset
	if score < 0 {
		score = 0
	}

	return model.DimensionOutcome{
		Dimension: model.DimAttribution,
		Score:     score,
		Evidence:  dedupe(append(unfalsifiable, unnamed...)),
	}
}

// --- Matching helpers ---

// matchPhrases returns the original-casing span for each marker phrase
// present in the text. Each phrase is counted at most once, at its first
// occurrence. Span boundaries go through the offset table, so folds that
// shrink or grow a rune cannot shift the reported evidence.
func (t Text) matchPhrases(phrases []string) []string {
	var hits []string
	for _, phrase := range phrases {
		i := strings.Index(t.Lowered, phrase)
		if i < 0 {
			continue
		}
		hits = append(hits, t.Raw[t.offsets[i]:t.offsets[i+len(phrase)]])
	}
	return hits
}

// lemmaMatches returns the surface text of every token whose lemma is in
// the word set. Occurrences are kept (density counts repeats); callers
// de-duplicate for evidence reporting.
func lemmaMatches(doc *nlp.Doc, words map[string]bool) []string {
	var hits []string
	for _, tok := range doc.Tokens {
		if words[tok.Lemma] {
			hits = append(hits, tok.Text)
		}
	}
	return hits
}

// containsAny reports whether any pattern occurs in the folded text.
func containsAny(lowered string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

// countPresent counts how many markers occur at least once.
func countPresent(lowered string, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(lowered, m) {
			n++
		}
	}
	return n
}

// dedupe removes duplicates preserving first-occurrence order.
// Comparison is case-folded so one span per distinct marker survives.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var unique []string
	for _, item := range items {
		key := strings.ToLower(item)
		if !seen[key] {
			seen[key] = true
			unique = append(unique, item)
		}
	}
	return unique
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
