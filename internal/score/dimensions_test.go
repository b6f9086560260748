package score

import (
	"math"
	"strings"
	"testing"

	"github.com/avosk/discern/internal/markers"
	"github.com/avosk/discern/internal/model"
	"github.com/avosk/discern/internal/nlp"
)

// testBundle is a small synthetic bundle with known contents, so expected
// scores can be computed by hand.
func testBundle() *markers.Bundle {
	return &markers.Bundle{
		Language:   markers.English,
		CaseFolded: true,

		VagueAdjectives: map[string]bool{"cosmic": true, "divine": true},

		AuthorityPhrases: []string{"the masters say", "it has been revealed"},
		UrgencyPatterns:  []string{"act now", "time is running out"},

		FearWords:       map[string]bool{"doom": true, "collapse": true},
		FearPhrases:     []string{"old earth"},
		EuphoriaWords:   map[string]bool{"bliss": true, "ascension": true},
		EuphoriaPhrases: []string{"new earth"},

		UnfalsifiableSourcePhrases: []string{"ancient wisdom teaches", "the quantum field"},
		UnnamedAuthorityPhrases:    []string{"scientists say", "experts agree"},
		VerifiableCitationMarkers:  []string{"doi:", "published in"},

		EscalationTiers: []markers.EscalationTier{
			{Level: 1, Phrases: []string{"consider", "you might"}},
			{Level: 2, Phrases: []string{"you should", "commit to"}},
			{Level: 3, Phrases: []string{"you must", "total surrender"}},
		},
		ContradictionPairs: []markers.ContradictionPair{
			{
				Label: "empowerment vs. dependency",
				PoleA: []string{"you have the power"},
				PoleB: []string{"you need this"},
			},
			{
				Label: "universality vs. exclusivity",
				PoleA: []string{"all paths"},
				PoleB: []string{"the only way"},
			},
		},
	}
}

// fakeDoc builds a Doc from (text, lemma, pos) triples plus sentences.
func fakeDoc(tokens [][3]string, sentences ...string) *nlp.Doc {
	doc := &nlp.Doc{}
	for _, tok := range tokens {
		doc.Tokens = append(doc.Tokens, nlp.Token{Text: tok[0], Lemma: tok[1], POS: tok[2]})
	}
	for _, s := range sentences {
		doc.Sentences = append(doc.Sentences, nlp.Sentence{Text: s})
	}
	return doc
}

func textFor(raw string, doc *nlp.Doc) Text {
	return NewText(raw, doc)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVaguenessRatioOfAdjectives(t *testing.T) {
	doc := fakeDoc([][3]string{
		{"cosmic", "cosmic", nlp.PosAdjective},
		{"divine", "divine", nlp.PosAdjective},
		{"green", "green", nlp.PosAdjective},
		{"tall", "tall", nlp.PosAdjective},
		{"energy", "energy", nlp.PosNoun},
	})

	out := vagueness{}.Score(textFor("cosmic divine green tall energy", doc), testBundle())

	// 2 vague of 4 adjectives, scaled by 1.5.
	if !almostEqual(out.Score, 0.75) {
		t.Errorf("score = %v, want 0.75", out.Score)
	}
	if len(out.Evidence) != 2 {
		t.Errorf("evidence = %v, want the two vague adjectives", out.Evidence)
	}
}

func TestVaguenessNoAdjectivesFallsBackToAllTokens(t *testing.T) {
	doc := fakeDoc([][3]string{
		{"energy", "energy", nlp.PosNoun},
		{"flows", "flow", nlp.PosVerb},
		{"here", "here", nlp.PosOther},
		{"now", "now", nlp.PosOther},
	})

	out := vagueness{}.Score(textFor("energy flows here now", doc), testBundle())
	if out.Score != 0 {
		t.Errorf("score = %v, want 0 with no vague tokens", out.Score)
	}
}

func TestVaguenessCapsAtOne(t *testing.T) {
	doc := fakeDoc([][3]string{
		{"cosmic", "cosmic", nlp.PosAdjective},
		{"divine", "divine", nlp.PosAdjective},
	})

	out := vagueness{}.Score(textFor("cosmic divine", doc), testBundle())
	if out.Score != 1 {
		t.Errorf("score = %v, want capped 1", out.Score)
	}
}

func TestVaguenessEmptyDoc(t *testing.T) {
	out := vagueness{}.Score(textFor("", &nlp.Doc{}), testBundle())
	if out.Score != 0 || len(out.Evidence) != 0 {
		t.Errorf("empty doc should score zero, got %v / %v", out.Score, out.Evidence)
	}
}

func TestAuthorityCountsDistinctPhrases(t *testing.T) {
	raw := "The Masters Say we rise. It has been revealed to all. The masters say it again."
	out := authority{}.Score(textFor(raw, &nlp.Doc{}), testBundle())

	// Two distinct phrases present; repeats of one phrase count once.
	if !almostEqual(out.Score, 2*authoritySaturation) {
		t.Errorf("score = %v, want %v", out.Score, 2*authoritySaturation)
	}
	if len(out.Evidence) != 2 {
		t.Fatalf("evidence = %v, want 2 entries", out.Evidence)
	}
	// Evidence keeps the original casing of the first occurrence.
	if out.Evidence[0] != "The Masters Say" {
		t.Errorf("evidence[0] = %q, want original casing", out.Evidence[0])
	}
}

func TestUrgencySaturates(t *testing.T) {
	b := testBundle()
	b.UrgencyPatterns = []string{"p1", "p2", "p3", "p4", "p5", "p6"}
	raw := "p1 p2 p3 p4 p5 p6"

	out := urgency{}.Score(textFor(raw, &nlp.Doc{}), b)
	if out.Score != 1 {
		t.Errorf("score = %v, want saturated 1", out.Score)
	}
}

func TestEmotionFearOnlyNoBonus(t *testing.T) {
	doc := fakeDoc([][3]string{
		{"doom", "doom", nlp.PosNoun},
		{"collapse", "collapse", nlp.PosNoun},
	})

	out := emotion{}.Score(textFor("doom collapse", doc), testBundle())
	if !almostEqual(out.Score, 2*emotionDensity) {
		t.Errorf("score = %v, want %v (no contrast bonus)", out.Score, 2*emotionDensity)
	}
}

func TestEmotionContrastBonus(t *testing.T) {
	doc := fakeDoc([][3]string{
		{"doom", "doom", nlp.PosNoun},
		{"bliss", "bliss", nlp.PosNoun},
	})

	out := emotion{}.Score(textFor("doom bliss", doc), testBundle())

	fear := emotionDensity
	euphoria := emotionDensity
	want := fear + euphoria + fear*euphoria*contrastBonusFactor
	if !almostEqual(out.Score, want) {
		t.Errorf("score = %v, want %v with contrast bonus", out.Score, want)
	}
}

func TestEmotionCountsRepeats(t *testing.T) {
	doc := fakeDoc([][3]string{
		{"doom", "doom", nlp.PosNoun},
		{"doom", "doom", nlp.PosNoun},
		{"doom", "doom", nlp.PosNoun},
	})

	out := emotion{}.Score(textFor("doom doom doom", doc), testBundle())
	if !almostEqual(out.Score, 3*emotionDensity) {
		t.Errorf("score = %v, want %v (repeats count toward density)", out.Score, 3*emotionDensity)
	}
	if len(out.Evidence) != 1 {
		t.Errorf("evidence = %v, want de-duplicated single entry", out.Evidence)
	}
}

func TestContradictionFractionOfPairs(t *testing.T) {
	raw := "you have the power, yet you need this to continue"
	out := contradiction{}.Score(textFor(raw, &nlp.Doc{}), testBundle())

	// 1 of 2 pairs triggered.
	if !almostEqual(out.Score, 0.5) {
		t.Errorf("score = %v, want 0.5", out.Score)
	}
	if len(out.Evidence) != 1 || out.Evidence[0] != "empowerment vs. dependency" {
		t.Errorf("evidence = %v, want the triggered pair label", out.Evidence)
	}
}

func TestContradictionRequiresBothPoles(t *testing.T) {
	out := contradiction{}.Score(textFor("you have the power", &nlp.Doc{}), testBundle())
	if out.Score != 0 {
		t.Errorf("score = %v, want 0 with a single pole", out.Score)
	}
}

func TestContradictionSymmetric(t *testing.T) {
	raw := "all paths lead home but this is the only way"

	b := testBundle()
	direct := contradiction{}.Score(textFor(raw, &nlp.Doc{}), b)

	// Swap every pair's poles; outcome must be identical.
	swapped := testBundle()
	for i := range swapped.ContradictionPairs {
		p := &swapped.ContradictionPairs[i]
		p.PoleA, p.PoleB = p.PoleB, p.PoleA
	}
	flipped := contradiction{}.Score(textFor(raw, &nlp.Doc{}), swapped)

	if direct.Score != flipped.Score {
		t.Errorf("pole swap changed score: %v vs %v", direct.Score, flipped.Score)
	}
	if len(direct.Evidence) != len(flipped.Evidence) {
		t.Errorf("pole swap changed evidence: %v vs %v", direct.Evidence, flipped.Evidence)
	}
}

func TestAttributionSuspiciousOnly(t *testing.T) {
	raw := "ancient wisdom teaches us, and scientists say so"
	out := attribution{}.Score(textFor(raw, &nlp.Doc{}), testBundle())

	if !almostEqual(out.Score, 2*attributionDensity) {
		t.Errorf("score = %v, want %v", out.Score, 2*attributionDensity)
	}
	if len(out.Evidence) != 2 {
		t.Errorf("evidence = %v, want both suspicious phrases", out.Evidence)
	}
}

func TestAttributionCitationOffset(t *testing.T) {
	raw := "ancient wisdom teaches balance, published in a journal, doi:10.1000/x"
	out := attribution{}.Score(textFor(raw, &nlp.Doc{}), testBundle())

	// One suspicious hit (0.12) against two citation markers (0.30): floored.
	if out.Score != 0 {
		t.Errorf("score = %v, want floored 0", out.Score)
	}
	for _, e := range out.Evidence {
		if strings.Contains(e, "doi") || strings.Contains(e, "published") {
			t.Errorf("citation markers must never appear as evidence, got %v", out.Evidence)
		}
	}
}

func TestAttributionOffsetCap(t *testing.T) {
	b := testBundle()
	b.VerifiableCitationMarkers = []string{"c1", "c2", "c3", "c4"}
	b.UnfalsifiableSourcePhrases = []string{"s1", "s2", "s3", "s4", "s5"}
	raw := "s1 s2 s3 s4 s5 c1 c2 c3 c4"

	out := attribution{}.Score(textFor(raw, &nlp.Doc{}), b)

	// Offset caps at 0.4 even with 4 citation markers (0.60 uncapped).
	want := 5*attributionDensity - citationOffsetCap
	if !almostEqual(out.Score, want) {
		t.Errorf("score = %v, want %v", out.Score, want)
	}
}

func TestMatchPhrasesPreservesCasingAndBounds(t *testing.T) {
	hits := NewText("ACT NOW or regret", &nlp.Doc{}).matchPhrases([]string{"act now", "missing"})

	if len(hits) != 1 || hits[0] != "ACT NOW" {
		t.Errorf("hits = %v, want original-casing span", hits)
	}
}

func TestMatchPhrasesMultibyteFold(t *testing.T) {
	// İ (U+0130) folds to a shorter byte sequence, shifting folded-text
	// offsets relative to the raw text.
	raw := "İşte İstanbul: The Masters Say it."
	hits := NewText(raw, &nlp.Doc{}).matchPhrases([]string{"the masters say"})

	if len(hits) != 1 || hits[0] != "The Masters Say" {
		t.Errorf("hits = %v, want the exact original span", hits)
	}
}

func TestFoldWithOffsets(t *testing.T) {
	raw := "İi"
	lowered, offsets := foldWithOffsets(raw)

	if lowered != "ii" {
		t.Fatalf("lowered = %q, want ii", lowered)
	}
	// Folded byte 0 maps to the two-byte İ, byte 1 to the plain i.
	want := []int{0, 2, 3}
	if len(offsets) != len(want) {
		t.Fatalf("offsets = %v, want %v", offsets, want)
	}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("offsets[%d] = %d, want %d", i, offsets[i], want[i])
		}
	}
}

func TestDedupeCaseInsensitiveFirstWins(t *testing.T) {
	out := dedupe([]string{"Act Now", "act now", "ACT NOW", "other"})
	if len(out) != 2 || out[0] != "Act Now" || out[1] != "other" {
		t.Errorf("dedupe = %v, want first-occurrence order", out)
	}
}

func TestDimensionsOrder(t *testing.T) {
	want := []model.Dimension{
		model.DimVagueness, model.DimAuthority, model.DimUrgency,
		model.DimEmotion, model.DimContradiction, model.DimAttribution,
		model.DimEscalation,
	}

	dims := Dimensions()
	if len(dims) != len(want) {
		t.Fatalf("got %d dimensions, want %d", len(dims), len(want))
	}
	for i, d := range dims {
		if d.Name() != want[i] {
			t.Errorf("dimension %d = %s, want %s", i, d.Name(), want[i])
		}
	}
}
