package score

import (
	"reflect"
	"testing"

	"github.com/avosk/discern/internal/model"
	"github.com/avosk/discern/internal/nlp"
)

func TestHybridSeededDeterminism(t *testing.T) {
	s := NewScorer()
	seed := int64(42)
	text := textFor("The Masters Say you must act now.", &nlp.Doc{})

	first, _ := s.Hybrid(text, testBundle(), 0.75, &seed)
	second, _ := s.Hybrid(text, testBundle(), 0.75, &seed)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("seeded hybrid runs differ:\n%+v\n%+v", first, second)
	}
}

func TestHybridBounds(t *testing.T) {
	s := NewScorer()
	seed := int64(9)

	result, _ := s.Hybrid(textFor("", &nlp.Doc{}), testBundle(), 1.0, &seed)
	if result.OverallThreatScore < 0 || result.OverallThreatScore > 100 {
		t.Errorf("overall = %v, outside [0,100]", result.OverallThreatScore)
	}
	if result.TechContribution != 0 {
		t.Errorf("tech = %v, want 0 for empty text", result.TechContribution)
	}
}

func TestHybridBlend(t *testing.T) {
	s := NewScorer()
	seed := int64(3)

	result, _ := s.Hybrid(textFor("act now before time is running out", &nlp.Doc{}), testBundle(), 0.5, &seed)

	// The blend consumes the raw draw; the reported contribution is the
	// rounded form of the same draw.
	draw := Heuristic(0.5, &seed)
	want := round2(hybridTechWeight*result.TechContribution + hybridHeuristicWeight*draw)
	if result.OverallThreatScore != want {
		t.Errorf("overall = %v, want %v from the 60/40 blend", result.OverallThreatScore, want)
	}
	if result.HeuristicContribution != round2(draw) {
		t.Errorf("heuristic contribution = %v, want %v rounded at assembly",
			result.HeuristicContribution, round2(draw))
	}
}

func TestHybridEvidenceMapping(t *testing.T) {
	s := NewScorer()
	seed := int64(1)
	raw := "The masters say act now. You have the power but you need this. Scientists say so."

	result, outcomes := s.Hybrid(textFor(raw, &nlp.Doc{}), testBundle(), 0.75, &seed)

	if len(result.AuthorityHits) != 1 {
		t.Errorf("AuthorityHits = %v, want one hit", result.AuthorityHits)
	}
	if len(result.UrgencyHits) != 1 {
		t.Errorf("UrgencyHits = %v, want one hit", result.UrgencyHits)
	}
	if len(result.ContradictionHits) != 1 {
		t.Errorf("ContradictionHits = %v, want one pair label", result.ContradictionHits)
	}
	if len(result.SourceAttributionHits) != 1 {
		t.Errorf("SourceAttributionHits = %v, want one hit", result.SourceAttributionHits)
	}
	if len(outcomes) != 7 {
		t.Errorf("got %d outcomes, want 7", len(outcomes))
	}
	if result.Message != model.Disclaimer {
		t.Errorf("message = %q, want the disclaimer", result.Message)
	}
}

func TestHybridEmptyHitListsAreNonNil(t *testing.T) {
	s := NewScorer()
	seed := int64(5)

	result, _ := s.Hybrid(textFor("nothing to see", &nlp.Doc{}), testBundle(), 0.5, &seed)

	for name, hits := range map[string][]string{
		"detected_entities":       result.DetectedEntities,
		"authority_hits":          result.AuthorityHits,
		"urgency_hits":            result.UrgencyHits,
		"emotion_hits":            result.EmotionHits,
		"contradiction_hits":      result.ContradictionHits,
		"source_attribution_hits": result.SourceAttributionHits,
		"escalation_hits":         result.EscalationHits,
	} {
		if hits == nil {
			t.Errorf("%s is nil, want empty slice", name)
		}
	}
}

func TestTechIndependentOfHeuristic(t *testing.T) {
	s := NewScorer()
	text := textFor("the masters say act now", &nlp.Doc{})

	tech1, _ := s.Tech(text, testBundle())

	seedA, seedB := int64(1), int64(99)
	resultA, _ := s.Hybrid(text, testBundle(), 1.0, &seedA)
	resultB, _ := s.Hybrid(text, testBundle(), 1.0, &seedB)

	if resultA.TechContribution != tech1 || resultB.TechContribution != tech1 {
		t.Error("tech contribution must not depend on the heuristic seed")
	}
	if resultA.HeuristicContribution == resultB.HeuristicContribution {
		t.Error("different seeds should change the heuristic contribution")
	}
}
