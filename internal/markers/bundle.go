// Package markers holds the per-language marker bundles used by every
// dimension scorer. The lists are heuristic signals, not verdicts: they
// describe common rhetorical patterns in spiritual/metaphysical
// disinformation across several traditions (generic new age, prosperity
// gospel, conspirituality, commercial exploitation, high-demand groups,
// fraternal orders).
package markers

import (
	"fmt"
	"strings"

	"github.com/avosk/discern/internal/model"
)

// Language is a registry-defined language code.
type Language string

const (
	English  Language = "en"
	Japanese Language = "ja"
)

// ContradictionPair is a labelled pair of opposing pattern sets. The pair
// triggers when at least one pattern from each pole occurs in the same text.
// Poles are symmetric: swapping them must not change whether a pair triggers.
type ContradictionPair struct {
	Label string
	PoleA []string
	PoleB []string
}

// EscalationTier groups commitment markers of one intensity level.
// Level 1 = mild/invitational, 2 = moderate/directive, 3 = extreme/coercive.
// Tiers are totally ordered by Level.
type EscalationTier struct {
	Level   int
	Phrases []string
}

// Bundle is the immutable set of all twelve marker categories for one
// language. Entries are stored in normalized comparable form: case-folded
// for cased languages, exact script form otherwise. Treat as read-only
// after load.
type Bundle struct {
	Language Language

	// CaseFolded reports whether this language distinguishes letter case,
	// in which case every entry below must already be lower-cased.
	CaseFolded bool

	VagueAdjectives map[string]bool

	AuthorityPhrases []string
	UrgencyPatterns  []string

	FearWords       map[string]bool
	FearPhrases     []string
	EuphoriaWords   map[string]bool
	EuphoriaPhrases []string

	UnfalsifiableSourcePhrases []string
	UnnamedAuthorityPhrases    []string
	VerifiableCitationMarkers  []string

	EscalationTiers    []EscalationTier
	ContradictionPairs []ContradictionPair
}

// MaxTierLevel returns the highest escalation tier level in the bundle.
func (b *Bundle) MaxTierLevel() int {
	max := 0
	for _, tier := range b.EscalationTiers {
		if tier.Level > max {
			max = tier.Level
		}
	}
	return max
}

// validate runs the load-time integrity check. It fails before any text is
// scored, so a malformed bundle can never produce a partial result.
func (b *Bundle) validate() error {
	categories := map[string]int{
		"vague_adjectives":             len(b.VagueAdjectives),
		"authority_phrases":            len(b.AuthorityPhrases),
		"urgency_patterns":             len(b.UrgencyPatterns),
		"fear_words":                   len(b.FearWords),
		"fear_phrases":                 len(b.FearPhrases),
		"euphoria_words":               len(b.EuphoriaWords),
		"euphoria_phrases":             len(b.EuphoriaPhrases),
		"unfalsifiable_source_phrases": len(b.UnfalsifiableSourcePhrases),
		"unnamed_authority_phrases":    len(b.UnnamedAuthorityPhrases),
		"verifiable_citation_markers":  len(b.VerifiableCitationMarkers),
		"escalation_tiers":             len(b.EscalationTiers),
		"contradiction_pairs":          len(b.ContradictionPairs),
	}
	for name, n := range categories {
		if n == 0 {
			return fmt.Errorf("%w: %s: empty category %q", model.ErrMarkerData, b.Language, name)
		}
	}

	if b.CaseFolded {
		for _, entry := range b.allEntries() {
			if entry != strings.ToLower(entry) {
				return fmt.Errorf("%w: %s: entry %q is not case-folded", model.ErrMarkerData, b.Language, entry)
			}
		}
	}

	seenLabels := make(map[string]bool)
	for _, pair := range b.ContradictionPairs {
		if pair.Label == "" {
			return fmt.Errorf("%w: %s: contradiction pair with empty label", model.ErrMarkerData, b.Language)
		}
		if seenLabels[pair.Label] {
			return fmt.Errorf("%w: %s: duplicate contradiction label %q", model.ErrMarkerData, b.Language, pair.Label)
		}
		seenLabels[pair.Label] = true

		if len(pair.PoleA) == 0 || len(pair.PoleB) == 0 {
			return fmt.Errorf("%w: %s: contradiction pair %q has an empty pole", model.ErrMarkerData, b.Language, pair.Label)
		}
		poleA := make(map[string]bool, len(pair.PoleA))
		for _, p := range pair.PoleA {
			poleA[p] = true
		}
		for _, p := range pair.PoleB {
			if poleA[p] {
				return fmt.Errorf("%w: %s: contradiction pair %q: pattern %q appears in both poles", model.ErrMarkerData, b.Language, pair.Label, p)
			}
		}
	}

	prevLevel := 0
	for _, tier := range b.EscalationTiers {
		if tier.Level <= prevLevel {
			return fmt.Errorf("%w: %s: escalation tiers not strictly ordered (level %d after %d)", model.ErrMarkerData, b.Language, tier.Level, prevLevel)
		}
		if len(tier.Phrases) == 0 {
			return fmt.Errorf("%w: %s: escalation tier %d has no phrases", model.ErrMarkerData, b.Language, tier.Level)
		}
		prevLevel = tier.Level
	}

	return nil
}

// allEntries flattens every marker entry for normalization checks.
func (b *Bundle) allEntries() []string {
	var out []string
	for w := range b.VagueAdjectives {
		out = append(out, w)
	}
	for w := range b.FearWords {
		out = append(out, w)
	}
	for w := range b.EuphoriaWords {
		out = append(out, w)
	}
	out = append(out, b.AuthorityPhrases...)
	out = append(out, b.UrgencyPatterns...)
	out = append(out, b.FearPhrases...)
	out = append(out, b.EuphoriaPhrases...)
	out = append(out, b.UnfalsifiableSourcePhrases...)
	out = append(out, b.UnnamedAuthorityPhrases...)
	out = append(out, b.VerifiableCitationMarkers...)
	for _, tier := range b.EscalationTiers {
		out = append(out, tier.Phrases...)
	}
	for _, pair := range b.ContradictionPairs {
		out = append(out, pair.PoleA...)
		out = append(out, pair.PoleB...)
	}
	return out
}

// wordSet builds a membership set from a word list.
func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
