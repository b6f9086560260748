package markers

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/avosk/discern/internal/model"
)

func TestGetUnsupportedLanguage(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("xx")
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}
	if !errors.Is(err, model.ErrUnsupportedLanguage) {
		t.Errorf("error = %v, want ErrUnsupportedLanguage", err)
	}
	if !strings.Contains(err.Error(), "xx") {
		t.Errorf("error %q should name the requested language", err)
	}
}

func TestGetMemoizes(t *testing.T) {
	r := NewRegistry()

	first, err := r.Get(English)
	if err != nil {
		t.Fatalf("Get(English) error: %v", err)
	}
	second, err := r.Get(English)
	if err != nil {
		t.Fatalf("second Get(English) error: %v", err)
	}
	if first != second {
		t.Error("repeated Get should return the same bundle instance")
	}
}

func TestGetConcurrentSameInstance(t *testing.T) {
	r := NewRegistry()

	const goroutines = 16
	bundles := make([]*Bundle, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := r.Get(Japanese)
			if err != nil {
				t.Errorf("Get(Japanese) error: %v", err)
				return
			}
			bundles[i] = b
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if bundles[i] != bundles[0] {
			t.Fatalf("goroutine %d observed a different bundle instance", i)
		}
	}
}

func TestSupported(t *testing.T) {
	langs := Supported()
	if len(langs) != 2 {
		t.Fatalf("Supported() = %v, want [en ja]", langs)
	}
	if langs[0] != English || langs[1] != Japanese {
		t.Errorf("Supported() = %v, want sorted [en ja]", langs)
	}

	if !IsSupported(English) || !IsSupported(Japanese) {
		t.Error("en and ja should be supported")
	}
	if IsSupported("de") {
		t.Error("de should not be supported")
	}
}

func TestBundlesValidate(t *testing.T) {
	for _, lang := range Supported() {
		lang := lang
		t.Run(string(lang), func(t *testing.T) {
			b, err := NewRegistry().Get(lang)
			if err != nil {
				t.Fatalf("Get(%s) error: %v", lang, err)
			}
			if b.Language != lang {
				t.Errorf("bundle language = %q, want %q", b.Language, lang)
			}
			if b.MaxTierLevel() != 3 {
				t.Errorf("MaxTierLevel = %d, want 3", b.MaxTierLevel())
			}
		})
	}
}

func TestEnglishBundleCaseFolded(t *testing.T) {
	b := englishBundle()
	if !b.CaseFolded {
		t.Fatal("English bundle must be case-folded")
	}
	for _, entry := range b.allEntries() {
		if entry != strings.ToLower(entry) {
			t.Errorf("entry %q is not lower-cased", entry)
		}
	}
}

func TestValidateRejectsEmptyCategory(t *testing.T) {
	b := englishBundle()
	b.UrgencyPatterns = nil

	err := b.validate()
	if !errors.Is(err, model.ErrMarkerData) {
		t.Errorf("validate() = %v, want ErrMarkerData", err)
	}
}

func TestValidateRejectsUppercaseEntry(t *testing.T) {
	b := englishBundle()
	b.AuthorityPhrases = append(b.AuthorityPhrases, "The Masters Say")

	err := b.validate()
	if !errors.Is(err, model.ErrMarkerData) {
		t.Errorf("validate() = %v, want ErrMarkerData", err)
	}
}

func TestValidateRejectsOverlappingPoles(t *testing.T) {
	b := englishBundle()
	b.ContradictionPairs = append(b.ContradictionPairs, ContradictionPair{
		Label: "broken pair",
		PoleA: []string{"shared pattern"},
		PoleB: []string{"shared pattern", "other"},
	})

	err := b.validate()
	if !errors.Is(err, model.ErrMarkerData) {
		t.Errorf("validate() = %v, want ErrMarkerData", err)
	}
}

func TestValidateRejectsDuplicateLabels(t *testing.T) {
	b := englishBundle()
	b.ContradictionPairs = append(b.ContradictionPairs, ContradictionPair{
		Label: b.ContradictionPairs[0].Label,
		PoleA: []string{"a"},
		PoleB: []string{"b"},
	})

	err := b.validate()
	if !errors.Is(err, model.ErrMarkerData) {
		t.Errorf("validate() = %v, want ErrMarkerData", err)
	}
}

func TestValidateRejectsUnorderedTiers(t *testing.T) {
	b := englishBundle()
	b.EscalationTiers[1].Level = 1 // duplicate of tier 0

	err := b.validate()
	if !errors.Is(err, model.ErrMarkerData) {
		t.Errorf("validate() = %v, want ErrMarkerData", err)
	}
}

func TestRegistryRejectsInvalidBundle(t *testing.T) {
	// Swap in a broken loader to confirm Get surfaces validation failures.
	orig := loaders[English]
	loaders[English] = func() *Bundle {
		b := englishBundle()
		b.FearPhrases = nil
		return b
	}
	defer func() { loaders[English] = orig }()

	_, err := NewRegistry().Get(English)
	if !errors.Is(err, model.ErrMarkerData) {
		t.Errorf("Get with broken loader = %v, want ErrMarkerData", err)
	}
}
