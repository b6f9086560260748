// Package nlp provides the linguistic preprocessing capability consumed by
// the dimension scorers: tokens with lemmas and coarse part-of-speech tags,
// sentence boundaries, and named entities. Engines are pluggable per
// language and loaded at most once per process.
package nlp

import (
	"fmt"
	"sync"

	"github.com/avosk/discern/internal/markers"
	"github.com/avosk/discern/internal/model"
)

// Coarse part-of-speech tags shared by all engines. Each engine maps its
// native tagset onto these.
const (
	PosAdjective  = "ADJ"
	PosNoun       = "NOUN"
	PosProperNoun = "PROPN"
	PosVerb       = "VERB"
	PosOther      = "X"
)

// Token is a single token with its dictionary form and coarse POS tag.
// Lemma is stored lower-cased for cased languages.
type Token struct {
	Text  string
	Lemma string
	POS   string
}

// Sentence is one sentence span of the source text.
type Sentence struct {
	Text string
}

// Doc is the preprocessed view of a text. It holds no reference back to
// the analysis request and is discarded after scoring.
type Doc struct {
	Tokens    []Token
	Sentences []Sentence
	Entities  []string
}

// Engine analyzes raw text for a single language.
type Engine interface {
	Analyze(text string) (*Doc, error)
}

// builders maps each supported language to its engine constructor.
var builders = map[markers.Language]func() (Engine, error){
	markers.English:  newEnglishEngine,
	markers.Japanese: newJapaneseEngine,
}

// Provider memoizes engines per language. Concurrent first access observes
// exactly one model load; a failed load surfaces as ErrModelLoad and is
// not retried within the provider's lifetime.
type Provider struct {
	mu      sync.Mutex
	engines map[markers.Language]Engine
	failed  map[markers.Language]error
}

// NewProvider creates an empty engine provider.
func NewProvider() *Provider {
	return &Provider{
		engines: make(map[markers.Language]Engine),
		failed:  make(map[markers.Language]error),
	}
}

// Get returns the engine for lang, loading it on first use.
func (p *Provider) Get(lang markers.Language) (Engine, error) {
	build, ok := builders[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnsupportedLanguage, lang)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if engine, ok := p.engines[lang]; ok {
		return engine, nil
	}
	if err, ok := p.failed[lang]; ok {
		return nil, err
	}

	engine, err := build()
	if err != nil {
		wrapped := fmt.Errorf("%w: %s: %v", model.ErrModelLoad, lang, err)
		p.failed[lang] = wrapped
		return nil, wrapped
	}
	p.engines[lang] = engine
	return engine, nil
}
