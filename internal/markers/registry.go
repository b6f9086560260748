package markers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/avosk/discern/internal/model"
)

// Registry memoizes marker bundles per language. Loading is idempotent:
// concurrent callers requesting the same uninitialized language observe
// exactly one load, and no caller ever sees a half-built bundle.
type Registry struct {
	mu      sync.Mutex
	bundles map[Language]*Bundle
}

// loaders maps each supported language to its bundle constructor.
// Adding a language is purely additive: a new data file plus an entry here.
var loaders = map[Language]func() *Bundle{
	English:  englishBundle,
	Japanese: japaneseBundle,
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bundles: make(map[Language]*Bundle),
	}
}

// Get returns the validated bundle for lang, loading it on first use.
func (r *Registry) Get(lang Language) (*Bundle, error) {
	load, ok := loaders[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %v)", model.ErrUnsupportedLanguage, lang, Supported())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if bundle, ok := r.bundles[lang]; ok {
		return bundle, nil
	}

	bundle := load()
	if err := bundle.validate(); err != nil {
		return nil, err
	}
	r.bundles[lang] = bundle
	return bundle, nil
}

// Supported returns the sorted list of registered language codes.
func Supported() []Language {
	langs := make([]Language, 0, len(loaders))
	for lang := range loaders {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// IsSupported reports whether lang has a registered bundle loader.
func IsSupported(lang Language) bool {
	_, ok := loaders[lang]
	return ok
}
