package namegen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"namebot/internal/domain"
)

// ErrUnsupportedLocale is returned for locales without a dictionary.
var ErrUnsupportedLocale = errors.New("namegen: unsupported locale")

// Generator draws first and last names from per-locale dictionaries.
// It is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	dicts map[string]dictionary
}

type Option func(*Generator)

// WithSource replaces the random source, mainly for deterministic tests.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.rnd = rand.New(src)
		}
	}
}

// WithNames registers or replaces the dictionary for a locale.
func WithNames(localeID string, male, female, last []string) Option {
	return func(g *Generator) {
		g.dicts[localeID] = dictionary{male: male, female: female, last: last}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		rnd:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		dicts: make(map[string]dictionary, len(defaultDictionaries)),
	}
	for id, d := range defaultDictionaries {
		g.dicts[id] = d
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a first and last name for the locale and gender.
func (g *Generator) Generate(localeID string, gender domain.Gender) (string, string, error) {
	d, ok := g.dicts[localeID]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, localeID)
	}

	var firsts []string
	switch gender {
	case domain.GenderMale:
		firsts = d.male
	case domain.GenderFemale:
		firsts = d.female
	default:
		return "", "", fmt.Errorf("namegen: unknown gender %q", gender)
	}
	if len(firsts) == 0 || len(d.last) == 0 {
		return "", "", fmt.Errorf("namegen: empty dictionary for %q", localeID)
	}

	g.mu.Lock()
	first := firsts[g.rnd.IntN(len(firsts))]
	last := d.last[g.rnd.IntN(len(d.last))]
	// A first name may double as a surname in custom dictionaries.
	for last == first && len(d.last) > 1 {
		last = d.last[g.rnd.IntN(len(d.last))]
	}
	g.mu.Unlock()

	return first, last, nil
}

// Supports reports whether a dictionary exists for the locale.
func (g *Generator) Supports(localeID string) bool {
	_, ok := g.dicts[localeID]
	return ok
}
