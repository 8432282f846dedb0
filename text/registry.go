package text

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gogpu/plotglyph"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/text/cases"
)

// Registry maps font family names to weighted FontSources.
//
// Family names are matched case-insensitively (Unicode case folding).
// A request for a weight the family lacks resolves to the nearest
// registered weight. A request for an unknown or empty family resolves to
// the default family.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu            sync.RWMutex
	families      map[string]*family // keyed by folded name
	aliases       map[string]string  // folded alias -> folded family
	defaultFamily string             // folded

	// generation changes whenever a lookup could resolve differently.
	generation atomic.Uint64
}

type family struct {
	name    string
	members []member // sorted by weight
}

type member struct {
	weight Weight
	source *FontSource
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		families: make(map[string]*family),
		aliases:  make(map[string]string),
	}
}

// foldName returns the matching key for a family name.
// cases.Caser is stateful, so a new one is made per call.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Register adds source as the w member of family, replacing any source
// already registered at that weight. The first family registered becomes
// the default family.
func (r *Registry) Register(name string, w Weight, source *FontSource) error {
	if source == nil {
		return ErrNilSource
	}
	key := foldName(name)
	if key == "" {
		return ErrEmptyFamily
	}
	w = w.Clamp()

	r.mu.Lock()
	defer r.mu.Unlock()

	fam, ok := r.families[key]
	if !ok {
		fam = &family{name: strings.TrimSpace(name)}
		r.families[key] = fam
	}

	i, found := slices.BinarySearchFunc(fam.members, w, func(m member, w Weight) int {
		return int(m.weight - w)
	})
	if found {
		fam.members[i].source = source
	} else {
		fam.members = slices.Insert(fam.members, i, member{weight: w, source: source})
	}

	if r.defaultFamily == "" {
		r.defaultFamily = key
	}
	r.generation.Add(1)
	return nil
}

// RegisterData parses data and registers it like Register.
func (r *Registry) RegisterData(name string, w Weight, data []byte, opts ...SourceOption) error {
	src, err := NewFontSource(data, opts...)
	if err != nil {
		return fmt.Errorf("text: register %q: %w", name, err)
	}
	return r.Register(name, w, src)
}

// Alias makes alias resolve to the registered family target.
func (r *Registry) Alias(alias, target string) error {
	a, t := foldName(alias), foldName(target)
	if a == "" {
		return ErrEmptyFamily
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.families[t]; !ok {
		return fmt.Errorf("text: alias %q: unknown family %q", alias, target)
	}
	r.aliases[a] = t
	r.generation.Add(1)
	return nil
}

// SetDefaultFamily selects the family used for unknown or empty names.
func (r *Registry) SetDefaultFamily(name string) error {
	key := foldName(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.aliases[key]; ok {
		key = t
	}
	if _, ok := r.families[key]; !ok {
		return fmt.Errorf("text: default family %q is not registered", name)
	}
	r.defaultFamily = key
	r.generation.Add(1)
	return nil
}

// Generation returns a counter that changes every time Register, Alias or
// SetDefaultFamily succeeds. Results cached against an older generation may
// no longer match what Match or Face return.
func (r *Registry) Generation() uint64 {
	return r.generation.Load()
}

// DefaultFamily returns the display name of the default family, or "" for
// an empty registry.
func (r *Registry) DefaultFamily() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fam, ok := r.families[r.defaultFamily]; ok {
		return fam.name
	}
	return ""
}

// Families returns the display names of all registered families, sorted.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.families))
	for _, fam := range r.families {
		names = append(names, fam.name)
	}
	slices.Sort(names)
	return names
}

// Has reports whether name is a registered family or alias.
func (r *Registry) Has(name string) bool {
	key := foldName(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.aliases[key]; ok {
		return true
	}
	_, ok := r.families[key]
	return ok
}

// Match resolves a family name and weight to a registered source.
// It returns the display name of the family actually used, and nil for an
// empty registry.
func (r *Registry) Match(name string, w Weight) (*FontSource, string) {
	key := foldName(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.aliases[key]; ok {
		key = t
	}
	fam, ok := r.families[key]
	if !ok {
		fam, ok = r.families[r.defaultFamily]
		if !ok {
			return nil, ""
		}
		plotglyph.Logger().Debug("text: font family not found, using default",
			"requested", name, "family", fam.name)
	}
	return fam.nearest(w.Clamp()), fam.name
}

// Face returns a face of the matched source at size pixels per em, or nil
// for an empty registry.
func (r *Registry) Face(name string, size float64, w Weight, opts ...FaceOption) Face {
	src, _ := r.Match(name, w)
	if src == nil {
		return nil
	}
	return src.Face(size, opts...)
}

// nearest picks the member closest to w. Ties go to the heavier weight for
// bold requests (above 500) and to the lighter one otherwise.
func (f *family) nearest(w Weight) *FontSource {
	best := f.members[0]
	bestDist := absWeight(best.weight - w)
	for _, m := range f.members[1:] {
		d := absWeight(m.weight - w)
		if d < bestDist || (d == bestDist && w > WeightMedium) {
			best, bestDist = m, d
		}
	}
	return best.source
}

func absWeight(w Weight) Weight {
	if w < 0 {
		return -w
	}
	return w
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	fonts := []struct {
		family string
		weight Weight
		data   []byte
	}{
		{"Go", WeightNormal, goregular.TTF},
		{"Go", WeightMedium, gomedium.TTF},
		{"Go", WeightBold, gobold.TTF},
		{"Go Mono", WeightNormal, gomono.TTF},
		{"Go Mono", WeightBold, gomonobold.TTF},
		{"Go Smallcaps", WeightNormal, gosmallcaps.TTF},
	}
	for _, f := range fonts {
		if err := r.RegisterData(f.family, f.weight, f.data); err != nil {
			panic(err) // embedded fonts always parse
		}
	}
	for alias, target := range map[string]string{
		"sans-serif": "Go",
		"sans":       "Go",
		"monospace":  "Go Mono",
		"mono":       "Go Mono",
	} {
		if err := r.Alias(alias, target); err != nil {
			panic(err)
		}
	}
	return r
})

// DefaultRegistry returns the shared registry preloaded with the Go fonts:
// "Go" (also "sans-serif") in normal, medium and bold, "Go Mono" (also
// "monospace") in normal and bold, and "Go Smallcaps". "Go" is the default
// family. Registering more fonts in it affects every user of the registry.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
