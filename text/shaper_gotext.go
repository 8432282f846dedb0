package text

import (
	"bytes"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports advanced OpenType features including:
//   - Ligature substitution (fi, fl, ffi, etc.)
//   - GPOS kerning and mark positioning
//   - Contextual alternates
//
// GoTextShaper is an opt-in replacement for BuiltinShaper:
//
//	face := source.Face(12, text.WithShaper(text.NewGoTextShaper()))
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// Shape call (font.Face is NOT safe for concurrent use). HarfbuzzShaper
// instances are pooled for the same reason.
type GoTextShaper struct {
	shaperPool sync.Pool

	lang     language.Language
	features []shaping.FontFeature

	// mu protects fontCache.
	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// GoTextOption configures a GoTextShaper.
type GoTextOption func(*GoTextShaper)

// WithLanguage sets the BCP 47 language tag passed to the shaper.
// The default is "en".
func WithLanguage(tag string) GoTextOption {
	return func(s *GoTextShaper) {
		s.lang = language.NewLanguage(tag)
	}
}

// WithFeature sets an OpenType feature for every shaped run, for example
// WithFeature("liga", 0) to disable standard ligatures.
// tag must be exactly four bytes.
func WithFeature(tag string, value uint32) GoTextOption {
	return func(s *GoTextShaper) {
		s.features = append(s.features, shaping.FontFeature{
			Tag:   ot.MustNewTag(tag),
			Value: value,
		})
	}
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper(opts ...GoTextOption) *GoTextShaper {
	s := &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		lang:      language.NewLanguage("en"),
		fontCache: make(map[*FontSource]*font.Font),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	source := face.Source()
	if source == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(source)
	if err != nil {
		// The source was already parsed successfully by its FontParser,
		// so this only happens for data go-text rejects.
		return nil
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    di.DirectionLTR,
		Face:         font.NewFace(goTextFont),
		FontFeatures: s.features,
		Size:         floatToFixed(face.Size()),
		Script:       detectScript(runes),
		Language:     s.lang,
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	return convertGlyphs(output.Glyphs)
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not Face).
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	goTextFace, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}

	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

// RemoveSource removes the cached parsed font for a specific FontSource.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

// detectScript returns the script of the first non-space rune.
// Mixed-script text is shaped as a single run in that script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text output glyphs to ShapedGlyph.
// go-text offsets are Y-up; ShapedGlyph is Y-down.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		gid := GlyphID(0)
		if g.GlyphID <= math.MaxUint16 {
			gid = GlyphID(g.GlyphID)
		}
		adv := fixedToFloat(g.Advance)
		result[i] = ShapedGlyph{
			GID:      gid,
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return result
}
