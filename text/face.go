package text

import (
	"iter"
	"unicode/utf8"
)

// Face represents a font face at a specific pixel size.
// This is a lightweight object that can be created from a FontSource.
//
// Every measurement and DrawString walk the same shaped glyph positions,
// so ink queries describe exactly the pixels that get painted.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels,
	// kerning included.
	Advance(text string) float64

	// LeftBearing returns the distance from the origin of r's glyph to the
	// left edge of its ink. Negative when the ink overhangs to the left.
	LeftBearing(r rune) float64

	// RightBearing returns the distance from the right edge of r's ink to
	// its advance. Negative when the ink overhangs to the right.
	RightBearing(r rune) float64

	// InkBounds returns the union of the glyph ink boxes of text, relative
	// to the origin on the baseline. Empty when nothing would be painted.
	InkBounds(text string) Rect

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Glyphs returns an iterator over all glyphs in the text.
	// The glyphs are positioned relative to the origin (0, 0).
	Glyphs(text string) iter.Seq[Glyph]

	// AppendGlyphs appends glyphs for the text to dst and returns the extended slice.
	AppendGlyphs(dst []Glyph, text string) []Glyph

	// Shaper returns the shaper used by this face.
	Shaper() Shaper

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	if f.size <= 0 {
		return Metrics{}
	}
	return f.source.Parsed().Metrics(f.size)
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	if f.size <= 0 {
		return 0
	}
	total := 0.0
	for _, sg := range f.Shaper().Shape(text, f) {
		total += sg.XAdvance
	}
	return total
}

// LeftBearing implements Face.LeftBearing.
func (f *sourceFace) LeftBearing(r rune) float64 {
	if f.size <= 0 {
		return 0
	}
	parsed := f.source.Parsed()
	b := parsed.GlyphBounds(parsed.GlyphIndex(r), f.size)
	if b.Empty() {
		return 0
	}
	return b.MinX
}

// RightBearing implements Face.RightBearing.
func (f *sourceFace) RightBearing(r rune) float64 {
	if f.size <= 0 {
		return 0
	}
	parsed := f.source.Parsed()
	gid := parsed.GlyphIndex(r)
	b := parsed.GlyphBounds(gid, f.size)
	if b.Empty() {
		return 0
	}
	return parsed.GlyphAdvance(gid, f.size) - b.MaxX
}

// InkBounds implements Face.InkBounds.
func (f *sourceFace) InkBounds(text string) Rect {
	var ink Rect
	for g := range f.Glyphs(text) {
		ink = ink.Union(g.Ink())
	}
	return ink
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	return f.source.Parsed().GlyphIndex(r) != 0
}

// Glyphs implements Face.Glyphs.
func (f *sourceFace) Glyphs(text string) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		if f.size <= 0 || text == "" {
			return
		}
		runes, offsets := runeOffsets(text)
		parsed := f.source.Parsed()

		for _, sg := range f.Shaper().Shape(text, f) {
			if !yield(f.glyph(parsed, sg, runes, offsets)) {
				return
			}
		}
	}
}

// AppendGlyphs implements Face.AppendGlyphs.
func (f *sourceFace) AppendGlyphs(dst []Glyph, text string) []Glyph {
	if f.size <= 0 || text == "" {
		return dst
	}
	runes, offsets := runeOffsets(text)
	parsed := f.source.Parsed()

	for _, sg := range f.Shaper().Shape(text, f) {
		dst = append(dst, f.glyph(parsed, sg, runes, offsets))
	}
	return dst
}

func (f *sourceFace) glyph(parsed ParsedFont, sg ShapedGlyph, runes []rune, offsets []int) Glyph {
	g := Glyph{
		GID:     sg.GID,
		X:       sg.X,
		Y:       sg.Y,
		Advance: sg.XAdvance,
		Bounds:  parsed.GlyphBounds(uint16(sg.GID), f.size),
		Cluster: sg.Cluster,
	}
	if sg.Cluster >= 0 && sg.Cluster < len(runes) {
		g.Rune = runes[sg.Cluster]
		g.Index = offsets[sg.Cluster]
	}
	return g
}

// Shaper implements Face.Shaper.
func (f *sourceFace) Shaper() Shaper {
	if f.config.shaper != nil {
		return f.config.shaper
	}
	return GetShaper()
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// private implements the Face interface.
func (f *sourceFace) private() {}

// runeOffsets decodes text into runes and the byte offset of each rune.
func runeOffsets(text string) ([]rune, []int) {
	n := utf8.RuneCountInString(text)
	runes := make([]rune, 0, n)
	offsets := make([]int, 0, n)
	for i, r := range text {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	return runes, offsets
}
