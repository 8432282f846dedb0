package text

// ShapedGlyph is a glyph positioned by a Shaper.
// Face combines it with per-glyph bounds to produce a Glyph.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source rune index in the original text.
	Cluster int

	// X is the horizontal position relative to the text origin.
	X float64

	// Y is the vertical position relative to the baseline, Y grows down.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}
