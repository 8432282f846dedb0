package text

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// Glyph represents a single shaped glyph with its position and metrics.
// This is the output of text shaping and is ready for rendering.
type Glyph struct {
	// Rune is the Unicode character this glyph represents.
	// For ligatures, this is the first character of the ligature.
	Rune rune

	// GID is the glyph index in the font.
	GID GlyphID

	// X, Y are the pen position of the glyph relative to the text origin.
	// The origin is at the baseline of the first character, Y grows down.
	X, Y float64

	// Advance is the horizontal advance of the glyph, kerning included.
	Advance float64

	// Bounds is the ink bounding box relative to the glyph's own origin.
	// Empty for glyphs without ink, such as spaces.
	Bounds Rect

	// Index is the byte position in the original string where this glyph starts.
	Index int

	// Cluster is the rune index of the character cluster.
	// Multiple glyphs can belong to the same cluster (e.g., ligatures).
	Cluster int
}

// Ink returns the glyph's ink box relative to the text origin.
func (g Glyph) Ink() Rect {
	if g.Bounds.Empty() {
		return Rect{}
	}
	return g.Bounds.Translate(g.X, g.Y)
}
