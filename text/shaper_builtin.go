package text

// BuiltinShaper provides text shaping using the font's cmap, horizontal
// metrics and kern table. It covers Latin, Cyrillic, Greek, CJK and other
// scripts that need no glyph substitution.
//
// For ligatures or complex scripts use GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct {
	// DisableKerning skips kern-table lookups.
	DisableKerning bool
}

// Shape implements the Shaper interface.
//
// Glyphs are placed left to right. A kerning adjustment between two glyphs
// is added to the advance of the first one, the way HarfBuzz reports it.
func (s *BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	source := face.Source()
	if source == nil {
		return nil
	}
	parsed := source.Parsed()
	if parsed == nil {
		return nil
	}

	size := face.Size()
	runes := []rune(text)
	result := make([]ShapedGlyph, 0, len(runes))

	var x float64
	for cluster, r := range runes {
		gid := parsed.GlyphIndex(r)

		if n := len(result); n > 0 && !s.DisableKerning {
			k := parsed.Kern(uint16(result[n-1].GID), gid, size)
			result[n-1].XAdvance += k
			x += k
		}

		advance := parsed.GlyphAdvance(gid, size)
		result = append(result, ShapedGlyph{
			GID:      GlyphID(gid),
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})
		x += advance
	}

	return result
}
