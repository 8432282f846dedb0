package text

import (
	"fmt"
	"sync"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/opentype vs a pure Go implementation).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
//
// All size-dependent queries take ppem (pixels per em) and return unhinted,
// fractional pixel values. Geometry uses a Y-down coordinate system with the
// origin on the baseline at the glyph origin.
//
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width for a glyph.
	GlyphAdvance(glyphIndex uint16, ppem float64) float64

	// GlyphBounds returns the ink bounding box for a glyph.
	// Glyphs without ink (space) return an empty Rect.
	GlyphBounds(glyphIndex uint16, ppem float64) Rect

	// Kern returns the horizontal kerning adjustment between two glyphs.
	// Returns 0 when the font has no kerning data for the pair.
	Kern(left, right uint16, ppem float64) float64

	// GlyphOutline returns the scaled outline segments of a glyph.
	GlyphOutline(glyphIndex uint16, ppem float64) []OutlineSegment

	// Metrics returns the font metrics at the given size.
	Metrics(ppem float64) Metrics
}

var (
	parserMu sync.RWMutex

	// parserRegistry holds registered font parsers.
	// The default parser is "ximage" (golang.org/x/image).
	parserRegistry = map[string]FontParser{
		defaultParserName: &ximageParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
// Registering under an existing name replaces the previous parser.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser registered under name.
// An empty name selects the default parser.
func getParser(name string) (FontParser, error) {
	if name == "" {
		name = defaultParserName
	}

	parserMu.RLock()
	defer parserMu.RUnlock()

	p, ok := parserRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, name)
	}
	return p, nil
}
