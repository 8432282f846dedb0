package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// sfnt.Font is safe for concurrent use as long as every call gets its own
// sfnt.Buffer, so buffers are pooled.
type ximageParsedFont struct {
	font *opentype.Font
	bufs sync.Pool
}

func (f *ximageParsedFont) getBuffer() *sfnt.Buffer {
	if b, ok := f.bufs.Get().(*sfnt.Buffer); ok {
		return b
	}
	return &sfnt.Buffer{}
}

func (f *ximageParsedFont) putBuffer(b *sfnt.Buffer) {
	f.bufs.Put(b)
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFull); err == nil && buf != "" {
		return buf
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	buf := f.getBuffer()
	defer f.putBuffer(buf)

	idx, err := f.font.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	buf := f.getBuffer()
	defer f.putBuffer(buf)

	advance, err := f.font.GlyphAdvance(buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}

	return fixedToFloat(advance)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *ximageParsedFont) GlyphBounds(glyphIndex uint16, ppem float64) Rect {
	buf := f.getBuffer()
	defer f.putBuffer(buf)

	bounds, _, err := f.font.GlyphBounds(buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return Rect{}
	}

	r := Rect{
		MinX: fixedToFloat(bounds.Min.X),
		MinY: fixedToFloat(bounds.Min.Y),
		MaxX: fixedToFloat(bounds.Max.X),
		MaxY: fixedToFloat(bounds.Max.Y),
	}
	if r.Empty() {
		return Rect{}
	}
	return r
}

// Kern implements ParsedFont.Kern.
func (f *ximageParsedFont) Kern(left, right uint16, ppem float64) float64 {
	buf := f.getBuffer()
	defer f.putBuffer(buf)

	k, err := f.font.Kern(buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		// sfnt.ErrNotFound: no kern table or the pair is not kerned.
		return 0
	}
	return fixedToFloat(k)
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *ximageParsedFont) GlyphOutline(glyphIndex uint16, ppem float64) []OutlineSegment {
	buf := f.getBuffer()
	defer f.putBuffer(buf)

	segs, err := f.font.LoadGlyph(buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), nil)
	if err != nil || len(segs) == 0 {
		return nil
	}

	// segs aliases buf, so it is copied before the buffer is reused.
	out := make([]OutlineSegment, len(segs))
	for i, s := range segs {
		out[i] = OutlineSegment{Op: segmentOp(s.Op)}
		for j := range s.Args {
			out[i].Points[j] = OutlinePoint{
				X: float32(fixedToFloat(s.Args[j].X)),
				Y: float32(fixedToFloat(s.Args[j].Y)),
			}
		}
	}
	return out
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) Metrics {
	buf := f.getBuffer()
	defer f.putBuffer(buf)

	m, err := f.font.Metrics(buf, floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return Metrics{}
	}

	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	ascent := fixedToFloat(m.Ascent)

	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   max(0, fixedToFloat(m.Height)-ascent-descent),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

func segmentOp(op sfnt.SegmentOp) OutlineOp {
	switch op {
	case sfnt.SegmentOpLineTo:
		return OutlineOpLineTo
	case sfnt.SegmentOpQuadTo:
		return OutlineOpQuadTo
	case sfnt.SegmentOpCubeTo:
		return OutlineOpCubicTo
	default:
		return OutlineOpMoveTo
	}
}

// floatToFixed converts a float64 value to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
