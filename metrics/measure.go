package metrics

import (
	"unicode/utf8"

	"github.com/gogpu/plotglyph/text"
)

// Measure computes the Metrics of s in face.
//
// The advance and ink box come from a single walk over the shaped glyphs,
// the same positions text.DrawString paints. Bearings are those of the
// first and last character. Empty text reports only the font's ascent and
// descent and never queries glyph data. A nil face yields zero Metrics.
func Measure(face text.Face, s string) Metrics {
	if face == nil {
		return Metrics{}
	}

	fm := face.Metrics()
	m := Metrics{
		Ascent:  fm.Ascent,
		Descent: fm.Descent,
	}
	if s == "" {
		return m
	}

	var ink text.Rect
	for g := range face.Glyphs(s) {
		m.AdvanceWidth += g.Advance
		ink = ink.Union(g.Ink())
	}
	if !ink.Empty() {
		m.InkLeft = ink.MinX
		m.InkTop = ink.MinY
		m.InkRight = ink.MaxX
		m.InkWidth = ink.Width()
		m.InkHeight = ink.Height()
	}

	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	m.LeftBearing = face.LeftBearing(first)
	m.RightBearing = face.RightBearing(last)

	return m
}
