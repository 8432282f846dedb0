package metrics

import (
	"math"

	"github.com/gogpu/plotglyph/text"
)

// StyleKey identifies one measurement. Equal keys always produce equal
// Metrics.
type StyleKey struct {
	Text      string
	Family    string
	PixelSize int
	Weight    text.Weight
}

// Metrics is the full measurement record of a styled string.
//
// All values are unrounded pixels. Ink coordinates are relative to the
// origin on the baseline with Y growing down, so InkTop is negative for ink
// above the baseline.
type Metrics struct {
	// AdvanceWidth is the pen advance of the whole string, kerning included.
	AdvanceWidth float64

	// Ascent and Descent are the font's distances above and below the
	// baseline (both positive).
	Ascent  float64
	Descent float64

	InkLeft   float64
	InkTop    float64
	InkRight  float64
	InkWidth  float64
	InkHeight float64

	// LeftBearing is the left bearing of the first character; negative when
	// its ink starts left of the origin.
	LeftBearing float64

	// RightBearing is the right bearing of the last character; negative when
	// its ink extends past the advance.
	RightBearing float64
}

// LeftPadding returns the whole pixels needed left of the origin so the
// first glyph is not clipped.
func (m Metrics) LeftPadding() float64 {
	if m.LeftBearing < 0 {
		return math.Ceil(-m.LeftBearing)
	}
	return 0
}

// RightPadding returns the whole pixels needed past the advance so the last
// glyph is not clipped.
func (m Metrics) RightPadding() float64 {
	if m.RightBearing < 0 {
		return math.Ceil(-m.RightBearing)
	}
	return 0
}

// Width returns the bearing-compensated width:
// ceil(AdvanceWidth) + LeftPadding + RightPadding.
func (m Metrics) Width() float64 {
	return math.Ceil(m.AdvanceWidth) + m.LeftPadding() + m.RightPadding()
}

// Height returns ceil(Ascent + Descent).
func (m Metrics) Height() float64 {
	return math.Ceil(m.Ascent + m.Descent)
}

// Empty reports whether the string has neither advance nor ink.
func (m Metrics) Empty() bool {
	return m.AdvanceWidth == 0 && m.InkWidth == 0 && m.InkHeight == 0
}
