package text

import "strconv"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Weight is a font weight on the 100–900 scale used by CSS and Qt.
type Weight int

const (
	// WeightThin is the lightest standard weight.
	WeightThin Weight = 100
	// WeightExtraLight is also known as Ultra Light.
	WeightExtraLight Weight = 200
	// WeightLight is a light weight.
	WeightLight Weight = 300
	// WeightNormal is the regular weight.
	WeightNormal Weight = 400
	// WeightMedium is slightly heavier than normal.
	WeightMedium Weight = 500
	// WeightDemiBold is also known as Semi Bold.
	WeightDemiBold Weight = 600
	// WeightBold is the usual bold weight.
	WeightBold Weight = 700
	// WeightExtraBold is also known as Ultra Bold.
	WeightExtraBold Weight = 800
	// WeightBlack is the heaviest standard weight.
	WeightBlack Weight = 900
)

// String returns the string representation of the weight.
func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "Thin"
	case WeightExtraLight:
		return "ExtraLight"
	case WeightLight:
		return "Light"
	case WeightNormal:
		return "Normal"
	case WeightMedium:
		return "Medium"
	case WeightDemiBold:
		return "DemiBold"
	case WeightBold:
		return "Bold"
	case WeightExtraBold:
		return "ExtraBold"
	case WeightBlack:
		return "Black"
	default:
		return unknownStr
	}
}

// Clamp returns w limited to the [WeightThin, WeightBlack] range.
func (w Weight) Clamp() Weight {
	if w < WeightThin {
		return WeightThin
	}
	if w > WeightBlack {
		return WeightBlack
	}
	return w
}

// ParseWeight converts a weight name (as returned by String) or a number
// on the 100–900 scale to a Weight.
func ParseWeight(s string) (Weight, bool) {
	for w := WeightThin; w <= WeightBlack; w += 100 {
		if s == w.String() {
			return w, true
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(WeightThin) || n > int(WeightBlack) {
		return 0, false
	}
	return Weight(n), true
}

// Rect represents a rectangle in pixel space.
// The Y axis increases down, so glyph ink above the baseline has negative Y.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		MinX: r.MinX + dx,
		MinY: r.MinY + dy,
		MaxX: r.MaxX + dx,
		MaxY: r.MaxY + dy,
	}
}

// Union returns the smallest rectangle containing both r and s.
// Empty rectangles do not contribute.
func (r Rect) Union(s Rect) Rect {
	if s.Empty() {
		return r
	}
	if r.Empty() {
		return s
	}
	return Rect{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}
