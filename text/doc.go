// Package text loads fonts, shapes strings and rasterizes glyph outlines
// for plotglyph.
//
// The pipeline separates heavy and light objects:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a pixel size, bound to a Shaper
//   - Registry: family name and weight to FontSource resolution
//   - FontParser: pluggable font parsing backend (default: golang.org/x/image)
//
// # Example usage
//
//	face := text.DefaultRegistry().Face("sans-serif", 12, text.WeightNormal)
//
//	w := face.Advance("3.14")
//	ink := face.InkBounds("3.14")
//
//	img := image.NewRGBA(image.Rect(0, 0, 64, 16))
//	text.DrawString(img, face, "3.14", 0, face.Metrics().Ascent, color.Black)
//
// # Measurement
//
// All measurements are unhinted and fractional. Geometry is Y-down with the
// origin on the baseline: ink above the baseline has negative Y, ascent and
// descent are reported as positive distances.
//
// # Shaping
//
// BuiltinShaper (cmap, advances, kern table) is the default. GoTextShaper
// uses go-text/typesetting for full OpenType shaping:
//
//	face := source.Face(12, text.WithShaper(text.NewGoTextShaper()))
//
// # Pluggable Parser Backend
//
// Custom parsers can be registered for alternative implementations:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
