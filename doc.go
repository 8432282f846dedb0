// Package plotglyph provides pixel-exact text measurement and tight text
// rendering for plotting toolkits.
//
// # Overview
//
// Axis and tick-label layout needs to know, before anything is drawn, how
// much room a label occupies. plotglyph answers that question twice, once
// without rendering and once with it, and guarantees both answers agree:
//
//   - metrics.Service is a stateless query surface (advance width, ascent,
//     descent, ink bounds, bearing padding, and reductions over numeric
//     label sets).
//   - glyph.Renderer holds a styled string, sizes itself to the tight
//     bounding box and keeps a cached image and GPU texture in sync with its
//     properties through explicit dirty tracking.
//
// Both are built on package text, which loads fonts, resolves family names
// and weights, shapes strings and rasterizes glyph outlines.
//
// # Quick Start
//
//	svc := metrics.New()
//	w := svc.MaxNumberWidth([]float64{0, 2.5, 5, 7.5, 10}, 1, "sans-serif", 12)
//
//	r := glyph.New(glyph.WithText("10.0"), glyph.WithPixelSize(12))
//	defer r.Close()
//	node := r.UpdateNode(nil, textureCreator)
//
// # Coordinate System
//
// Rendered images use the usual raster convention: origin at the top-left
// corner, X grows right, Y grows down. The glyph baseline sits ascent pixels
// below the top edge.
//
// # Logging
//
// The library is silent by default. Call SetLogger to receive diagnostics.
package plotglyph

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
