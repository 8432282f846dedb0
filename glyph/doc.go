// Package glyph renders a single styled string into a tight, cached image
// and keeps a GPU texture in sync with it.
//
// A Renderer holds text, color, family, pixel size and weight. Its implicit
// size is ceil(advance) by ceil(ascent+descent), recomputed the moment an
// input changes. Pixels are produced lazily: a change only marks the image
// and texture stale, and the next paint pass (UpdateNode or DrawTo)
// rebuilds whatever is stale, once.
//
//	r := glyph.New(glyph.WithText("42.00"), glyph.WithPixelSize(12))
//	defer r.Close()
//
//	r.Subscribe(func(p glyph.Property) { relayout() })
//
//	// once per frame
//	node = r.UpdateNode(node, textureCreator)
//
// The text is drawn at baseline (0, Ascent) in an image exactly
// ImplicitWidth x ImplicitHeight pixels, so ink queries of package metrics
// map directly onto image coordinates.
//
// A Renderer is not safe for concurrent use; drive it from the goroutine
// that paints.
package glyph
