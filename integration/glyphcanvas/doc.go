// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glyphcanvas draws sets of plot labels into gogpu windows.
//
// A Layer owns one glyph.Renderer per label and a metrics.Service shared by
// all of them, so layout code can ask for the widest label before any
// pixels exist. The data flow is:
//
//	Layer.Add (text) -> glyph.Renderer (image) -> GPU texture -> window
//
// # Usage
//
//	layer := glyphcanvas.New(glyphcanvas.WithStyle(glyphcanvas.Style{
//	    Family:    "sans-serif",
//	    PixelSize: 12,
//	    Color:     color.Black,
//	}))
//	defer layer.Close()
//
//	for i, v := range ticks {
//	    layer.AddNumber(v, 2, axisX, float32(i)*step).SetAlign(glyphcanvas.AlignRight)
//	}
//	gutter := layer.MaxLabelWidth()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    layer.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Layer is NOT safe for concurrent use. Drive it from the draw goroutine.
//
// # Integration Without Circular Imports
//
// Only gpucontext interfaces are used for texture creation and drawing, so
// this package does not import gogpu.
package glyphcanvas
