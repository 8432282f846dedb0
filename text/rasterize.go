package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// DrawString fills the glyph outlines of s onto dst with an anti-aliased
// uniform color, compositing with Porter-Duff over. (x, y) is the origin on
// the baseline in dst coordinates. Ink outside dst is clipped.
//
// The glyphs are the ones Face.Glyphs reports, so the painted pixels fall
// inside Face.InkBounds(s) translated by (x, y).
func DrawString(dst *image.RGBA, face Face, s string, x, y float64, col color.Color) {
	if dst == nil || face == nil || s == "" {
		return
	}

	glyphs := face.AppendGlyphs(nil, s)
	var ink Rect
	for _, g := range glyphs {
		ink = ink.Union(g.Ink())
	}
	if ink.Empty() {
		return
	}
	ink = ink.Translate(x, y)

	region := image.Rect(
		int(math.Floor(ink.MinX)), int(math.Floor(ink.MinY)),
		int(math.Ceil(ink.MaxX)), int(math.Ceil(ink.MaxY)),
	).Intersect(dst.Bounds())
	if region.Empty() {
		return
	}

	z := vector.NewRasterizer(region.Dx(), region.Dy())
	z.DrawOp = draw.Over

	src := face.Source()
	size := face.Size()
	for _, g := range glyphs {
		o := src.Outline(g.GID, size)
		if o.IsEmpty() {
			continue
		}
		appendOutline(z, o.Segments,
			float32(x+g.X-float64(region.Min.X)),
			float32(y+g.Y-float64(region.Min.Y)))
	}

	z.Draw(dst, region, image.NewUniform(col), image.Point{})
}

// appendOutline adds the contours of segs, offset by (dx, dy), to z.
func appendOutline(z *vector.Rasterizer, segs []OutlineSegment, dx, dy float32) {
	open := false
	for _, s := range segs {
		p := s.Points
		switch s.Op {
		case OutlineOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(p[0].X+dx, p[0].Y+dy)
			open = true
		case OutlineOpLineTo:
			z.LineTo(p[0].X+dx, p[0].Y+dy)
		case OutlineOpQuadTo:
			z.QuadTo(p[0].X+dx, p[0].Y+dy, p[1].X+dx, p[1].Y+dy)
		case OutlineOpCubicTo:
			z.CubeTo(p[0].X+dx, p[0].Y+dy, p[1].X+dx, p[1].Y+dy, p[2].X+dx, p[2].Y+dy)
		}
	}
	if open {
		z.ClosePath()
	}
}
