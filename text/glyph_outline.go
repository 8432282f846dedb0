package text

import "github.com/gogpu/plotglyph/internal/cache"

// OutlinePoint represents a point in a glyph outline.
// Coordinates are in pixels, Y-down, relative to the glyph origin.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return unknownStr
	}
}

// GlyphOutline represents the vector outline of a glyph at one pixel size.
// The outline consists of zero or more closed contours.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []OutlineSegment

	// Bounds is the ink bounding box in pixels.
	Bounds Rect

	// Advance is the horizontal advance width of the glyph.
	Advance float64

	// GID is the glyph ID this outline represents.
	GID GlyphID
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// SegmentCount returns the number of segments in the outline.
func (o *GlyphOutline) SegmentCount() int {
	if o == nil {
		return 0
	}
	return len(o.Segments)
}

// GlyphKey identifies a scaled glyph outline in the outline cache.
type GlyphKey struct {
	GID  GlyphID
	Size float64
}

// OutlineCache caches scaled glyph outlines of a single FontSource.
// It is safe for concurrent use.
type OutlineCache struct {
	cache *cache.LRU[GlyphKey, *GlyphOutline]
}

// NewOutlineCache creates an outline cache holding at most limit outlines.
// A non-positive limit selects the cache package default.
func NewOutlineCache(limit int) *OutlineCache {
	return &OutlineCache{cache: cache.New[GlyphKey, *GlyphOutline](limit)}
}

// Outline returns the outline of gid at size, extracting it from parsed on
// first use.
func (c *OutlineCache) Outline(parsed ParsedFont, gid GlyphID, size float64) *GlyphOutline {
	key := GlyphKey{GID: gid, Size: size}
	return c.cache.GetOrCreate(key, func() *GlyphOutline {
		return extractOutline(parsed, gid, size)
	})
}

// Stats returns hit and eviction statistics.
func (c *OutlineCache) Stats() cache.Stats {
	return c.cache.Stats()
}

// Len returns the number of cached outlines.
func (c *OutlineCache) Len() int {
	return c.cache.Len()
}

// Clear drops all cached outlines.
func (c *OutlineCache) Clear() {
	c.cache.Clear()
}

func extractOutline(parsed ParsedFont, gid GlyphID, size float64) *GlyphOutline {
	idx := uint16(gid)
	return &GlyphOutline{
		Segments: parsed.GlyphOutline(idx, size),
		Bounds:   parsed.GlyphBounds(idx, size),
		Advance:  parsed.GlyphAdvance(idx, size),
		GID:      gid,
	}
}
