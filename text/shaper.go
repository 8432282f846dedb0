package text

import (
	"sync"
	"sync/atomic"
)

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: cmap lookup, advances and kern-table pairs
//   - GoTextShaper: HarfBuzz shaping through go-text/typesetting
//
// Implementations must be safe for concurrent use.
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// The pixel size is obtained from face.Size().
	Shape(text string, face Face) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}

	shaperGen atomic.Uint64
)

// SetShaper sets the shaper used by faces created without WithShaper.
// Pass nil to reset to the default BuiltinShaper.
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil)
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
	shaperGen.Add(1)
}

// ShaperGeneration returns a counter that changes on every SetShaper call.
// Caches of results shaped with the global shaper use it to detect a swap.
func ShaperGeneration() uint64 {
	return shaperGen.Load()
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the face's shaper.
func Shape(text string, face Face) []ShapedGlyph {
	if face == nil {
		return nil
	}
	return face.Shaper().Shape(text, face)
}
