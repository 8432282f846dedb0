package metrics

import (
	"math"

	"github.com/gogpu/plotglyph"
	"github.com/gogpu/plotglyph/internal/cache"
	"github.com/gogpu/plotglyph/text"
)

// Service is the measurement surface used by layout code.
//
// Methods never fail: an empty or unknown family falls back to the registry
// default family, and a non-positive pixel size measures as zero. Results
// are cached per StyleKey.
//
// Service is safe for concurrent use.
type Service struct {
	registry *text.Registry
	shaper   text.Shaper
	weight   text.Weight
	cache    *cache.Sharded[cacheKey, Metrics]
}

// cacheKey extends StyleKey with the generations of the registry and the
// global shaper, so entries measured before a registry or shaper change are
// never returned afterwards. The shaper itself is fixed per cache.
type cacheKey struct {
	StyleKey
	registryGen uint64
	shaperGen   uint64
}

// New creates a Service.
func New(opts ...Option) *Service {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = text.DefaultRegistry()
	}

	c := cache.NewSharded[cacheKey, Metrics](cfg.cacheCapacity, hashKey)
	c.OnEvict(func(k cacheKey, _ Metrics) {
		plotglyph.Logger().Debug("metrics: cache eviction",
			"family", k.Family, "size", k.PixelSize, "text", k.Text)
	})

	return &Service{
		registry: cfg.registry,
		shaper:   cfg.shaper,
		weight:   cfg.weight,
		cache:    c,
	}
}

var styleHasher = cache.ComparableHasher[StyleKey]()

// hashKey ignores the generations; stale entries share a shard with their
// replacements and age out of it.
func hashKey(k cacheKey) uint64 {
	return styleHasher(k.StyleKey)
}

// Weight returns a view of s measuring at weight w. The view shares the
// registry, shaper and cache of s.
func (s *Service) Weight(w text.Weight) *Service {
	if w == s.weight {
		return s
	}
	view := *s
	view.weight = w
	return &view
}

// Registry returns the registry used to resolve families.
func (s *Service) Registry() *text.Registry {
	return s.registry
}

// Face returns the face a measurement of family at pixelSize and the
// service weight would use, or nil for a non-positive size.
func (s *Service) Face(family string, pixelSize int) text.Face {
	return s.face(family, pixelSize, s.weight)
}

func (s *Service) face(family string, pixelSize int, w text.Weight) text.Face {
	if pixelSize <= 0 {
		return nil
	}
	return s.registry.Face(family, float64(pixelSize), w, text.WithShaper(s.shaper))
}

// Measure returns the full Metrics record for k.
func (s *Service) Measure(k StyleKey) Metrics {
	if k.PixelSize <= 0 {
		return Metrics{}
	}
	key := cacheKey{StyleKey: k, registryGen: s.registry.Generation()}
	if s.shaper == nil {
		key.shaperGen = text.ShaperGeneration()
	}
	return s.cache.GetOrCreate(key, func() Metrics {
		return Measure(s.face(k.Family, k.PixelSize, k.Weight), k.Text)
	})
}

// CacheStats returns statistics of the measurement cache.
func (s *Service) CacheStats() cache.Stats {
	return s.cache.Stats()
}

func (s *Service) measure(str, family string, pixelSize int) Metrics {
	return s.Measure(StyleKey{
		Text:      str,
		Family:    family,
		PixelSize: pixelSize,
		Weight:    s.weight,
	})
}

// AdvanceWidth returns the bearing-compensated width of str (see
// Metrics.Width). It is 0 for empty text.
func (s *Service) AdvanceWidth(str, family string, pixelSize int) float64 {
	if str == "" {
		return 0
	}
	return s.measure(str, family, pixelSize).Width()
}

// TextWidth is AdvanceWidth.
func (s *Service) TextWidth(str, family string, pixelSize int) float64 {
	return s.AdvanceWidth(str, family, pixelSize)
}

// TextHeight returns ceil(ascent + descent) of the font. It does not depend
// on any string.
func (s *Service) TextHeight(family string, pixelSize int) float64 {
	return s.measure("", family, pixelSize).Height()
}

// Ascent returns the unrounded font ascent.
func (s *Service) Ascent(family string, pixelSize int) float64 {
	return s.measure("", family, pixelSize).Ascent
}

// Descent returns the unrounded font descent (positive).
func (s *Service) Descent(family string, pixelSize int) float64 {
	return s.measure("", family, pixelSize).Descent
}

// MaxTextWidth returns the largest AdvanceWidth over texts, or 0 for an
// empty set.
func (s *Service) MaxTextWidth(texts []string, family string, pixelSize int) float64 {
	var w float64
	for _, t := range texts {
		w = max(w, s.AdvanceWidth(t, family, pixelSize))
	}
	return w
}

// NumberWidth returns the AdvanceWidth of FormatNumber(value, decimals).
func (s *Service) NumberWidth(value float64, decimals int, family string, pixelSize int) float64 {
	return s.AdvanceWidth(FormatNumber(value, decimals), family, pixelSize)
}

// MaxNumberWidth returns the largest NumberWidth over values.
func (s *Service) MaxNumberWidth(values []float64, decimals int, family string, pixelSize int) float64 {
	var w float64
	for _, v := range values {
		w = max(w, s.NumberWidth(v, decimals, family, pixelSize))
	}
	return w
}

// MaxLeftPadding returns the largest LeftPadding over the formatted values,
// 0 when no value starts with a glyph overhanging the origin.
func (s *Service) MaxLeftPadding(values []float64, decimals int, family string, pixelSize int) float64 {
	var pad float64
	for _, v := range values {
		pad = max(pad, s.measure(FormatNumber(v, decimals), family, pixelSize).LeftPadding())
	}
	return pad
}

// MaxRightPadding returns the largest RightPadding over the formatted
// values.
func (s *Service) MaxRightPadding(values []float64, decimals int, family string, pixelSize int) float64 {
	var pad float64
	for _, v := range values {
		pad = max(pad, s.measure(FormatNumber(v, decimals), family, pixelSize).RightPadding())
	}
	return pad
}

// InkLeft returns the unrounded left edge of the ink of str relative to the
// origin. 0 for empty text.
func (s *Service) InkLeft(str, family string, pixelSize int) float64 {
	if str == "" {
		return 0
	}
	return s.measure(str, family, pixelSize).InkLeft
}

// InkRight returns InkLeft + InkWidth, unrounded.
func (s *Service) InkRight(str, family string, pixelSize int) float64 {
	if str == "" {
		return 0
	}
	return s.measure(str, family, pixelSize).InkRight
}

// InkWidth returns the unrounded width of the ink of str.
func (s *Service) InkWidth(str, family string, pixelSize int) float64 {
	if str == "" {
		return 0
	}
	return s.measure(str, family, pixelSize).InkWidth
}

// MaxInkRight returns ceil of the largest InkRight over the formatted
// values, starting from 0.
func (s *Service) MaxInkRight(values []float64, decimals int, family string, pixelSize int) float64 {
	var right float64
	for _, v := range values {
		right = max(right, s.measure(FormatNumber(v, decimals), family, pixelSize).InkRight)
	}
	return math.Ceil(right)
}

// MinInkLeft returns how far, in whole pixels, the ink of any formatted
// value extends left of its origin: ceil(-min(0, InkLeft...)).
func (s *Service) MinInkLeft(values []float64, decimals int, family string, pixelSize int) float64 {
	var left float64
	for _, v := range values {
		left = min(left, s.measure(FormatNumber(v, decimals), family, pixelSize).InkLeft)
	}
	// -0 is reported as 0
	return math.Ceil(-left) + 0
}

// MaxInkWidth returns ceil of the largest InkWidth over the formatted
// values.
func (s *Service) MaxInkWidth(values []float64, decimals int, family string, pixelSize int) float64 {
	var w float64
	for _, v := range values {
		w = max(w, s.measure(FormatNumber(v, decimals), family, pixelSize).InkWidth)
	}
	return math.Ceil(w)
}
