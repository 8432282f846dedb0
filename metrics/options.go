package metrics

import "github.com/gogpu/plotglyph/text"

// Option configures a Service.
type Option func(*config)

type config struct {
	registry      *text.Registry
	shaper        text.Shaper
	weight        text.Weight
	cacheCapacity int
}

func defaultConfig() config {
	return config{
		registry:      nil, // text.DefaultRegistry()
		shaper:        nil, // text.GetShaper()
		weight:        text.WeightNormal,
		cacheCapacity: 256,
	}
}

// WithRegistry sets the font registry used to resolve families.
func WithRegistry(r *text.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithShaper sets the shaper used for every measurement.
func WithShaper(s text.Shaper) Option {
	return func(c *config) {
		c.shaper = s
	}
}

// WithWeight sets the weight used by the family/size methods.
// The default is text.WeightNormal.
func WithWeight(w text.Weight) Option {
	return func(c *config) {
		c.weight = w
	}
}

// WithCacheCapacity sets the per-shard capacity of the measurement cache.
func WithCacheCapacity(n int) Option {
	return func(c *config) {
		c.cacheCapacity = n
	}
}
