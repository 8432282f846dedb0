package glyph

import (
	"image/color"

	"github.com/gogpu/plotglyph/text"
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	registry  *text.Registry
	shaper    text.Shaper
	text      string
	color     color.NRGBA
	family    string
	pixelSize int
	weight    text.Weight
	update    func()
}

// Defaults: empty text, opaque black, "sans-serif", 12 px, normal weight.
func defaultConfig() config {
	return config{
		color:     color.NRGBA{A: 0xff},
		family:    "sans-serif",
		pixelSize: 12,
		weight:    text.WeightNormal,
	}
}

// WithRegistry sets the font registry. The default is text.DefaultRegistry().
func WithRegistry(r *text.Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithShaper sets the shaper used for measuring and drawing.
func WithShaper(s text.Shaper) Option {
	return func(c *config) { c.shaper = s }
}

// WithText sets the initial text.
func WithText(s string) Option {
	return func(c *config) { c.text = s }
}

// WithColor sets the initial text color.
func WithColor(col color.Color) Option {
	return func(c *config) { c.color = toNRGBA(col) }
}

// WithFontFamily sets the initial font family.
func WithFontFamily(family string) Option {
	return func(c *config) { c.family = family }
}

// WithPixelSize sets the initial pixel size.
func WithPixelSize(size int) Option {
	return func(c *config) { c.pixelSize = size }
}

// WithWeight sets the initial font weight.
func WithWeight(w text.Weight) Option {
	return func(c *config) { c.weight = w }
}

// WithUpdateFunc sets the function called after every effective property
// change to request a redraw.
func WithUpdateFunc(fn func()) Option {
	return func(c *config) { c.update = fn }
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
