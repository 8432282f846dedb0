package glyph

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/gogpu/plotglyph/metrics"
	"github.com/gogpu/plotglyph/text"
)

// Renderer turns one styled string into a tight image and texture.
//
// Setters that do not change the value are no-ops. Any effective change
// marks the image and texture stale, notifies subscribers and calls the
// update function. Changes to text or font also recompute the metrics
// immediately, so implicit size and ink queries are never stale. A closed
// Renderer keeps accepting property changes but stays StateClean.
type Renderer struct {
	registry *text.Registry
	shaper   text.Shaper

	text      string
	color     color.NRGBA
	family    string
	pixelSize int
	weight    text.Weight

	face    text.Face
	metrics metrics.Metrics

	image        *image.RGBA
	node         *Node
	imageDirty   bool
	textureDirty bool
	closed       bool

	update    func()
	observers []observer
	nextID    uint64

	stats Stats
}

type observer struct {
	id uint64
	fn func(Property)
}

// New creates a Renderer. Both the image and the texture start stale.
func New(opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = text.DefaultRegistry()
	}

	r := &Renderer{
		registry:     cfg.registry,
		shaper:       cfg.shaper,
		text:         cfg.text,
		color:        cfg.color,
		family:       cfg.family,
		pixelSize:    cfg.pixelSize,
		weight:       cfg.weight,
		update:       cfg.update,
		imageDirty:   true,
		textureDirty: true,
	}
	r.updateMetrics()
	return r
}

// Text returns the displayed string.
func (r *Renderer) Text() string { return r.text }

// Color returns the text color.
func (r *Renderer) Color() color.NRGBA { return r.color }

// FontFamily returns the requested family name.
func (r *Renderer) FontFamily() string { return r.family }

// PixelSize returns the font size in pixels.
func (r *Renderer) PixelSize() int { return r.pixelSize }

// Weight returns the font weight.
func (r *Renderer) Weight() text.Weight { return r.weight }

// SetText changes the displayed string.
func (r *Renderer) SetText(s string) {
	if s == r.text {
		return
	}
	r.text = s
	r.updateMetrics()
	r.changed(PropertyText)
}

// SetColor changes the text color. The metrics are unaffected.
func (r *Renderer) SetColor(c color.Color) {
	nc := toNRGBA(c)
	if nc == r.color {
		return
	}
	r.color = nc
	r.changed(PropertyColor)
}

// SetFontFamily changes the font family.
func (r *Renderer) SetFontFamily(family string) {
	if family == r.family {
		return
	}
	r.family = family
	r.updateMetrics()
	r.changed(PropertyFont)
}

// SetPixelSize changes the font size in pixels.
func (r *Renderer) SetPixelSize(size int) {
	if size == r.pixelSize {
		return
	}
	r.pixelSize = size
	r.updateMetrics()
	r.changed(PropertyFont)
}

// SetWeight changes the font weight.
func (r *Renderer) SetWeight(w text.Weight) {
	if w == r.weight {
		return
	}
	r.weight = w
	r.updateMetrics()
	r.changed(PropertyFont)
}

// Subscribe registers fn to be called after every effective property
// change. The returned function removes the subscription.
func (r *Renderer) Subscribe(fn func(Property)) (cancel func()) {
	r.nextID++
	id := r.nextID
	r.observers = append(r.observers, observer{id: id, fn: fn})
	return func() {
		r.observers = slices.DeleteFunc(r.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

func (r *Renderer) changed(p Property) {
	if !r.closed {
		r.imageDirty = true
		r.textureDirty = true
	}
	for _, o := range slices.Clone(r.observers) {
		o.fn(p)
	}
	if r.update != nil {
		r.update()
	}
}

func (r *Renderer) updateMetrics() {
	r.face = nil
	if r.pixelSize > 0 {
		var opts []text.FaceOption
		if r.shaper != nil {
			opts = append(opts, text.WithShaper(r.shaper))
		}
		r.face = r.registry.Face(r.family, float64(r.pixelSize), r.weight, opts...)
	}
	r.metrics = metrics.Measure(r.face, r.text)
}

// Metrics returns the measurement of the current text and font.
func (r *Renderer) Metrics() metrics.Metrics { return r.metrics }

// Ascent returns the font ascent in pixels.
func (r *Renderer) Ascent() float64 { return r.metrics.Ascent }

// Descent returns the font descent in pixels.
func (r *Renderer) Descent() float64 { return r.metrics.Descent }

// AdvanceWidth returns the unrounded pen advance of the text.
func (r *Renderer) AdvanceWidth() float64 { return r.metrics.AdvanceWidth }

// ImplicitWidth returns ceil(AdvanceWidth), or 0 for empty text.
func (r *Renderer) ImplicitWidth() int {
	return int(math.Ceil(r.metrics.AdvanceWidth))
}

// ImplicitHeight returns ceil(Ascent + Descent). Empty text keeps its
// height so rows of labels stay aligned.
func (r *Renderer) ImplicitHeight() int {
	return int(math.Ceil(r.metrics.Ascent + r.metrics.Descent))
}

// ImplicitSize returns ImplicitWidth and ImplicitHeight.
func (r *Renderer) ImplicitSize() (width, height int) {
	return r.ImplicitWidth(), r.ImplicitHeight()
}

// Ink queries are in item coordinates: x from the text origin, y from the
// top of the item. All are zero when the text has no ink.

// InkLeft returns the leftmost ink position.
func (r *Renderer) InkLeft() float64 { return r.metrics.InkLeft }

// InkTop returns the topmost ink position.
func (r *Renderer) InkTop() float64 {
	if r.metrics.InkHeight == 0 {
		return 0
	}
	return r.metrics.Ascent + r.metrics.InkTop
}

// InkRight returns the rightmost ink position.
func (r *Renderer) InkRight() float64 { return r.metrics.InkRight }

// InkWidth returns the width of the ink box.
func (r *Renderer) InkWidth() float64 { return r.metrics.InkWidth }

// InkHeight returns the height of the ink box.
func (r *Renderer) InkHeight() float64 { return r.metrics.InkHeight }

// State reports which artifacts the next paint pass will rebuild.
func (r *Renderer) State() State {
	switch {
	case r.imageDirty:
		return StateImageStale
	case r.textureDirty:
		return StateTextureStale
	default:
		return StateClean
	}
}

// Image returns the last rasterized image, or nil when the text is empty,
// the size is zero, or no paint pass has run since the last change.
// The image is never modified after it is returned.
func (r *Renderer) Image() *image.RGBA { return r.image }

// Stats returns the work counters.
func (r *Renderer) Stats() Stats { return r.stats }
