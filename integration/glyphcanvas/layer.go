// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphcanvas

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/plotglyph"
	"github.com/gogpu/plotglyph/glyph"
	"github.com/gogpu/plotglyph/metrics"
	"github.com/gogpu/plotglyph/text"
)

// Layer errors.
var (
	// ErrLayerClosed is returned when operations are attempted on a closed layer.
	ErrLayerClosed = errors.New("glyphcanvas: layer is closed")

	// ErrNilDrawer is returned when RenderTo gets a nil drawer.
	ErrNilDrawer = errors.New("glyphcanvas: nil texture drawer")

	// ErrNoTextureCreator is returned when the drawer cannot create textures.
	ErrNoTextureCreator = errors.New("glyphcanvas: drawer has no texture creator")
)

// Style is the text style shared by every label of a layer.
type Style struct {
	Family    string
	PixelSize int
	Weight    text.Weight
	Color     color.Color
}

// DefaultStyle returns 12 px black "sans-serif" at normal weight.
func DefaultStyle() Style {
	return Style{
		Family:    "sans-serif",
		PixelSize: 12,
		Weight:    text.WeightNormal,
		Color:     color.Black,
	}
}

// Layer is a set of labels drawn with one style.
type Layer struct {
	registry *text.Registry
	shaper   text.Shaper
	service  *metrics.Service
	style    Style
	labels   []*Label
	closed   bool
}

// New creates an empty Layer.
func New(opts ...Option) *Layer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = text.DefaultRegistry()
	}

	mopts := []metrics.Option{
		metrics.WithRegistry(cfg.registry),
		metrics.WithWeight(cfg.style.Weight),
	}
	if cfg.shaper != nil {
		mopts = append(mopts, metrics.WithShaper(cfg.shaper))
	}
	if cfg.cacheCapacity > 0 {
		mopts = append(mopts, metrics.WithCacheCapacity(cfg.cacheCapacity))
	}

	return &Layer{
		registry: cfg.registry,
		shaper:   cfg.shaper,
		service:  metrics.New(mopts...),
		style:    cfg.style,
	}
}

// Metrics returns the measurement service used by the layer.
func (l *Layer) Metrics() *metrics.Service {
	return l.service
}

// Style returns the current style.
func (l *Layer) Style() Style {
	return l.style
}

// SetStyle changes the style of every label.
func (l *Layer) SetStyle(st Style) {
	if st.Weight != l.style.Weight {
		l.service = l.service.Weight(st.Weight)
	}
	l.style = st
	for _, lb := range l.labels {
		l.applyStyle(lb.renderer)
	}
}

func (l *Layer) applyStyle(r *glyph.Renderer) {
	r.SetFontFamily(l.style.Family)
	r.SetPixelSize(l.style.PixelSize)
	r.SetWeight(l.style.Weight)
	r.SetColor(l.style.Color)
}

// Add creates a label with its top-left corner at (x, y).
// It returns nil when the layer is closed.
func (l *Layer) Add(s string, x, y float32) *Label {
	if l.closed {
		return nil
	}

	opts := []glyph.Option{
		glyph.WithRegistry(l.registry),
		glyph.WithText(s),
	}
	if l.shaper != nil {
		opts = append(opts, glyph.WithShaper(l.shaper))
	}
	r := glyph.New(opts...)
	l.applyStyle(r)

	lb := &Label{renderer: r, x: x, y: y}
	l.labels = append(l.labels, lb)
	return lb
}

// AddNumber adds a label showing v with the given number of decimals.
func (l *Layer) AddNumber(v float64, decimals int, x, y float32) *Label {
	return l.Add(metrics.FormatNumber(v, decimals), x, y)
}

// Remove deletes lb from the layer and releases its texture. It reports
// whether lb belonged to the layer.
func (l *Layer) Remove(lb *Label) bool {
	i := slices.Index(l.labels, lb)
	if i < 0 {
		return false
	}
	l.labels = slices.Delete(l.labels, i, i+1)
	lb.close()
	return true
}

// Clear removes every label.
func (l *Layer) Clear() {
	for _, lb := range l.labels {
		lb.close()
	}
	clear(l.labels)
	l.labels = l.labels[:0]
}

// Len returns the number of labels.
func (l *Layer) Len() int {
	return len(l.labels)
}

// Labels returns the labels in insertion order.
func (l *Layer) Labels() []*Label {
	return slices.Clone(l.labels)
}

// Texts returns the label texts in insertion order.
func (l *Layer) Texts() []string {
	texts := make([]string, len(l.labels))
	for i, lb := range l.labels {
		texts[i] = lb.Text()
	}
	return texts
}

// MaxLabelWidth returns the widest bearing-compensated label width.
func (l *Layer) MaxLabelWidth() float64 {
	return l.service.MaxTextWidth(l.Texts(), l.style.Family, l.style.PixelSize)
}

// LabelHeight returns the height shared by all labels.
func (l *Layer) LabelHeight() float64 {
	return l.service.TextHeight(l.style.Family, l.style.PixelSize)
}

// InvalidateTextures marks every label texture stale. Call it after the
// window surface was recreated.
func (l *Layer) InvalidateTextures() {
	for _, lb := range l.labels {
		lb.renderer.InvalidateTexture()
	}
}

// RenderTo uploads stale label textures and draws every label.
//
// A failing label does not stop the others; all draw errors are returned
// joined.
func (l *Layer) RenderTo(dc gpucontext.TextureDrawer) error {
	if l.closed {
		return ErrLayerClosed
	}
	if dc == nil {
		return ErrNilDrawer
	}
	creator := dc.TextureCreator()
	if creator == nil {
		return ErrNoTextureCreator
	}

	var errs []error
	for _, lb := range l.labels {
		lb.node = lb.renderer.UpdateNode(lb.node, creator)
		if lb.node == nil || lb.node.Texture() == nil {
			continue
		}
		x, y := lb.origin()
		if err := dc.DrawTexture(lb.node.Texture(), x, y); err != nil {
			errs = append(errs, fmt.Errorf("glyphcanvas: draw %q: %w", lb.Text(), err))
		}
	}
	if len(errs) > 0 {
		plotglyph.Logger().Warn("glyphcanvas: draw failed", "labels", len(errs))
	}
	return errors.Join(errs...)
}

// Close releases every label. It is safe to call more than once.
func (l *Layer) Close() error {
	if l.closed {
		return nil
	}
	l.Clear()
	l.closed = true
	return nil
}
