// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphcanvas

import "github.com/gogpu/plotglyph/text"

// Option configures a Layer.
type Option func(*config)

type config struct {
	registry      *text.Registry
	shaper        text.Shaper
	style         Style
	cacheCapacity int
}

func defaultConfig() config {
	return config{style: DefaultStyle()}
}

// WithRegistry sets the font registry.
func WithRegistry(r *text.Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithShaper sets the shaper for measuring and drawing.
func WithShaper(s text.Shaper) Option {
	return func(c *config) { c.shaper = s }
}

// WithStyle sets the initial style.
func WithStyle(st Style) Option {
	return func(c *config) { c.style = st }
}

// WithCacheCapacity sets the metrics cache capacity.
func WithCacheCapacity(n int) Option {
	return func(c *config) { c.cacheCapacity = n }
}
