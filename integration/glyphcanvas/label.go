// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphcanvas

import "github.com/gogpu/plotglyph/glyph"

// Align is the horizontal anchor of a label.
type Align uint8

const (
	// AlignLeft puts the label's left edge at its x.
	AlignLeft Align = iota
	// AlignCenter centers the label on its x.
	AlignCenter
	// AlignRight puts the label's right edge at its x.
	AlignRight
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Label is one string of a Layer.
type Label struct {
	renderer *glyph.Renderer
	node     *glyph.Node
	x, y     float32
	align    Align
}

// Text returns the label text.
func (lb *Label) Text() string {
	return lb.renderer.Text()
}

// SetText changes the label text.
func (lb *Label) SetText(s string) *Label {
	lb.renderer.SetText(s)
	return lb
}

// Position returns the anchor point.
func (lb *Label) Position() (x, y float32) {
	return lb.x, lb.y
}

// SetPosition moves the anchor point.
func (lb *Label) SetPosition(x, y float32) *Label {
	lb.x, lb.y = x, y
	return lb
}

// Align returns the horizontal anchor.
func (lb *Label) Align() Align {
	return lb.align
}

// SetAlign changes the horizontal anchor.
func (lb *Label) SetAlign(a Align) *Label {
	lb.align = a
	return lb
}

// Renderer exposes the underlying renderer for ink queries.
func (lb *Label) Renderer() *glyph.Renderer {
	return lb.renderer
}

// origin returns the top-left corner the texture is drawn at.
func (lb *Label) origin() (x, y float32) {
	w := float32(lb.renderer.ImplicitWidth())
	switch lb.align {
	case AlignCenter:
		return lb.x - w/2, lb.y
	case AlignRight:
		return lb.x - w, lb.y
	default:
		return lb.x, lb.y
	}
}

func (lb *Label) close() {
	lb.node = nil
	_ = lb.renderer.Close()
}
