package glyph

import (
	"errors"
	"image"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/plotglyph"
	"github.com/gogpu/plotglyph/text"
)

// ErrNilDrawer is returned by DrawTo when no drawer is given.
var ErrNilDrawer = errors.New("glyph: nil texture drawer")

// UpdateNode runs the paint pass and returns the node to draw.
//
// old is the node returned by the previous call, or nil when the host has
// none (first frame, or the host dropped its nodes). When the text is empty
// or the implicit size is zero, the node and its texture are released and
// UpdateNode returns nil.
//
// A stale image is rasterized once. A stale texture is replaced: the
// previous texture is released before the new one is uploaded, so a
// Renderer owns at most one texture. With a nil surface, or when the upload
// fails, the texture stays stale and is retried on the next call.
func (r *Renderer) UpdateNode(old *Node, surface gpucontext.TextureCreator) *Node {
	if r.closed {
		r.releaseNode(old)
		return nil
	}

	r.renderImage()
	if r.image == nil {
		r.releaseNode(old)
		r.releaseNode(r.node)
		r.node = nil
		r.textureDirty = false
		return nil
	}

	node := old
	if node == nil {
		node = newNode()
		r.textureDirty = true
	}
	if r.node != nil && r.node != node {
		r.releaseNode(r.node)
	}
	r.node = node

	if r.textureDirty {
		r.upload(node, surface)
	}

	b := r.image.Bounds()
	node.rect = Rect{Width: float32(b.Dx()), Height: float32(b.Dy())}
	return node
}

// renderImage rebuilds the image when stale.
func (r *Renderer) renderImage() {
	if !r.imageDirty {
		return
	}
	r.imageDirty = false

	w, h := r.ImplicitSize()
	if w <= 0 || h <= 0 || r.text == "" || r.face == nil {
		r.image = nil
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	text.DrawString(img, r.face, r.text, 0, r.metrics.Ascent, r.color)
	r.image = img
	r.stats.ImageBuilds++

	plotglyph.Logger().Debug("glyph: image rebuilt",
		"text", r.text, "width", w, "height", h)
}

func (r *Renderer) upload(node *Node, surface gpucontext.TextureCreator) {
	if node.releaseTexture() {
		r.stats.TextureReleases++
	}
	if surface == nil {
		plotglyph.Logger().Debug("glyph: no surface, texture upload deferred", "text", r.text)
		return
	}

	b := r.image.Bounds()
	tex, err := surface.NewTextureFromRGBA(b.Dx(), b.Dy(), r.image.Pix)
	if err != nil {
		plotglyph.Logger().Warn("glyph: texture upload failed", "text", r.text, "err", err)
		return
	}
	node.setTexture(tex)
	r.textureDirty = false
	r.stats.TextureUploads++
}

func (r *Renderer) releaseNode(n *Node) {
	if n.releaseTexture() {
		r.stats.TextureReleases++
	}
}

// InvalidateTexture marks the texture stale without touching the image.
// Call it when the host surface changed and old textures are no longer
// valid.
func (r *Renderer) InvalidateTexture() {
	if r.textureDirty || (r.image == nil && !r.imageDirty) {
		return
	}
	r.textureDirty = true
	if r.update != nil {
		r.update()
	}
}

// DrawTo runs the paint pass against dc's texture creator and draws the
// texture with its top-left corner at (x, y). Nothing is drawn for empty
// text or while the upload is pending.
func (r *Renderer) DrawTo(dc gpucontext.TextureDrawer, x, y float32) error {
	if dc == nil {
		return ErrNilDrawer
	}
	node := r.UpdateNode(r.node, dc.TextureCreator())
	if node == nil || node.texture == nil {
		return nil
	}
	return dc.DrawTexture(node.texture, x, y)
}

// Close releases the texture and the image. It is safe to call more than
// once. A closed Renderer paints nothing.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.releaseNode(r.node)
	r.node = nil
	r.image = nil
	r.imageDirty = false
	r.textureDirty = false
	return nil
}
