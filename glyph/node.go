package glyph

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// textureDestroyer is implemented by host textures that own GPU memory.
type textureDestroyer interface {
	Destroy()
}

// FilterSetter is implemented by host textures that accept a sampling
// filter. Node applies its filter to every texture it receives.
type FilterSetter interface {
	SetFilter(gputypes.FilterMode)
}

// Rect is a rectangle in item coordinates.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Node is the drawable handle returned by Renderer.UpdateNode. It owns at
// most one texture. The host keeps the node between frames and passes it
// back so it can be reused.
type Node struct {
	texture gpucontext.Texture
	rect    Rect
	filter  gputypes.FilterMode
	sampler gputypes.SamplerDescriptor
	format  gputypes.TextureFormat
}

func newNode() *Node {
	return &Node{
		filter:  gputypes.FilterModeLinear,
		sampler: gputypes.LinearSamplerDescriptor(),
		format:  gputypes.TextureFormatRGBA8Unorm,
	}
}

// Texture returns the current texture, or nil while an upload is pending.
func (n *Node) Texture() gpucontext.Texture {
	return n.texture
}

// Rect returns the node geometry: the renderer's implicit size at (0, 0).
func (n *Node) Rect() Rect {
	return n.rect
}

// Filter returns the sampling filter, always linear.
func (n *Node) Filter() gputypes.FilterMode {
	return n.filter
}

// Sampler returns the sampler descriptor hosts should draw the texture with.
func (n *Node) Sampler() gputypes.SamplerDescriptor {
	return n.sampler
}

// Format returns the pixel format of the uploaded data.
func (n *Node) Format() gputypes.TextureFormat {
	return n.format
}

// setTexture takes ownership of tex and applies the node's sampling hints.
func (n *Node) setTexture(tex gpucontext.Texture) {
	// image.RGBA data is premultiplied
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}
	if fs, ok := tex.(FilterSetter); ok {
		fs.SetFilter(n.filter)
	}
	n.texture = tex
}

// releaseTexture destroys the owned texture. It reports whether there was
// one.
func (n *Node) releaseTexture() bool {
	if n == nil || n.texture == nil {
		return false
	}
	if d, ok := n.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	n.texture = nil
	return true
}
