package glyph

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// mockTexture implements gpucontext.Texture and the optional hooks.
type mockTexture struct {
	width         int
	height        int
	data          []byte
	destroyed     bool
	premultiplied bool
	filter        gputypes.FilterMode
}

func (m *mockTexture) Width() int  { return m.width }
func (m *mockTexture) Height() int { return m.height }
func (m *mockTexture) Destroy()    { m.destroyed = true }

func (m *mockTexture) SetPremultiplied(v bool)         { m.premultiplied = v }
func (m *mockTexture) SetFilter(f gputypes.FilterMode) { m.filter = f }

// mockCreator implements gpucontext.TextureCreator.
type mockCreator struct {
	textures []*mockTexture
	failNext bool
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock texture creation failed")
	}
	tex := &mockTexture{
		width:  width,
		height: height,
		data:   append([]byte(nil), data...),
	}
	m.textures = append(m.textures, tex)
	return tex, nil
}

func (m *mockCreator) live() int {
	n := 0
	for _, t := range m.textures {
		if !t.destroyed {
			n++
		}
	}
	return n
}

type drawCall struct {
	tex  gpucontext.Texture
	x, y float32
}

// mockDrawer implements gpucontext.TextureDrawer.
type mockDrawer struct {
	creator *mockCreator
	draws   []drawCall
	err     error
}

func newMockDrawer() *mockDrawer {
	return &mockDrawer{creator: &mockCreator{}}
}

func (m *mockDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	if m.err != nil {
		return m.err
	}
	m.draws = append(m.draws, drawCall{tex: tex, x: x, y: y})
	return nil
}

func (m *mockDrawer) TextureCreator() gpucontext.TextureCreator {
	return m.creator
}
