package glyph

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/plotglyph/metrics"
	"github.com/gogpu/plotglyph/text"
)

func TestNewDefaults(t *testing.T) {
	r := New()
	defer r.Close()

	if r.Text() != "" {
		t.Errorf("Text() = %q, want empty", r.Text())
	}
	if r.FontFamily() != "sans-serif" {
		t.Errorf("FontFamily() = %q, want sans-serif", r.FontFamily())
	}
	if r.PixelSize() != 12 {
		t.Errorf("PixelSize() = %d, want 12", r.PixelSize())
	}
	if r.Weight() != text.WeightNormal {
		t.Errorf("Weight() = %v, want Normal", r.Weight())
	}
	if r.Color() != (color.NRGBA{A: 0xff}) {
		t.Errorf("Color() = %v, want opaque black", r.Color())
	}
	if r.State() != StateImageStale {
		t.Errorf("State() = %v, want ImageStale", r.State())
	}
	if r.Image() != nil {
		t.Error("Image() should be nil before the first paint")
	}
}

func TestImplicitSizeMatchesMeasure(t *testing.T) {
	for _, s := range []string{"42.00", "-3.14", "Wg", "1"} {
		t.Run(s, func(t *testing.T) {
			r := New(WithText(s))
			defer r.Close()

			face := text.DefaultRegistry().Face("sans-serif", 12, text.WeightNormal)
			m := metrics.Measure(face, s)

			if got, want := r.ImplicitWidth(), int(math.Ceil(m.AdvanceWidth)); got != want {
				t.Errorf("ImplicitWidth() = %d, want %d", got, want)
			}
			if got, want := r.ImplicitHeight(), int(math.Ceil(m.Ascent+m.Descent)); got != want {
				t.Errorf("ImplicitHeight() = %d, want %d", got, want)
			}
			if r.ImplicitWidth() <= 0 {
				t.Error("non-empty text should have positive width")
			}
		})
	}
}

func TestEmptyTextKeepsHeight(t *testing.T) {
	r := New()
	defer r.Close()

	w, h := r.ImplicitSize()
	if w != 0 {
		t.Errorf("ImplicitWidth() = %d, want 0", w)
	}
	if h <= 0 {
		t.Errorf("ImplicitHeight() = %d, want > 0", h)
	}
	if r.InkWidth() != 0 || r.InkHeight() != 0 || r.InkTop() != 0 {
		t.Error("empty text should have no ink")
	}
}

func TestSetterNoOp(t *testing.T) {
	updates := 0
	r := New(WithText("1.5"), WithUpdateFunc(func() { updates++ }))
	defer r.Close()

	creator := &mockCreator{}
	r.UpdateNode(nil, creator)
	if r.State() != StateClean {
		t.Fatalf("State() = %v, want Clean", r.State())
	}

	var notified []Property
	r.Subscribe(func(p Property) { notified = append(notified, p) })

	r.SetText("1.5")
	r.SetColor(color.Black)
	r.SetFontFamily("sans-serif")
	r.SetPixelSize(12)
	r.SetWeight(text.WeightNormal)

	if len(notified) != 0 {
		t.Errorf("notifications = %v, want none", notified)
	}
	if updates != 0 {
		t.Errorf("update calls = %d, want 0", updates)
	}
	if r.State() != StateClean {
		t.Errorf("State() = %v, want Clean", r.State())
	}
}

func TestSetColorRebuildsImage(t *testing.T) {
	r := New(WithText("42"))
	defer r.Close()

	creator := &mockCreator{}
	node := r.UpdateNode(nil, creator)
	w, h := r.ImplicitSize()

	var notified []Property
	r.Subscribe(func(p Property) { notified = append(notified, p) })

	r.SetColor(color.NRGBA{R: 0xff, A: 0xff})
	if r.State() != StateImageStale {
		t.Errorf("State() = %v, want ImageStale", r.State())
	}
	if len(notified) != 1 || notified[0] != PropertyColor {
		t.Errorf("notifications = %v, want [color]", notified)
	}
	if gw, gh := r.ImplicitSize(); gw != w || gh != h {
		t.Errorf("size changed to %dx%d, want %dx%d", gw, gh, w, h)
	}

	node = r.UpdateNode(node, creator)
	st := r.Stats()
	if st.ImageBuilds != 2 {
		t.Errorf("ImageBuilds = %d, want 2", st.ImageBuilds)
	}
	if st.TextureUploads != 2 || st.TextureReleases != 1 {
		t.Errorf("uploads/releases = %d/%d, want 2/1", st.TextureUploads, st.TextureReleases)
	}
	if !creator.textures[0].destroyed {
		t.Error("previous texture was not destroyed")
	}
	if creator.live() != 1 {
		t.Errorf("live textures = %d, want 1", creator.live())
	}
	if node.Texture() != creator.textures[1] {
		t.Error("node should hold the new texture")
	}

	// The new texture should contain red ink.
	var red bool
	pix := creator.textures[1].data
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] > 0 && pix[i] > 0 && pix[i+1] == 0 {
			red = true
			break
		}
	}
	if !red {
		t.Error("texture has no red pixels")
	}
}

func TestPaintOnlyWhenStale(t *testing.T) {
	r := New(WithText("7"))
	defer r.Close()

	creator := &mockCreator{}
	node := r.UpdateNode(nil, creator)
	for range 3 {
		node = r.UpdateNode(node, creator)
	}

	st := r.Stats()
	if st.ImageBuilds != 1 || st.TextureUploads != 1 {
		t.Errorf("builds/uploads = %d/%d, want 1/1", st.ImageBuilds, st.TextureUploads)
	}
}

func TestFontChangeUpdatesMetrics(t *testing.T) {
	r := New(WithText("Mmmm"))
	defer r.Close()

	var notified []Property
	r.Subscribe(func(p Property) { notified = append(notified, p) })

	regular := r.AdvanceWidth()
	r.SetWeight(text.WeightBold)
	if r.AdvanceWidth() <= regular {
		t.Errorf("bold advance %v should exceed regular %v", r.AdvanceWidth(), regular)
	}

	r.SetPixelSize(24)
	if r.AdvanceWidth() <= regular*1.5 {
		t.Errorf("24px advance %v should be about twice %v", r.AdvanceWidth(), regular)
	}

	want := []Property{PropertyFont, PropertyFont}
	if len(notified) != len(want) {
		t.Fatalf("notifications = %v, want %v", notified, want)
	}
	for i := range want {
		if notified[i] != want[i] {
			t.Errorf("notification %d = %v, want %v", i, notified[i], want[i])
		}
	}
}

func TestSetTextUpdatesImplicitSizeEagerly(t *testing.T) {
	r := New(WithText("1"))
	defer r.Close()

	w1 := r.ImplicitWidth()
	r.SetText("1000")
	if r.ImplicitWidth() <= w1 {
		t.Errorf("ImplicitWidth() = %d, want > %d", r.ImplicitWidth(), w1)
	}
	if r.Image() != nil {
		t.Error("image should not be built before painting")
	}
}

func TestEmptyTextReleasesNode(t *testing.T) {
	r := New(WithText("9"))
	defer r.Close()

	creator := &mockCreator{}
	node := r.UpdateNode(nil, creator)
	if node == nil {
		t.Fatal("UpdateNode returned nil for non-empty text")
	}

	r.SetText("")
	if got := r.UpdateNode(node, creator); got != nil {
		t.Error("UpdateNode should return nil for empty text")
	}
	if r.Image() != nil {
		t.Error("Image() should be nil for empty text")
	}
	if creator.live() != 0 {
		t.Errorf("live textures = %d, want 0", creator.live())
	}
	if r.State() != StateClean {
		t.Errorf("State() = %v, want Clean", r.State())
	}
}

func TestZeroPixelSize(t *testing.T) {
	r := New(WithText("12"), WithPixelSize(0))
	defer r.Close()

	if w, h := r.ImplicitSize(); w != 0 || h != 0 {
		t.Errorf("ImplicitSize() = %dx%d, want 0x0", w, h)
	}
	if node := r.UpdateNode(nil, &mockCreator{}); node != nil {
		t.Error("UpdateNode should return nil at zero size")
	}
}

func TestNilSurfaceDefersUpload(t *testing.T) {
	r := New(WithText("3"))
	defer r.Close()

	node := r.UpdateNode(nil, nil)
	if node == nil {
		t.Fatal("UpdateNode returned nil")
	}
	if node.Texture() != nil {
		t.Error("node should have no texture without a surface")
	}
	if r.Image() == nil {
		t.Error("image should be built even without a surface")
	}
	if r.State() != StateTextureStale {
		t.Errorf("State() = %v, want TextureStale", r.State())
	}

	creator := &mockCreator{}
	node = r.UpdateNode(node, creator)
	if node.Texture() == nil || r.State() != StateClean {
		t.Errorf("texture = %v, state = %v; want uploaded and Clean", node.Texture(), r.State())
	}
	if r.Stats().ImageBuilds != 1 {
		t.Errorf("ImageBuilds = %d, want 1", r.Stats().ImageBuilds)
	}
}

func TestUploadFailureRetries(t *testing.T) {
	r := New(WithText("5"))
	defer r.Close()

	creator := &mockCreator{failNext: true}
	node := r.UpdateNode(nil, creator)
	if r.State() != StateTextureStale {
		t.Errorf("State() = %v, want TextureStale", r.State())
	}
	node = r.UpdateNode(node, creator)
	if r.State() != StateClean || node.Texture() == nil {
		t.Errorf("State() = %v after retry, want Clean with texture", r.State())
	}
}

func TestInvalidateTexture(t *testing.T) {
	updates := 0
	r := New(WithText("8"), WithUpdateFunc(func() { updates++ }))
	defer r.Close()

	creator := &mockCreator{}
	node := r.UpdateNode(nil, creator)

	r.InvalidateTexture()
	if r.State() != StateTextureStale {
		t.Errorf("State() = %v, want TextureStale", r.State())
	}
	if updates != 1 {
		t.Errorf("update calls = %d, want 1", updates)
	}

	r.UpdateNode(node, creator)
	st := r.Stats()
	if st.ImageBuilds != 1 || st.TextureUploads != 2 || st.TextureReleases != 1 {
		t.Errorf("stats = %+v, want 1 build, 2 uploads, 1 release", st)
	}
}

func TestInvalidateTextureEmpty(t *testing.T) {
	r := New()
	defer r.Close()

	r.UpdateNode(nil, &mockCreator{})
	r.InvalidateTexture()
	if r.State() != StateClean {
		t.Errorf("State() = %v, want Clean", r.State())
	}
}

func TestNewNodeReuploads(t *testing.T) {
	r := New(WithText("6"))
	defer r.Close()

	creator := &mockCreator{}
	r.UpdateNode(nil, creator)

	// Host dropped its node.
	node := r.UpdateNode(nil, creator)
	if node == nil || node.Texture() == nil {
		t.Fatal("expected a fresh node with a texture")
	}
	if creator.live() != 1 {
		t.Errorf("live textures = %d, want 1", creator.live())
	}
}

func TestNodeProperties(t *testing.T) {
	r := New(WithText("0.5"))
	defer r.Close()

	creator := &mockCreator{}
	node := r.UpdateNode(nil, creator)

	if node.Filter() != gputypes.FilterModeLinear {
		t.Errorf("Filter() = %v, want linear", node.Filter())
	}
	if node.Sampler().MagFilter != gputypes.FilterModeLinear {
		t.Errorf("Sampler().MagFilter = %v, want linear", node.Sampler().MagFilter)
	}
	if node.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", node.Format())
	}

	w, h := r.ImplicitSize()
	want := Rect{Width: float32(w), Height: float32(h)}
	if node.Rect() != want {
		t.Errorf("Rect() = %+v, want %+v", node.Rect(), want)
	}

	tex := creator.textures[0]
	if tex.width != w || tex.height != h {
		t.Errorf("texture size = %dx%d, want %dx%d", tex.width, tex.height, w, h)
	}
	if !tex.premultiplied {
		t.Error("texture should be marked premultiplied")
	}
	if tex.filter != gputypes.FilterModeLinear {
		t.Errorf("texture filter = %v, want linear", tex.filter)
	}
}

func TestNegativeNumberImage(t *testing.T) {
	r := New(WithText("-3.14"), WithPixelSize(12))
	defer r.Close()

	r.UpdateNode(nil, nil)
	img := r.Image()
	if img == nil {
		t.Fatal("Image() is nil")
	}

	w, h := r.ImplicitSize()
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Errorf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}

	// Background stays transparent; digits stay below the ascent line.
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("top-left alpha = %d, want 0", a)
	}
	if a := img.RGBAAt(w-1, 0).A; a != 0 {
		t.Errorf("top-right alpha = %d, want 0", a)
	}

	var inked int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			inked++
		}
	}
	if inked == 0 {
		t.Error("image has no ink")
	}
	if inked == w*h {
		t.Error("image is fully covered")
	}

	if r.InkLeft() < 0 || r.InkRight() > float64(w)+1 {
		t.Errorf("ink x range [%v, %v] outside image width %d", r.InkLeft(), r.InkRight(), w)
	}
	if r.InkTop() <= 0 || r.InkTop()+r.InkHeight() > float64(h) {
		t.Errorf("ink y range [%v, +%v] outside image height %d", r.InkTop(), r.InkHeight(), h)
	}
}

func TestSubscribeCancel(t *testing.T) {
	r := New()
	defer r.Close()

	var a, b int
	cancelA := r.Subscribe(func(Property) { a++ })
	r.Subscribe(func(Property) { b++ })

	r.SetText("x")
	cancelA()
	r.SetText("y")

	if a != 1 || b != 2 {
		t.Errorf("a, b = %d, %d; want 1, 2", a, b)
	}
}

func TestDrawTo(t *testing.T) {
	r := New(WithText("10"))
	defer r.Close()

	if err := r.DrawTo(nil, 0, 0); err != ErrNilDrawer {
		t.Errorf("DrawTo(nil) = %v, want ErrNilDrawer", err)
	}

	dc := newMockDrawer()
	if err := r.DrawTo(dc, 4, 5); err != nil {
		t.Fatalf("DrawTo: %v", err)
	}
	if err := r.DrawTo(dc, 6, 7); err != nil {
		t.Fatalf("DrawTo: %v", err)
	}

	if len(dc.draws) != 2 {
		t.Fatalf("draws = %d, want 2", len(dc.draws))
	}
	if dc.draws[1].x != 6 || dc.draws[1].y != 7 {
		t.Errorf("second draw at (%v, %v), want (6, 7)", dc.draws[1].x, dc.draws[1].y)
	}
	if len(dc.creator.textures) != 1 {
		t.Errorf("textures created = %d, want 1", len(dc.creator.textures))
	}
}

func TestDrawToEmpty(t *testing.T) {
	r := New()
	defer r.Close()

	dc := newMockDrawer()
	if err := r.DrawTo(dc, 0, 0); err != nil {
		t.Fatalf("DrawTo: %v", err)
	}
	if len(dc.draws) != 0 {
		t.Errorf("draws = %d, want 0", len(dc.draws))
	}
}

func TestClose(t *testing.T) {
	r := New(WithText("2"))
	creator := &mockCreator{}
	node := r.UpdateNode(nil, creator)

	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if creator.live() != 0 {
		t.Errorf("live textures = %d, want 0", creator.live())
	}
	if r.UpdateNode(node, creator) != nil {
		t.Error("closed renderer should not return a node")
	}
	if r.Stats().TextureReleases != 1 {
		t.Errorf("TextureReleases = %d, want 1", r.Stats().TextureReleases)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateClean, "Clean"},
		{StateImageStale, "ImageStale"},
		{StateTextureStale, "TextureStale"},
		{State(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
	if PropertyFont.String() != "font" {
		t.Errorf("PropertyFont.String() = %q", PropertyFont.String())
	}
}

func BenchmarkRendererPaint(b *testing.B) {
	r := New(WithText("-1234.56"))
	defer r.Close()
	creator := &mockCreator{}
	var node *Node
	colors := []color.Color{color.Black, color.White}

	i := 0
	for b.Loop() {
		r.SetColor(colors[i%2])
		node = r.UpdateNode(node, creator)
		i++
	}
}

func TestSetterAfterClose(t *testing.T) {
	r := New(WithText("2"))
	r.UpdateNode(nil, &mockCreator{})
	r.Close()

	r.SetText("3")
	r.SetColor(color.White)
	r.SetPixelSize(20)

	if r.State() != StateClean {
		t.Errorf("State() = %v after Close, want Clean", r.State())
	}
	if r.Text() != "3" {
		t.Errorf("Text() = %q, want %q", r.Text(), "3")
	}
	if r.UpdateNode(nil, &mockCreator{}) != nil {
		t.Error("closed renderer returned a node")
	}
	if st := r.Stats(); st.ImageBuilds != 1 {
		t.Errorf("ImageBuilds = %d, want 1", st.ImageBuilds)
	}
}
