package glyph

// State reports which cached artifacts of a Renderer are stale.
type State uint8

const (
	// StateClean means the image and texture match the current inputs.
	StateClean State = iota
	// StateImageStale means an input changed; the image and texture both
	// need a rebuild.
	StateImageStale
	// StateTextureStale means the image is current but the texture still
	// has to be uploaded.
	StateTextureStale
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateClean:
		return "Clean"
	case StateImageStale:
		return "ImageStale"
	case StateTextureStale:
		return "TextureStale"
	default:
		return "Unknown"
	}
}

// Property identifies the property group a change notification is about.
type Property uint8

const (
	// PropertyText is sent when the text changes.
	PropertyText Property = iota + 1
	// PropertyColor is sent when the color changes.
	PropertyColor
	// PropertyFont is sent when the family, pixel size or weight changes.
	PropertyFont
)

// String returns the property name.
func (p Property) String() string {
	switch p {
	case PropertyText:
		return "text"
	case PropertyColor:
		return "color"
	case PropertyFont:
		return "font"
	default:
		return "unknown"
	}
}

// Stats counts the work a Renderer has done.
type Stats struct {
	// ImageBuilds is the number of times the image was rasterized.
	ImageBuilds uint64
	// TextureUploads is the number of textures created from the image.
	TextureUploads uint64
	// TextureReleases is the number of textures released.
	TextureReleases uint64
}
