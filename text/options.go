package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 512,
		parserName: defaultParserName,
	}
}

// WithCacheLimit sets the maximum number of cached glyph outlines.
// A non-positive value selects the default limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	shaper Shaper
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		shaper: nil, // resolved to the global shaper at shaping time
	}
}

// WithShaper sets the shaper used by the face for measurement and drawing.
// A nil shaper selects the global shaper (see SetShaper).
func WithShaper(s Shaper) FaceOption {
	return func(c *faceConfig) {
		c.shaper = s
	}
}
