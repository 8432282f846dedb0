package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownParser is returned when a FontSource names a parser that
	// was never registered.
	ErrUnknownParser = errors.New("text: unknown font parser")

	// ErrNilSource is returned when registering a nil FontSource.
	ErrNilSource = errors.New("text: nil font source")

	// ErrEmptyFamily is returned when registering a font without a family name.
	ErrEmptyFamily = errors.New("text: empty family name")
)
