package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownBackend is returned by LoadFace for an unsupported backend.
	ErrUnknownBackend = errors.New("text: unknown font backend")
)

// FontError is returned when a font backend rejects font data.
type FontError struct {
	// Backend names the decoder that failed.
	Backend Backend

	// Err is the decoder's error.
	Err error
}

func (e *FontError) Error() string {
	return "text: failed to parse font with " + e.Backend.String() + ": " + e.Err.Error()
}

// Unwrap returns the decoder's error.
func (e *FontError) Unwrap() error {
	return e.Err
}
