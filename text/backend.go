package text

import (
	"fmt"
	"os"
)

// Backend selects the font decoder used by LoadFace.
type Backend int

const (
	// BackendSFNT decodes fonts with golang.org/x/image/font/sfnt.
	BackendSFNT Backend = iota

	// BackendGoText decodes fonts with github.com/go-text/typesetting.
	BackendGoText
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendSFNT:
		return "sfnt"
	case BackendGoText:
		return "gotext"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend returns the backend with the given name.
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "sfnt", "":
		return BackendSFNT, nil
	case "gotext":
		return BackendGoText, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// LoadFace decodes font data with the chosen backend.
func LoadFace(data []byte, backend Backend) (Face, error) {
	var (
		face Face
		err  error
	)
	switch backend {
	case BackendSFNT:
		face, err = NewSFNTFace(data)
	case BackendGoText:
		face, err = NewGoTextFace(data)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, backend)
	}
	if err != nil {
		return nil, err
	}
	return face, nil
}

// LoadFaceFile reads a font file and decodes it with the chosen backend.
func LoadFaceFile(path string, backend Backend) (Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return LoadFace(data, backend)
}
