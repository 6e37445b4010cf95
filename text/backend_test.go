package text

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		name    string
		want    Backend
		wantErr bool
	}{
		{"", BackendSFNT, false},
		{"sfnt", BackendSFNT, false},
		{"gotext", BackendGoText, false},
		{"freetype", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBackend(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownBackend) {
					t.Errorf("ParseBackend(%q) error = %v, want ErrUnknownBackend", tt.name, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseBackend(%q) = %v, %v, want %v", tt.name, got, err, tt.want)
			}
			if got.String() != tt.want.String() {
				t.Errorf("String() = %q", got.String())
			}
		})
	}

	if s := Backend(9).String(); s != "Backend(9)" {
		t.Errorf("Backend(9).String() = %q", s)
	}
}

func TestLoadFace_Errors(t *testing.T) {
	for _, backend := range []Backend{BackendSFNT, BackendGoText} {
		t.Run(backend.String(), func(t *testing.T) {
			if _, err := LoadFace(nil, backend); !errors.Is(err, ErrEmptyFontData) {
				t.Errorf("LoadFace(nil) error = %v, want ErrEmptyFontData", err)
			}

			face, err := LoadFace([]byte("definitely not a font"), backend)
			if face != nil {
				t.Errorf("LoadFace(garbage) returned face %v", face)
			}
			var fe *FontError
			if !errors.As(err, &fe) {
				t.Fatalf("LoadFace(garbage) error = %v, want *FontError", err)
			}
			if fe.Backend != backend || fe.Unwrap() == nil {
				t.Errorf("FontError = %+v", fe)
			}
		})
	}

	if _, err := LoadFace(goregular.TTF, Backend(7)); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("LoadFace(Backend(7)) error = %v, want ErrUnknownBackend", err)
	}

	_, err := LoadFaceFile(filepath.Join(t.TempDir(), "missing.ttf"), BackendSFNT)
	if err == nil {
		t.Error("LoadFaceFile(missing) should fail")
	}
}

func TestLoadFace_GoRegular(t *testing.T) {
	bounds := make(map[Backend][4]float32)

	for _, backend := range []Backend{BackendSFNT, BackendGoText} {
		t.Run(backend.String(), func(t *testing.T) {
			face, err := LoadFace(goregular.TTF, backend)
			if err != nil {
				t.Fatalf("LoadFace() error = %v", err)
			}

			c := NewCachedFace(face)
			g, ok := c.Glyph('A')
			if !ok {
				t.Fatal("Glyph('A') failed")
			}
			if g.IsEmpty() {
				t.Error("glyph 'A' has no segments")
			}
			if g.Bounds.Width() <= 0 || g.Bounds.Height() <= 0 {
				t.Errorf("glyph 'A' bounds = %+v", g.Bounds)
			}
			// Baseline sits at zero with Y up.
			if g.Bounds.P2Y < -1 || g.Bounds.P1Y < 1000 {
				t.Errorf("glyph 'A' not upright: %+v", g.Bounds)
			}
			bounds[backend] = [4]float32{g.Bounds.P1X, g.Bounds.P1Y, g.Bounds.P2X, g.Bounds.P2Y}

			if _, ok := c.Glyph(' '); ok {
				t.Error("Glyph(' ') should have no outline")
			}
			if _, ok := c.Glyph('\U0010FFFD'); ok {
				t.Error("Glyph(U+10FFFD) should be missing")
			}

			u := Layout(c, "Go gg", DefaultLayoutConfig())
			if len(u.CharBounds) != 5 || len(u.Lines) == 0 {
				t.Errorf("Layout() placed %d glyphs and %d lines", len(u.CharBounds), len(u.Lines))
			}
		})
	}

	a, b := bounds[BackendSFNT], bounds[BackendGoText]
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 0.5 {
			t.Errorf("backends disagree on bounds: sfnt %v, gotext %v", a, b)
			break
		}
	}
}

func TestSFNTFace_Metadata(t *testing.T) {
	f, err := NewSFNTFace(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSFNTFace() error = %v", err)
	}
	if f.UnitsPerEm() != 2048 {
		t.Errorf("UnitsPerEm() = %d, want 2048", f.UnitsPerEm())
	}
	if f.Name() != "Go" {
		t.Errorf("Name() = %q, want %q", f.Name(), "Go")
	}

	g, err := NewGoTextFace(goregular.TTF)
	if err != nil {
		t.Fatalf("NewGoTextFace() error = %v", err)
	}
	if g.UnitsPerEm() != f.UnitsPerEm() {
		t.Errorf("GoTextFace.UnitsPerEm() = %d, want %d", g.UnitsPerEm(), f.UnitsPerEm())
	}
}
