package bui

import (
	"image/color"
	"testing"
)

func TestRGBA_Color(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"opaque black", Black, color.NRGBA{0, 0, 0, 255}},
		{"opaque white", White, color.NRGBA{255, 255, 255, 255}},
		{"opaque red", Red, color.NRGBA{255, 0, 0, 255}},
		{"transparent", Transparent, color.NRGBA{}},
		{"out of range clamps", RGBA{R: 2, G: -1, B: 0, A: 1}, color.NRGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBA_Roundtrip(t *testing.T) {
	for _, c := range []RGBA{Black, White, Red, Transparent} {
		if got := FromColor(c.Color()); got != c {
			t.Errorf("FromColor(%v.Color()) = %v", c, got)
		}
	}
}

func TestRGBA_Array(t *testing.T) {
	want := [4]float32{0.25, 0.5, 0.75, 1}
	if got := (RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}).Array(); got != want {
		t.Errorf("Array() = %v, want %v", got, want)
	}
}
