package text

import (
	"testing"

	"github.com/vectorui/bui"
)

func TestFillText_Layout(t *testing.T) {
	area := bui.SizeAndCenter{SX: 0.8, SY: 0.4, CX: 0.1, CY: -0.2}
	ft := FillText{
		Face:           NewCachedFace(testFace()),
		Text:           "AnB",
		PlacementArea:  area,
		CurveLineCount: 4,
		ResX:           640,
		ResY:           360,
	}

	fitted := ft.Layout()

	if len(fitted.Lines) != 4+1+4+4 {
		t.Errorf("len(Lines) = %d, want 13", len(fitted.Lines))
	}

	box := area.Points()
	inArea := func(x, y float32) bool {
		const eps = 1e-4
		return x >= box.P1X-eps && x <= box.P2X+eps && y <= box.P1Y+eps && y >= box.P2Y-eps
	}
	for i, l := range fitted.Lines {
		if !inArea(l.P1[0], l.P1[1]) || !inArea(l.P2[0], l.P2[1]) {
			t.Errorf("Lines[%d] = %+v lies outside the placement area %+v", i, l, box)
		}
	}

	// The text touches the area on two opposite sides and is centered.
	sc := fitted.Bounds.SizeAndCenter()
	if !near(sc.CX, area.CX) || !near(sc.CY, area.CY) {
		t.Errorf("text center = (%v, %v), want (%v, %v)", sc.CX, sc.CY, area.CX, area.CY)
	}
	if !near(sc.SX, area.SX) && !near(sc.SY, area.SY) {
		t.Errorf("text extents %+v do not fill area %+v", sc, area)
	}

	// On-screen aspect matches the design aspect: 350 wide, 200 high.
	onScreen := (sc.SX * 640) / (sc.SY * 360)
	if !near(onScreen, 350.0/200.0) {
		t.Errorf("on-screen aspect = %v, want 1.75", onScreen)
	}

	if len(fitted.CharBounds) != 3 {
		t.Fatalf("len(CharBounds) = %d, want 3", len(fitted.CharBounds))
	}
	if got := ft.Lines(); len(got) != len(fitted.Lines) {
		t.Errorf("len(Lines()) = %d, want %d", len(got), len(fitted.Lines))
	}
}

func TestFittedText_CharAt(t *testing.T) {
	ft := FillText{
		Face:           NewCachedFace(testFace()),
		Text:           "A B",
		PlacementArea:  bui.SizeAndCenter{SX: 1, SY: 1},
		CurveLineCount: 10,
		ResX:           1000,
		ResY:           1000,
	}
	fitted := ft.Layout()

	for i, b := range fitted.CharBounds {
		sc := b.SizeAndCenter()
		if got := fitted.CharAt(sc.CX, sc.CY); got != i {
			t.Errorf("CharAt(center of %d) = %d, want %d", i, got, i)
		}
	}
	if got := fitted.CharAt(5, 5); got != -1 {
		t.Errorf("CharAt(5, 5) = %d, want -1", got)
	}
}

func TestFillText_Degenerate(t *testing.T) {
	area := bui.SizeAndCenter{SX: 0.5, SY: 0.5, CX: 0.25, CY: 0.75}

	for _, s := range []string{"", "  ", "??"} {
		t.Run(s, func(t *testing.T) {
			ft := FillText{
				Face:           NewCachedFace(testFace()),
				Text:           s,
				PlacementArea:  area,
				CurveLineCount: 10,
				ResX:           640,
				ResY:           360,
			}
			fitted := ft.Layout()

			if len(fitted.Lines) != 0 {
				t.Errorf("len(Lines) = %d, want 0", len(fitted.Lines))
			}
			want := bui.Points{P1X: area.CX, P1Y: area.CY, P2X: area.CX, P2Y: area.CY}
			if fitted.Bounds != want {
				t.Errorf("Bounds = %+v, want %+v", fitted.Bounds, want)
			}
			for i, b := range fitted.CharBounds {
				if b != want {
					t.Errorf("CharBounds[%d] = %+v, want %+v", i, b, want)
				}
			}
		})
	}
}
