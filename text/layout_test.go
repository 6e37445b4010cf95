package text

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/vectorui/bui"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func pointsNear(a, b bui.Points) bool {
	return near(a.P1X, b.P1X) && near(a.P1Y, b.P1Y) && near(a.P2X, b.P2X) && near(a.P2Y, b.P2Y)
}

func TestLayout_Placement(t *testing.T) {
	c := NewCachedFace(testFace())

	tests := []struct {
		name      string
		text      string
		wantLines int
		wantBound bui.Points
		wantChars []bui.Points
	}{
		{
			name:      "empty",
			text:      "",
			wantLines: 0,
		},
		{
			name:      "single glyph",
			text:      "A",
			wantLines: 4,
			wantBound: bui.Points{P1X: 50, P1Y: 200, P2X: 150, P2Y: 0},
			wantChars: []bui.Points{{P1X: 50, P1Y: 200, P2X: 150, P2Y: 0}},
		},
		{
			name:      "left bearing is removed",
			text:      "AB",
			wantLines: 8,
			wantBound: bui.Points{P1X: 50, P1Y: 200, P2X: 250, P2Y: 0},
			wantChars: []bui.Points{
				{P1X: 50, P1Y: 200, P2X: 150, P2Y: 0},
				{P1X: 200, P1Y: 100, P2X: 250, P2Y: 0},
			},
		},
		{
			name:      "space advances",
			text:      "A B",
			wantLines: 8,
			wantBound: bui.Points{P1X: 50, P1Y: 200, P2X: 500, P2Y: 0},
			wantChars: []bui.Points{
				{P1X: 50, P1Y: 200, P2X: 150, P2Y: 0},
				{P1X: 200, P1Y: 0, P2X: 400, P2Y: 0},
				{P1X: 450, P1Y: 100, P2X: 500, P2Y: 0},
			},
		},
		{
			name:      "spaces only",
			text:      "  ",
			wantLines: 0,
			wantBound: bui.Points{P1X: 50, P1Y: 0, P2X: 500, P2Y: 0},
			wantChars: []bui.Points{
				{P1X: 50, P1Y: 0, P2X: 250, P2Y: 0},
				{P1X: 300, P1Y: 0, P2X: 500, P2Y: 0},
			},
		},
		{
			name:      "unresolvable runes are skipped",
			text:      "A?.B",
			wantLines: 8,
			wantBound: bui.Points{P1X: 50, P1Y: 200, P2X: 250, P2Y: 0},
			wantChars: []bui.Points{
				{P1X: 50, P1Y: 200, P2X: 150, P2Y: 0},
				{P1X: 200, P1Y: 100, P2X: 250, P2Y: 0},
			},
		},
		{
			name:      "curves flatten",
			text:      "n~",
			wantLines: 2 + 2*10,
			wantBound: bui.Points{P1X: 50, P1Y: 100, P2X: 290, P2Y: -60},
			wantChars: []bui.Points{
				{P1X: 50, P1Y: 100, P2X: 150, P2Y: 0},
				{P1X: 200, P1Y: 60, P2X: 290, P2Y: -60},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Layout(c, tt.text, DefaultLayoutConfig())

			if len(u.Lines) != tt.wantLines {
				t.Errorf("len(Lines) = %d, want %d", len(u.Lines), tt.wantLines)
			}
			if u.Bounds != tt.wantBound {
				t.Errorf("Bounds = %+v, want %+v", u.Bounds, tt.wantBound)
			}
			if len(u.CharBounds) != len(tt.wantChars) {
				t.Fatalf("len(CharBounds) = %d, want %d", len(u.CharBounds), len(tt.wantChars))
			}
			for i, want := range tt.wantChars {
				if u.CharBounds[i] != want {
					t.Errorf("CharBounds[%d] = %+v, want %+v", i, u.CharBounds[i], want)
				}
			}
		})
	}
}

func TestLayout_WarnsOnSkippedRunes(t *testing.T) {
	var buf bytes.Buffer
	prev := bui.Logger()
	bui.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer bui.SetLogger(prev)

	Layout(NewCachedFace(testFace()), "A?B .", DefaultLayoutConfig())

	out := buf.String()
	if n := strings.Count(out, "text: skipping rune without outline"); n != 2 {
		t.Errorf("skipped runes logged %d times, want 2", n)
	}
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("log output %q has no WARN records", out)
	}
}

func TestLayout_LineOrder(t *testing.T) {
	c := NewCachedFace(testFace())
	u := Layout(c, "A", DefaultLayoutConfig())

	// On-lines of 'A' first, shifted right by the spacing.
	want := []bui.LineRaw{
		{P1: [2]float32{150, 0}, P2: [2]float32{150, 200}},
		{P1: [2]float32{150, 200}, P2: [2]float32{50, 200}},
		{P1: [2]float32{50, 0}, P2: [2]float32{150, 0}},
		{P1: [2]float32{50, 200}, P2: [2]float32{50, 0}},
	}
	for i := range want {
		if u.Lines[i] != want[i] {
			t.Errorf("Lines[%d] = %+v, want %+v", i, u.Lines[i], want[i])
		}
	}
}

func TestLayout_CharBoundsCoverLines(t *testing.T) {
	c := NewCachedFace(testFace())
	u := Layout(c, "AnB~A", DefaultLayoutConfig())

	for i, l := range u.Lines {
		if !u.Bounds.Contains(l.P1[0], l.P1[1]) || !u.Bounds.Contains(l.P2[0], l.P2[1]) {
			t.Errorf("Lines[%d] = %+v lies outside %+v", i, l, u.Bounds)
		}
	}
	for i := 1; i < len(u.CharBounds); i++ {
		gap := u.CharBounds[i].P1X - u.CharBounds[i-1].P2X
		if !near(gap, 50) {
			t.Errorf("gap before char %d = %v, want 50", i, gap)
		}
	}
}

func TestLayout_Config(t *testing.T) {
	c := NewCachedFace(testFace())
	cfg := LayoutConfig{CurveLineCount: 3, Spacing: 0, SpaceAdvance: 10}

	u := Layout(c, "n n", cfg)
	if len(u.Lines) != 2*(1+3) {
		t.Errorf("len(Lines) = %d, want %d", len(u.Lines), 2*(1+3))
	}
	want := bui.Points{P1X: 0, P1Y: 100, P2X: 210, P2Y: 0}
	if u.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", u.Bounds, want)
	}
}

func TestLayout_Normalize(t *testing.T) {
	f := NewPathFace()
	f.Set('\u00e9', box(0, 0, 80, 120))
	c := NewCachedFace(f)

	decomposed := "e\u0301"

	cfg := DefaultLayoutConfig()
	if u := Layout(c, decomposed, cfg); len(u.CharBounds) != 0 {
		t.Errorf("without normalization placed %d glyphs, want 0", len(u.CharBounds))
	}

	cfg.Normalize = true
	if u := Layout(c, decomposed, cfg); len(u.CharBounds) != 1 || len(u.Lines) != 4 {
		t.Errorf("with normalization placed %d glyphs and %d lines, want 1 and 4", len(u.CharBounds), len(u.Lines))
	}
}

func TestComputeUnfitChars(t *testing.T) {
	c := NewCachedFace(testFace())

	lines, bounds, chars := ComputeUnfitChars(c, "An", 5)
	if len(lines) != 4+1+5 {
		t.Errorf("len(lines) = %d, want 10", len(lines))
	}
	if want := (bui.Points{P1X: 50, P1Y: 200, P2X: 300, P2Y: 0}); bounds != want {
		t.Errorf("bounds = %+v, want %+v", bounds, want)
	}
	if len(chars) != 2 {
		t.Errorf("len(chars) = %d, want 2", len(chars))
	}
}

func TestComputeSquareTransform(t *testing.T) {
	fullScreen := bui.SizeAndCenter{SX: 1, SY: 1}

	tests := []struct {
		name       string
		bounds     bui.Points
		area       bui.SizeAndCenter
		resX, resY float32
		want       bui.Points
	}{
		{
			name:   "wide on square surface",
			bounds: bui.Points{P1X: 0, P1Y: 200, P2X: 400, P2Y: 0},
			area:   fullScreen,
			resX:   1000, resY: 1000,
			want: bui.Points{P1X: -1, P1Y: 0.5, P2X: 1, P2Y: -0.5},
		},
		{
			name:   "square on wide surface",
			bounds: bui.Points{P1X: 50, P1Y: 300, P2X: 150, P2Y: 200},
			area:   fullScreen,
			resX:   640, resY: 360,
			want: bui.Points{P1X: -0.5625, P1Y: 1, P2X: 0.5625, P2Y: -1},
		},
		{
			name:   "offset area",
			bounds: bui.Points{P1X: 0, P1Y: 100, P2X: 100, P2Y: 0},
			area:   bui.SizeAndCenter{SX: 0.5, SY: 0.25, CX: 0.5, CY: -0.5},
			resX:   100, resY: 100,
			want: bui.Points{P1X: 0.25, P1Y: -0.25, P2X: 0.75, P2Y: -0.75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := ComputeSquareTransform(tt.bounds, tt.area, tt.resX, tt.resY)

			got := tt.bounds
			bui.TransformPoints(&got, tr)
			if !pointsNear(got, tt.want) {
				t.Errorf("fitted bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}
