package blockfont

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vectorui/bui"
)

const eps = 1e-5

var square = bui.SizeAndCenter{SX: 0.5, SY: 0.5}

func TestStrokeCounts(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{' ', 0},
		{':', 2},
		{'+', 3},
		{'-', 1},
		{'.', 1},
		{'/', 7},
		{'0', 4},
		{'1', 1},
		{'2', 6},
		{'8', 5},
		{'B', 6},
		{'K', 9},
		{'N', 9},
		{'Q', 7},
		{'R', 7},
		{'V', 7},
		{'X', 13},
		{'?', 1},
		{'M', 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			assert.Len(t, Default.Strokes(tt.r), tt.want)
		})
	}
}

func TestHasGlyph(t *testing.T) {
	for _, r := range charset {
		assert.True(t, Default.HasGlyph(r), "HasGlyph(%q)", r)
	}
	for _, r := range "MWZaz?é" {
		assert.False(t, Default.HasGlyph(r), "HasGlyph(%q)", r)
		assert.Equal(t, []bui.Points{{P1X: -0.125, P1Y: 0.125, P2X: 0.125, P2Y: -0.125}}, Default.Strokes(r))
	}
}

func TestCovers(t *testing.T) {
	assert.True(t, Default.Covers(charset))
	assert.True(t, Default.Covers(""))
	assert.False(t, Default.Covers("BUI M"))
	assert.False(t, Default.Covers("0.1a"))
}

func TestStrokesStayInCell(t *testing.T) {
	cell := bui.Points{P1X: -1, P1Y: 1, P2X: 1, P2Y: -1}

	for _, r := range charset {
		for i, s := range Default.Strokes(r) {
			require.True(t, s.P1X <= s.P2X && s.P1Y >= s.P2Y, "%q stroke %d not normalized: %+v", r, i, s)
			require.True(t, cell.Contains(s.P1X, s.P1Y) && cell.Contains(s.P2X, s.P2Y),
				"%q stroke %d outside the cell: %+v", r, i, s)
		}
	}
}

func TestLayout(t *testing.T) {
	b := Default.Layout("01")

	require.Len(t, b.Strokes, 5)
	require.Len(t, b.Cells, 2)
	assert.InDelta(t, 4.25, b.Width, eps)

	assert.Equal(t, bui.Points{P1X: -1, P1Y: 1, P2X: 1, P2Y: -1}, b.Cells[0])
	assert.Equal(t, bui.Points{P1X: 1.25, P1Y: 1, P2X: 3.25, P2Y: -1}, b.Cells[1])

	// The '1' stroke sits in the middle of the second cell.
	assert.InDelta(t, 2.125, b.Strokes[4].P1X, eps)
	assert.InDelta(t, 2.375, b.Strokes[4].P2X, eps)

	b = Default.Layout("")
	assert.Empty(t, b.Strokes)
	assert.Zero(t, b.Width)

	// Cells advance by the cell width plus the configured spacing, counted
	// in characters rather than bytes.
	wide := New(Config{Spacing: 1})
	b = wide.Layout("1\u00e91")
	require.Len(t, b.Cells, 3)
	assert.InDelta(t, 8, b.Width, eps)
	assert.InDelta(t, 5, b.Cells[2].P1X, eps)
	assert.InDelta(t, 7, b.Cells[2].P2X, eps)
}

func TestFillText01(t *testing.T) {
	fitted := Default.Fit("01", square, 640, 360)

	require.Len(t, fitted.Rects, 5)
	require.Len(t, fitted.Cells, 2)

	target := fitted.Target.Points()
	for i, r := range fitted.Rects {
		box := bui.SizeAndCenter{SX: r.Scale[0], SY: r.Scale[1], CX: r.Translation[0], CY: r.Translation[1]}.Points()
		assert.GreaterOrEqual(t, box.P1X, target.P1X-eps, "rect %d", i)
		assert.LessOrEqual(t, box.P2X, target.P2X+eps, "rect %d", i)
		assert.LessOrEqual(t, box.P1Y, target.P1Y+eps, "rect %d", i)
		assert.GreaterOrEqual(t, box.P2Y, target.P2Y-eps, "rect %d", i)
		assert.Equal(t, bui.White.Array(), r.Color)
	}

	// Cells are ordered left to right and do not overlap.
	assert.Less(t, fitted.Cells[0].P2X, fitted.Cells[1].P1X)

	// The block fills the target box.
	assert.InDelta(t, target.P1X, fitted.Cells[0].P1X, eps)
	assert.InDelta(t, target.P2X, fitted.Cells[1].P2X, eps)
	assert.InDelta(t, target.P1Y, fitted.Cells[0].P1Y, eps)
	assert.InDelta(t, target.P2Y, fitted.Cells[0].P2Y, eps)

	// On screen the block keeps its 4.25:2 aspect.
	onScreen := (fitted.Target.SX * 640) / (fitted.Target.SY * 360)
	assert.InDelta(t, 4.25/2, onScreen, 1e-4)

	rects := FillText{Text: "01", PlacementArea: square, ResX: 640, ResY: 360}.Rects()
	assert.Equal(t, fitted.Rects, rects)
}

func TestFillTextEmpty(t *testing.T) {
	assert.Empty(t, Default.FillText("", square, 640, 360))
	assert.Empty(t, Default.FillText("   ", square, 640, 360))
}

func TestNew(t *testing.T) {
	f := New(Config{Thick: 0.5, Spacing: 1, Color: bui.Red})

	assert.Len(t, f.Strokes('1'), 1)
	assert.Equal(t, bui.Points{P1X: -0.25, P1Y: 1, P2X: 0.25, P2Y: -1}, f.Strokes('1')[0])

	// maxes = 0.25 + 0.5i stays within the cell for i = 1.
	assert.Len(t, f.Strokes('X'), 5)

	rects := f.FillText("11", square, 100, 100)
	require.Len(t, rects, 2)
	assert.Equal(t, bui.Red.Array(), rects[0].Color)
	assert.Less(t, rects[0].Translation[0], rects[1].Translation[0])

	assert.Equal(t, float32(Thick), New(Config{}).Config().Thick)
}
