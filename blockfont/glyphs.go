package blockfont

import (
	"math"

	"github.com/vectorui/bui"
)

// charset lists every rune with its own strokes.
const charset = " :+-./0123456789ABCDEFGHIJKLNOPQRSTUVXY"

// box is shorthand for a corner pair.
func box(p1x, p1y, p2x, p2y float32) bui.Points {
	return bui.Points{P1X: p1x, P1Y: p1y, P2X: p2x, P2Y: p2y}
}

// placeholder is the small centered square drawn for unknown runes.
func placeholder(t float32) []bui.Points {
	return []bui.Points{box(-t/2, t/2, t/2, -t/2)}
}

// strokes returns the stroke rectangles of r for stroke thickness t, or nil
// for runes outside charset.
func strokes(r rune, t float32) []bui.Points {
	h := t / 2

	switch r {
	case ' ':
		return []bui.Points{}
	case ':':
		return []bui.Points{
			box(-h, 0.5+h, h, 0.5-h),
			box(-h, -0.5+h, h, -0.5-h),
		}
	case '+':
		return []bui.Points{
			box(-1, h, 1, -h),
			box(-h, 1, h, h),
			box(-h, -h, h, -1),
		}
	case '-':
		return []bui.Points{box(-1, h, 1, -h)}
	case '.':
		return []bui.Points{box(-h, -1+t, h, -1)}
	case '/':
		s := []bui.Points{box(-h, h, h, -h)}
		for i := float32(1); ; i++ {
			// going up and right
			maxes := h + t*i
			if maxes > 1 {
				break
			}
			s = append(s,
				box(maxes-t, maxes, maxes, maxes-t),
				box(-maxes, -maxes+t, -maxes+t, -maxes),
			)
		}
		return s

	case '0', 'O':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, 1, 1-t, 1-t),
			box(-1+t, -1+t, 1-t, -1),
			box(1-t, 1, 1, -1),
		}
	case '1':
		return []bui.Points{box(-h, 1, h, -1)}
	case '2':
		return []bui.Points{
			box(-1, 1-t, -1+t, 1-t*2),
			box(-1+t, 1, 1-t, 1-t),
			box(1-t, 1-t, 1, -1+t*3),
			box(0, -1+t*3, 1-t, -1+t*2),
			box(-1+t, -1+t*2, 0, -1+t),
			box(-1, -1+t, 1, -1),
		}
	case '3':
		return []bui.Points{
			box(-1, 1, 1-t, 1-t),
			box(-1, h, 1-t, -h),
			box(-1, -1+t, 1-t, -1),
			box(1-t, 1, 1, -1),
		}
	case '4':
		return []bui.Points{
			box(-1, 1, -1+t, -h),
			box(-1+t, h, 1, -h),
			box(1-t*2, 1, 1-t, h),
			box(1-t*2, -h, 1-t, -1),
		}
	case '5', 'S':
		return []bui.Points{
			box(-1, 1, -1+t, -h),
			box(-1+t, 1, 1, 1-t),
			box(-1+t, h, 1-t, -h),
			box(-1, -1+t, 1-t, -1),
			box(1-t, h, 1, -1),
		}
	case '6':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, 1, 1, 1-t),
			box(-1+t, h, 1-t, -h),
			box(-1+t, -1+t, 1-t, -1),
			box(1-t, h, 1, -1),
		}
	case '7':
		return []bui.Points{
			box(-1, 1, 1-t, 1-t),
			box(1-t, 1, 1, -1),
		}
	case '8':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, 1, 1-t, 1-t),
			box(-1+t, h, 1-t, -h),
			box(-1+t, -1+t, 1-t, -1),
			box(1-t, 1, 1, -1),
		}
	case '9':
		return []bui.Points{
			box(-1, 1, -1+t, -h),
			box(-1+t, 1, 1-t, 1-t),
			box(-1+t, h, 1-t, -h),
			box(1-t, 1, 1, -1),
		}

	case 'A':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, 1, 1-t, 1-t),
			box(-1+t, 1-t*3, 1-t, 1-t*4),
			box(1-t, 1, 1, -1),
		}
	case 'B':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, 1, 1-t, 1-t),
			box(-1+t, h, 1-t, -h),
			box(-1+t, -1+t, 1-t, -1),
			box(1-t, 1-t, 1, h),
			box(1-t, -h, 1, -1+t),
		}
	case 'C':
		return []bui.Points{
			box(-1, 1, 1, 1-t),
			box(-1, 1-t, -1+t, -1+t),
			box(-1, -1+t, 1, -1),
		}
	case 'D':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, 1, 1-t, 1-t),
			box(-1+t, -1+t, 1-t, -1),
			box(1-t, 1-t, 1, -1+t),
		}
	case 'E':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, 1, 1, 1-t),
			box(-1+t, h, 1, -h),
			box(-1+t, -1+t, 1, -1),
		}
	case 'F':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, 1, 1, 1-t),
			box(-1+t, h, 1, -h),
		}
	case 'G':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, 1, 1-t, 1-t),
			box(-1+t*3, h, 1, -h),
			box(-1+t, -1+t, t, -1),
			box(t, -h, t*2, -1),
		}
	case 'H':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, h, 1-t, -h),
			box(1-t, 1, 1, -1),
		}
	case 'I':
		return []bui.Points{
			box(-1, 1, 1, 1-t),
			box(-h, 1-t, h, -1+t),
			box(-1, -1+t, 1, -1),
		}
	case 'J':
		return []bui.Points{
			box(-1, 1, 1, 1-t),
			box(-h, 1-t, h, -1+t),
			box(-1, -1+t, h, -1),
		}
	case 'K':
		s := []bui.Points{box(-1, 1, -1+t, -1)}
		for i := float32(1); ; i++ {
			maxy := t * i
			if maxy > 1 {
				break
			}
			maxx := -1 + t*(i+1)
			if maxx > 1 {
				break
			}
			s = append(s,
				box(maxx-t, maxy, maxx, maxy-t),
				box(maxx-t, -maxy+t, maxx, -maxy),
			)
		}
		return s
	case 'L':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, -1+t, 1, -1),
		}
	case 'N':
		s := []bui.Points{
			box(-1, 1, -1+t, -1),
			box(1-t, 1, 1, -1),
			box(-h, h, h, -h),
		}
		for i := float32(1); ; i++ {
			// going up and right
			maxes := h + t*i
			if maxes > 1 {
				break
			}
			s = append(s,
				box(-maxes, maxes, -maxes+t, maxes-t),
				box(maxes-t, -maxes+t, maxes, -maxes),
			)
		}
		return s
	case 'P':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, 1, 1-t, 1-t),
			box(-1+t, h, 1-t, -h),
			box(1-t, 1, 1, -h),
		}
	case 'Q':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, 1, 1-t, 1-t),
			box(-1+t, -1+t, 1-t*2, -1),
			box(1-t, 1, 1, -1+t*2),
			box(1-t, -1+t, 1, -1),
			box(1-t*2, -1+t*2, 1-t, -1+t),
			box(1-t*3, -1+t*3, 1-t*2, -1+t*2),
		}
	case 'R':
		s := []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, 1, 1-t, 1-t),
			box(-1+t, h, 1-t, -h),
			box(1-t, 1, 1, -h),
		}
		partWidth := (2 - t*2) / float32(math.Floor(float64(1/t-0.5)))
		for i := float32(1); ; i++ {
			maxx := -1 + t*2 + i*partWidth
			if maxx > 1 {
				break
			}
			miny := -t * (0.5 + i)
			if miny < -1 {
				break
			}
			s = append(s, box(maxx-partWidth, miny+t, maxx, miny))
		}
		return s
	case 'T':
		return []bui.Points{
			box(-1, 1, 1, 1-t),
			box(-h, 1-t, h, -1),
		}
	case 'U':
		return []bui.Points{
			box(-1, 1, -1+t, -1),
			box(-1+t, -1+t, 1-t, -1),
			box(1-t, 1, 1, -1),
		}
	case 'V':
		s := []bui.Points{box(-h, -1+t, h, -1)}
		partHeight := t * 2.25
		for i := float32(1); ; i++ {
			// going up and right
			maxy := -1 + t + i*partHeight
			if maxy > 1 {
				break
			}
			maxx := t * (0.5 + i)
			if maxx > 1 {
				break
			}
			s = append(s,
				box(maxx-t, maxy, maxx, maxy-partHeight),
				box(-maxx, maxy, -maxx+t, maxy-partHeight),
			)
		}
		return s
	case 'X':
		s := []bui.Points{box(-h, h, h, -h)}
		for i := float32(1); ; i++ {
			// going up and right
			maxes := h + t*i
			if maxes > 1 {
				break
			}
			s = append(s,
				box(maxes-t, maxes, maxes, maxes-t),
				box(-maxes, maxes, -maxes+t, maxes-t),
				box(maxes-t, -maxes+t, maxes, -maxes),
				box(-maxes, -maxes+t, -maxes+t, -maxes),
			)
		}
		return s
	case 'Y':
		return []bui.Points{
			box(-1, 1, -1+t, -h),
			box(-1+t, h, 1-t, -h),
			box(1-t, 1, 1, -h),
			box(-h, -h, h, -1),
		}
	}
	return nil
}
