// Copyright 2026 The bui Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/vectorui/bui"
)

// AppendLines appends the little-endian instance bytes of lines to dst.
func AppendLines(dst []byte, lines []bui.LineRaw) []byte {
	dst = slices.Grow(dst, len(lines)*LineStride)
	for _, l := range lines {
		dst = appendFloats(dst, l.P1[:]...)
		dst = appendFloats(dst, l.P2[:]...)
	}
	return dst
}

// AppendRects appends the little-endian instance bytes of rects to dst.
func AppendRects(dst []byte, rects []bui.RectRaw) []byte {
	dst = slices.Grow(dst, len(rects)*RectStride)
	for _, r := range rects {
		dst = appendFloats(dst, r.Scale[:]...)
		dst = appendFloats(dst, r.Translation[:]...)
		dst = appendFloats(dst, r.Color[:]...)
	}
	return dst
}

// AppendEllipses appends the little-endian instance bytes of ellipses to
// dst.
func AppendEllipses(dst []byte, ellipses []bui.EllipseRaw) []byte {
	dst = slices.Grow(dst, len(ellipses)*RectStride)
	for _, e := range ellipses {
		dst = appendFloats(dst, e.Scale[:]...)
		dst = appendFloats(dst, e.Translation[:]...)
		dst = appendFloats(dst, e.Color[:]...)
	}
	return dst
}

// AppendCapsules appends the little-endian instance bytes of capsules to
// dst.
func AppendCapsules(dst []byte, capsules []bui.CapsuleRaw) []byte {
	dst = slices.Grow(dst, len(capsules)*CapsuleStride)
	for _, c := range capsules {
		dst = appendFloats(dst, c.P1[:]...)
		dst = appendFloats(dst, c.P2[:]...)
		dst = appendFloats(dst, c.Radius)
		dst = appendFloats(dst, c.Color[:]...)
	}
	return dst
}

func appendFloats(dst []byte, vs ...float32) []byte {
	for _, v := range vs {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}
