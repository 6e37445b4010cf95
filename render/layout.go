// Copyright 2026 The bui Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// Instance strides in bytes.
const (
	// LineStride is the size of one bui.LineRaw: two vec2<f32>.
	LineStride = 16

	// RectStride is the size of one bui.RectRaw or bui.EllipseRaw:
	// scale (vec2<f32>) + translation (vec2<f32>) + color (vec4<f32>).
	RectStride = 32

	// CapsuleStride is the size of one bui.CapsuleRaw:
	// p1 (vec2<f32>) + p2 (vec2<f32>) + radius (f32) + color (vec4<f32>).
	CapsuleStride = 36
)

// LineLayout returns the instance buffer layout of line primitives.
// Location 0 is the first endpoint, location 1 the second.
func LineLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: LineStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
		},
	}
}

// RectLayout returns the instance buffer layout of rectangle primitives.
// Location 0 is the scale, 1 the translation and 2 the color.
func RectLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: RectStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
		},
	}
}

// EllipseLayout returns the instance buffer layout of ellipse primitives,
// which is the rectangle layout.
func EllipseLayout() gputypes.VertexBufferLayout {
	return RectLayout()
}

// CapsuleLayout returns the instance buffer layout of capsule primitives.
// Locations 0 and 1 are the endpoints, 2 the radius and 3 the color.
func CapsuleLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: CapsuleStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32, Offset: 16, ShaderLocation: 2},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 20, ShaderLocation: 3},
		},
	}
}
