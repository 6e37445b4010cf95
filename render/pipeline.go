// Copyright 2026 The bui Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// PipelineSpec describes one render pipeline and how to draw with it.
// Module handles are left to the host, which creates them from Program.
type PipelineSpec struct {
	// Label is the debug label of the pipeline.
	Label string

	// Program holds the shader source and entry points.
	Program Program

	// Kind is the primitive kind instanced by the pipeline. The text cover
	// pipeline draws no instances and reports KindLine, the kind of the
	// stencil pass it completes.
	Kind Kind

	// Buffers is the vertex buffer layout, empty for the cover pass.
	Buffers []gputypes.VertexBufferLayout

	// Primitive is the primitive assembly state.
	Primitive gputypes.PrimitiveState

	// Targets holds the color targets, empty for the stencil pass.
	Targets []gputypes.ColorTargetState

	// DepthStencil is set for the text passes.
	DepthStencil *gputypes.DepthStencilState

	// Multisample is the multisample state.
	Multisample gputypes.MultisampleState

	// VerticesPerInstance is the vertex count of each draw.
	VerticesPerInstance uint32

	// StencilReference is the reference value to set before drawing.
	StencilReference uint32

	// Instanced reports whether the draw takes its instance count from a
	// batch. The cover pass draws a single instance.
	Instanced bool
}

// UsesStencil reports whether the pipeline needs the stencil texture.
func (s PipelineSpec) UsesStencil() bool {
	return s.DepthStencil != nil
}

// SpecsFor returns the pipeline specs for the provider's surface format, in
// draw order: rectangles, ellipses, capsules, lines, then the two text
// passes.
func SpecsFor(provider DeviceHandle) []PipelineSpec {
	format := surfaceFormat(provider)

	replace := gputypes.BlendStateReplace()
	alpha := gputypes.BlendStateAlpha()

	target := func(blend *gputypes.BlendState) []gputypes.ColorTargetState {
		return []gputypes.ColorTargetState{{
			Format:    format,
			Blend:     blend,
			WriteMask: gputypes.ColorWriteMaskAll,
		}}
	}

	quad := gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeBack,
	}

	// --- Text stencil ---
	//
	// Every sample covered by a line's triangle flips the stencil, whether
	// the Equal test against reference 0 passes or fails.
	invert := gputypes.StencilFaceState{
		Compare:     gputypes.CompareFunctionEqual,
		FailOp:      gputypes.StencilOperationInvert,
		DepthFailOp: gputypes.StencilOperationKeep,
		PassOp:      gputypes.StencilOperationInvert,
	}
	// --- Text cover ---
	//
	// Only samples whose stencil equals reference 0xff are colored.
	keep := gputypes.StencilFaceState{
		Compare:     gputypes.CompareFunctionEqual,
		FailOp:      gputypes.StencilOperationKeep,
		DepthFailOp: gputypes.StencilOperationKeep,
		PassOp:      gputypes.StencilOperationKeep,
	}

	return []PipelineSpec{
		{
			Label:               "rect_pipeline",
			Program:             RectProgram,
			Kind:                KindRect,
			Buffers:             []gputypes.VertexBufferLayout{RectLayout()},
			Primitive:           quad,
			Targets:             target(&replace),
			Multisample:         gputypes.DefaultMultisampleState(),
			VerticesPerInstance: 6,
			Instanced:           true,
		},
		{
			Label:               "ellipse_pipeline",
			Program:             EllipseProgram,
			Kind:                KindEllipse,
			Buffers:             []gputypes.VertexBufferLayout{EllipseLayout()},
			Primitive:           quad,
			Targets:             target(&replace),
			Multisample:         gputypes.DefaultMultisampleState(),
			VerticesPerInstance: 6,
			Instanced:           true,
		},
		{
			Label:   "capsule_pipeline",
			Program: CapsuleProgram,
			Kind:    KindCapsule,
			Buffers: []gputypes.VertexBufferLayout{CapsuleLayout()},
			Primitive: gputypes.PrimitiveState{
				Topology: gputypes.PrimitiveTopologyTriangleStrip,
				CullMode: gputypes.CullModeNone,
			},
			Targets:             target(&alpha),
			Multisample:         gputypes.DefaultMultisampleState(),
			VerticesPerInstance: 4,
			Instanced:           true,
		},
		{
			Label:   "line_pipeline",
			Program: LineProgram,
			Kind:    KindLine,
			Buffers: []gputypes.VertexBufferLayout{LineLayout()},
			Primitive: gputypes.PrimitiveState{
				Topology:  gputypes.PrimitiveTopologyLineList,
				FrontFace: gputypes.FrontFaceCCW,
				CullMode:  gputypes.CullModeBack,
			},
			Targets:             target(&replace),
			Multisample:         gputypes.DefaultMultisampleState(),
			VerticesPerInstance: 2,
			Instanced:           true,
		},
		{
			Label:     "text_stencil_pipeline",
			Program:   TextStencilProgram,
			Kind:      KindLine,
			Buffers:   []gputypes.VertexBufferLayout{LineLayout()},
			Primitive: gputypes.PrimitiveState{Topology: gputypes.PrimitiveTopologyTriangleList},
			DepthStencil: &gputypes.DepthStencilState{
				Format:           StencilFormat,
				DepthCompare:     gputypes.CompareFunctionAlways,
				StencilFront:     invert,
				StencilBack:      invert,
				StencilReadMask:  0xff,
				StencilWriteMask: 0xff,
			},
			Multisample:         gputypes.DefaultMultisampleState(),
			VerticesPerInstance: 3,
			StencilReference:    0,
			Instanced:           true,
		},
		{
			Label:     "text_cover_pipeline",
			Program:   TextCoverProgram,
			Kind:      KindLine,
			Primitive: gputypes.PrimitiveState{Topology: gputypes.PrimitiveTopologyTriangleList},
			Targets:   target(&replace),
			DepthStencil: &gputypes.DepthStencilState{
				Format:           StencilFormat,
				DepthCompare:     gputypes.CompareFunctionAlways,
				StencilFront:     keep,
				StencilBack:      keep,
				StencilReadMask:  0xff,
				StencilWriteMask: 0xff,
			},
			Multisample:         gputypes.DefaultMultisampleState(),
			VerticesPerInstance: 3,
			StencilReference:    0xff,
		},
	}
}

// Spec returns the spec with the given program name from specs.
func Spec(specs []PipelineSpec, program string) (PipelineSpec, bool) {
	for _, s := range specs {
		if s.Program.Name == program {
			return s, true
		}
	}
	return PipelineSpec{}, false
}
