// Copyright 2026 The bui Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render describes the buffers and programs an external renderer
// needs to draw bui primitives.
//
// bui never talks to a GPU. This package is the contract between the
// primitives bui produces and the renderer that draws them: vertex layouts,
// byte packing, fixed-capacity instance batches, WGSL programs and pipeline
// state, all expressed with github.com/gogpu/gputypes so that any WebGPU
// implementation can consume them.
//
// # Key Principle
//
// The renderer RECEIVES a device from the host application, it does NOT
// create its own. [SpecsFor] only reads the surface format from a
// [DeviceHandle]; creating modules and pipelines is left to the host.
//
// # Programs
//
//   - LineProgram: one line per instance, LineList topology
//   - TextStencilProgram: one triangle per outline line, inverting the
//     stencil buffer (even-odd fill)
//   - TextCoverProgram: full-screen triangle drawn where the stencil is set
//   - RectProgram and EllipseProgram: one quad per instance
//   - CapsuleProgram: one rounded segment per instance
//
// # Usage
//
//	lines := render.NewLineBatch(12800)
//	if err := lines.Set(fitted.Lines); err != nil {
//	    return err
//	}
//	queue.WriteBuffer(lineBuffer, 0, lines.Bytes())
//
//	for _, spec := range render.SpecsFor(provider) {
//	    spirv, err := render.CompileProgram(spec.Program)
//	    ...
//	}
package render
