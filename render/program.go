// Copyright 2026 The bui Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/vectorui/bui"
)

// Embedded WGSL program sources.

//go:embed shaders/line.wgsl
var lineShaderSource string

//go:embed shaders/text_stencil.wgsl
var textStencilShaderSource string

//go:embed shaders/text_cover.wgsl
var textCoverShaderSource string

//go:embed shaders/rect.wgsl
var rectShaderSource string

//go:embed shaders/ellipse.wgsl
var ellipseShaderSource string

//go:embed shaders/capsule.wgsl
var capsuleShaderSource string

// Program is a WGSL shader module with its entry points.
type Program struct {
	// Name identifies the program in labels and errors.
	Name string

	// Source is the WGSL source code.
	Source string

	// VertexEntry and FragmentEntry are the entry point names.
	VertexEntry   string
	FragmentEntry string
}

// Programs of the bui renderers.
var (
	LineProgram        = newProgram("line", lineShaderSource)
	TextStencilProgram = newProgram("text_stencil", textStencilShaderSource)
	TextCoverProgram   = newProgram("text_cover", textCoverShaderSource)
	RectProgram        = newProgram("rect", rectShaderSource)
	EllipseProgram     = newProgram("ellipse", ellipseShaderSource)
	CapsuleProgram     = newProgram("capsule", capsuleShaderSource)
)

func newProgram(name, source string) Program {
	return Program{
		Name:          name,
		Source:        source,
		VertexEntry:   "vs_main",
		FragmentEntry: "fs_main",
	}
}

// Programs returns every program, in draw order.
func Programs() []Program {
	return []Program{
		RectProgram,
		EllipseProgram,
		CapsuleProgram,
		LineProgram,
		TextStencilProgram,
		TextCoverProgram,
	}
}

// ShaderModuleDescriptor returns a descriptor that creates the module from
// WGSL source.
func (p Program) ShaderModuleDescriptor() gputypes.ShaderModuleDescriptor {
	return gputypes.ShaderModuleDescriptor{
		Label:  p.Name + "_shader",
		Source: gputypes.ShaderSourceWGSL{Code: p.Source},
	}
}

// CompileProgram compiles the program's WGSL to SPIR-V words.
func CompileProgram(p Program) ([]uint32, error) {
	spirvBytes, err := naga.Compile(p.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrShaderCompile, p.Name, err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	bui.Logger().Debug("render: compiled program", "program", p.Name, "words", len(spirvCode))
	return spirvCode, nil
}

// CompileModule compiles the program and returns a descriptor that creates
// the module from SPIR-V.
func CompileModule(p Program) (gputypes.ShaderModuleDescriptor, error) {
	code, err := CompileProgram(p)
	if err != nil {
		return gputypes.ShaderModuleDescriptor{}, err
	}
	return gputypes.ShaderModuleDescriptor{
		Label:  p.Name + "_shader",
		Source: gputypes.ShaderSourceSPIRV{Code: code},
	}, nil
}
