// Copyright 2026 The bui Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
)

// Sentinel errors for the render package.
var (
	// ErrCapacityExceeded is returned when more primitives are supplied than
	// a batch was created for.
	ErrCapacityExceeded = errors.New("render: primitive count exceeds buffer capacity")

	// ErrShaderCompile is returned when a program fails to compile.
	ErrShaderCompile = errors.New("render: shader compilation failed")
)

// CapacityError reports a batch overflow.
type CapacityError struct {
	// Kind is the primitive kind of the batch.
	Kind Kind

	// Max is the capacity of the batch.
	Max int

	// Got is the number of primitives supplied.
	Got int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("render: %d %s primitives exceed buffer capacity %d", e.Got, e.Kind, e.Max)
}

// Unwrap returns ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
