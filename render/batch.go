// Copyright 2026 The bui Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/vectorui/bui"

// Kind identifies a primitive kind.
type Kind int

const (
	// KindLine is a line segment, drawn by the line and text programs.
	KindLine Kind = iota

	// KindRect is an axis-aligned rectangle.
	KindRect

	// KindEllipse is an axis-aligned ellipse.
	KindEllipse

	// KindCapsule is a segment with round caps.
	KindCapsule
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRect:
		return "rect"
	case KindEllipse:
		return "ellipse"
	case KindCapsule:
		return "capsule"
	default:
		return "unknown"
	}
}

// Stride returns the instance size of the kind in bytes.
func (k Kind) Stride() int {
	switch k {
	case KindLine:
		return LineStride
	case KindRect, KindEllipse:
		return RectStride
	case KindCapsule:
		return CapsuleStride
	default:
		return 0
	}
}

// Batch is the CPU side of a fixed-capacity instance buffer.
//
// A renderer allocates its GPU buffer once for a maximum primitive count.
// Set replaces the batch contents and refuses more primitives than that
// maximum, so the bytes always fit the GPU buffer.
type Batch[T any] struct {
	kind   Kind
	max    int
	n      int
	buf    []byte
	encode func([]byte, []T) []byte
}

func newBatch[T any](kind Kind, maxCount int, encode func([]byte, []T) []byte) *Batch[T] {
	maxCount = max(maxCount, 0)
	return &Batch[T]{
		kind:   kind,
		max:    maxCount,
		buf:    make([]byte, 0, maxCount*kind.Stride()),
		encode: encode,
	}
}

// NewLineBatch creates a batch of at most maxCount lines.
func NewLineBatch(maxCount int) *Batch[bui.LineRaw] {
	return newBatch(KindLine, maxCount, AppendLines)
}

// NewRectBatch creates a batch of at most maxCount rectangles.
func NewRectBatch(maxCount int) *Batch[bui.RectRaw] {
	return newBatch(KindRect, maxCount, AppendRects)
}

// NewEllipseBatch creates a batch of at most maxCount ellipses.
func NewEllipseBatch(maxCount int) *Batch[bui.EllipseRaw] {
	return newBatch(KindEllipse, maxCount, AppendEllipses)
}

// NewCapsuleBatch creates a batch of at most maxCount capsules.
func NewCapsuleBatch(maxCount int) *Batch[bui.CapsuleRaw] {
	return newBatch(KindCapsule, maxCount, AppendCapsules)
}

// Set replaces the batch contents with items.
//
// If len(items) exceeds the capacity, Set returns a *CapacityError wrapping
// ErrCapacityExceeded and leaves the batch unchanged.
func (b *Batch[T]) Set(items []T) error {
	if len(items) > b.max {
		return &CapacityError{Kind: b.kind, Max: b.max, Got: len(items)}
	}
	b.buf = b.encode(b.buf[:0], items)
	b.n = len(items)
	bui.Logger().Debug("render: batch updated", "kind", b.kind, "count", b.n)
	return nil
}

// Bytes returns the packed instances. The slice is reused by the next Set.
func (b *Batch[T]) Bytes() []byte {
	return b.buf
}

// Kind returns the primitive kind of the batch.
func (b *Batch[T]) Kind() Kind {
	return b.kind
}

// Len returns the number of primitives in the batch, the instance count of
// the next draw.
func (b *Batch[T]) Len() int {
	return b.n
}

// Cap returns the maximum number of primitives.
func (b *Batch[T]) Cap() int {
	return b.max
}

// Size returns the byte size of the GPU buffer backing a full batch.
func (b *Batch[T]) Size() int {
	return b.max * b.kind.Stride()
}
