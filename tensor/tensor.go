// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"log/slog"

	"github.com/born-ml/tensorview/internal/matview"
	"github.com/born-ml/tensorview/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// Type aliases for public API

// Element is a constraint for tensor element types.
type Element = tensor.Element

// Float is a constraint for floating-point element types.
type Float = tensor.Float

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// FormatOptions controls Tensor.Fprint.
type FormatOptions = tensor.FormatOptions

// Tensor is a generic tensor view over shared storage.
//
// Tensor provides:
//   - Zero-copy views via Slice and Clone
//   - In-place Reshape
//   - Head extraction for multi-head attention via SelectHead
//   - Explicit reference counting via Release
//
// Example:
//
//	x := tensor.Iota[float32](tensor.Shape{4, 3})
//	rows, _ := x.Slice(3, tensor.Shape{2, 3}) // shares storage with x
type Tensor[T Element] = tensor.Tensor[T]

// Errors.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch // Element count or rank does not fit the operation.
	ErrOutOfBounds   = tensor.ErrOutOfBounds   // Window or index outside the tensor.
	ErrInvalidShape  = tensor.ErrInvalidShape  // Negative dimension.
	ErrAliased       = tensor.ErrAliased       // Exclusive access refused.
)

// Creation functions

// New wraps data in a tensor of the given shape without copying it.
//
// Example:
//
//	x, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func New[T Element](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.New(data, shape)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T Element](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14)
func Full[T Element](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// Iota creates a tensor whose elements equal their flat index.
//
// Example:
//
//	x := tensor.Iota[float32](tensor.Shape{2, 3}) // [[0 1 2] [3 4 5]]
func Iota[T Element](shape Shape) *Tensor[T] {
	return tensor.Iota[T](shape)
}

// Must panics if err is non-nil and returns t otherwise.
func Must[T Element](t *Tensor[T], err error) *Tensor[T] {
	return tensor.Must(t, err)
}

// Transformation functions

// Transpose returns the transpose of a 2-D tensor in new storage.
func Transpose[T Element](t *Tensor[T]) (*Tensor[T], error) {
	return tensor.Transpose(t)
}

// Comparison functions

// FloatEq reports whether |x-y| <= rel*(|x|+|y|)/2.
func FloatEq[F Float](x, y, rel F) bool {
	return tensor.FloatEq(x, y, rel)
}

// CloseTo reports whether a and b have equal shapes and elements within
// relative tolerance rel.
func CloseTo[F Float](a, b *Tensor[F], rel F) bool {
	return tensor.CloseTo(a, b, rel)
}

// Equal reports whether a and b have equal shapes and identical elements.
func Equal[T Element](a, b *Tensor[T]) bool {
	return tensor.Equal(a, b)
}

// Diagnostics

// DefaultFormatOptions returns the options used by Tensor.Print.
func DefaultFormatOptions() FormatOptions {
	return tensor.DefaultFormatOptions()
}

// SetLogger routes storage lifecycle events (Debug level) to l.
// Pass nil to discard them again.
func SetLogger(l *slog.Logger) {
	tensor.SetLogger(l)
}

// gonum interop

// AsDense returns a *mat.Dense sharing the elements of a 2-D float64 tensor.
func AsDense(t *Tensor[float64]) (*mat.Dense, error) {
	return matview.AsDense(t)
}

// FromDense copies a gonum matrix into a new 2-D tensor.
func FromDense(m mat.Matrix) *Tensor[float64] {
	return matview.FromDense(m)
}
