// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a minimal N-dimensional tensor with shared,
// reference-counted storage and zero-copy views.
//
// # Overview
//
// A Tensor is a shape plus a window into a flat buffer:
//   - New and Zeros allocate storage
//   - Slice and Clone create views that share it
//   - Reshape changes the shape in place
//   - SelectHead and Transpose produce new tensors in fresh storage
//
// # Basic Usage
//
//	q := tensor.Must(tensor.New(projection, tensor.Shape{seqLen, nHeads * headDim}))
//	for h := 0; h < nHeads; h++ {
//	    head, err := q.SelectHead(h, nHeads, headDim) // [seqLen, headDim]
//	    ...
//	}
//
// # Aliasing
//
// Views share storage, so a write through DataMut (or Set) on one view is
// visible through every other view covering the same elements. DataMut does
// not check for this. Exclusive returns ErrAliased instead of a writable slice
// when the storage has more than one holder.
//
// # Memory Management
//
// Storage is reference-counted. Each view holds one reference and drops it
// with Release. Once the last holder releases, the buffer is freed and any
// further access through a stale view panics.
//
// # Errors
//
// Fallible operations return errors wrapping ErrShapeMismatch,
// ErrOutOfBounds, ErrInvalidShape or ErrAliased; use errors.Is to classify
// them. Must turns an error into a panic for fixtures and known-good shapes.
//
// # gonum
//
// AsDense exposes a 2-D float64 tensor as a *mat.Dense without copying;
// FromDense copies any mat.Matrix into a new tensor.
package tensor
