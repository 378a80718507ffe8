// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensorview/internal/tensor"
)

// Storage is the reference-counted buffer shared by tensor views.
//
// Storage provides:
//   - A fixed length, set when the first tensor over it is created
//   - An atomic reference count, incremented by Slice and Clone
//   - Release of the buffer once every holder has called Tensor.Release
//
// Storage is never constructed directly. Inspect it through Tensor.Refs,
// Tensor.IsUnique and Tensor.SharesStorage.
type Storage[T Element] = tensor.Storage[T]
