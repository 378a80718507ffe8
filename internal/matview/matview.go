// Package matview bridges 2-D float64 tensors and gonum matrices.
//
// AsDense is zero-copy in the same sense as Tensor.DataMut: the returned
// matrix writes straight into the tensor's storage.
package matview

import (
	"github.com/born-ml/tensorview/internal/tensor"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// AsDense returns a *mat.Dense backed by the tensor's elements.
//
// Writes through the matrix are visible through t and through every view
// sharing its storage. Returns ErrShapeMismatch unless t is 2-D, and
// ErrInvalidShape if either dimension is zero (gonum has no empty matrices).
func AsDense(t *tensor.Tensor[float64]) (*mat.Dense, error) {
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "dense view needs a 2-D tensor, got %v", []int(shape))
	}
	rows, cols := shape[0], shape[1]
	if rows == 0 || cols == 0 {
		return nil, errors.Wrapf(tensor.ErrInvalidShape, "dense view of empty tensor %v", []int(shape))
	}
	return mat.NewDense(rows, cols, t.DataMut()), nil
}

// FromDense copies any gonum matrix into a new [rows, cols] tensor.
// Transposed and sliced gonum views are materialised in row-major order.
func FromDense(m mat.Matrix) *tensor.Tensor[float64] {
	rows, cols := m.Dims()
	data := make([]float64, rows*cols)
	mat.NewDense(rows, cols, data).Copy(m)
	return tensor.Must(tensor.New(data, tensor.Shape{rows, cols}))
}
