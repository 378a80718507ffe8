package tensor

import "github.com/pkg/errors"

// New wraps data in fresh storage shaped as shape. The data is not copied:
// the returned tensor owns it, and the caller must not keep writing to it.
//
// Returns ErrShapeMismatch if shape does not describe exactly len(data)
// elements, and ErrInvalidShape if a dimension is negative or the element
// count overflows int.
//
// Example:
//
//	t, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
func New[T Element](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if n := shape.NumElements(); n != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, but got %d", []int(shape), n, len(data))
	}
	return newTensor(data, shape.Clone()), nil
}

// newTensor builds a tensor over data without validation.
func newTensor[T Element](data []T, shape Shape) *Tensor[T] {
	return &Tensor[T]{
		storage: newStorage(data),
		shape:   shape,
		offset:  0,
		length:  len(data),
	}
}

// Zeros creates a tensor filled with the zero value of T.
// Panics if shape is invalid (see Shape.Validate).
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T Element](shape Shape) *Tensor[T] {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return newTensor(make([]T, shape.NumElements()), shape.Clone())
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14)
func Full[T Element](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.DataMut()
	for i := range data {
		data[i] = value
	}
	return t
}

// Iota creates a tensor whose elements hold their own flat index: 0, 1, 2, ...
//
// Example:
//
//	t := tensor.Iota[int32](Shape{2, 3}) // [[0 1 2] [3 4 5]]
func Iota[T Element](shape Shape) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.DataMut()
	for i := range data {
		data[i] = T(i)
	}
	return t
}
