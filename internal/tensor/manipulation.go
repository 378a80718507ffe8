package tensor

import "github.com/pkg/errors"

// Reshape reinterprets the tensor with a new shape of the same element count.
// The shape is replaced in place: storage, offset and length are unchanged.
// Returns the receiver for chaining, or ErrShapeMismatch if the element
// counts differ.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{2, 3})
//	t.Reshape(Shape{3, 2})
func (t *Tensor[T]) Reshape(shape Shape) (*Tensor[T], error) {
	t.mustBeLive()
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != t.length {
		return nil, errors.Wrapf(ErrShapeMismatch, "new shape %v does not match tensor of %v", []int(shape), []int(t.shape))
	}
	t.shape = shape.Clone()
	return t, nil
}

// Slice returns a view of shape.NumElements() consecutive elements starting
// start elements into this view. The view shares storage with t.
//
// Returns ErrOutOfBounds if start is negative or if
// t.Offset()+start+shape.NumElements() exceeds t.Size(). The bound is taken
// against the parent's length, so slicing a view that itself has a non-zero
// offset leaves correspondingly less room.
//
// Example:
//
//	t := tensor.Iota[float32](Shape{4, 3})
//	rows, _ := t.Slice(3, Shape{2, 3}) // rows 1 and 2
func (t *Tensor[T]) Slice(start int, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.NumElements()
	room := t.length - t.offset
	if start < 0 || n > room || start > room-n {
		return nil, errors.Wrapf(ErrOutOfBounds, "slice of %d elements at %d (view offset %d) exceeds length %d",
			n, start, t.offset, t.length)
	}

	t.share()
	return &Tensor[T]{
		storage: t.storage,
		shape:   shape.Clone(),
		offset:  t.offset + start,
		length:  n,
	}, nil
}

// SelectHead gathers the columns of one attention head from a 2-D
// [seqLen, hidden] tensor, where hidden == nHeads*dqkv.
//
// A head's columns are strided in the source, so the result is a freshly
// allocated [seqLen, dqkv] tensor, not a view: element (i, o) of the result is
// element (i, head*dqkv+o) of t.
//
// Returns ErrShapeMismatch if t is not 2-D or hidden != nHeads*dqkv, and
// ErrOutOfBounds if head is not in [0, nHeads).
func (t *Tensor[T]) SelectHead(head, nHeads, dqkv int) (*Tensor[T], error) {
	if len(t.shape) != 2 {
		return nil, errors.Wrapf(ErrShapeMismatch, "select head: want [seq_len, hidden] tensor, got %v", []int(t.shape))
	}
	seqLen, hidden := t.shape[0], t.shape[1]
	if hidden != nHeads*dqkv {
		return nil, errors.Wrapf(ErrShapeMismatch, "select head: hidden size %d != n_heads %d * dqkv %d", hidden, nHeads, dqkv)
	}
	if head < 0 || head >= nHeads {
		return nil, errors.Wrapf(ErrOutOfBounds, "select head: head %d not in [0, %d)", head, nHeads)
	}

	result := Zeros[T](Shape{seqLen, dqkv})
	src := t.Data()
	dst := result.DataMut()
	for i := 0; i < seqLen; i++ {
		row := i*hidden + head*dqkv
		copy(dst[i*dqkv:(i+1)*dqkv], src[row:row+dqkv])
	}
	return result, nil
}

// SplitHeads returns every head of a [seqLen, nHeads*dqkv] tensor, in order.
// See SelectHead.
func (t *Tensor[T]) SplitHeads(nHeads, dqkv int) ([]*Tensor[T], error) {
	heads := make([]*Tensor[T], nHeads)
	for h := range heads {
		head, err := t.SelectHead(h, nHeads, dqkv)
		if err != nil {
			return nil, err
		}
		heads[h] = head
	}
	return heads, nil
}

// Transpose returns a new [cols, rows] tensor holding the transpose of a 2-D
// [rows, cols] tensor. Returns ErrShapeMismatch for any other rank.
//
// Example:
//
//	t := tensor.Must(tensor.New([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}))
//	tt, _ := tensor.Transpose(t) // [[1 4] [2 5] [3 6]]
func Transpose[T Element](t *Tensor[T]) (*Tensor[T], error) {
	if len(t.shape) != 2 {
		return nil, errors.Wrapf(ErrShapeMismatch, "only 2-D transpose supported, got %v", []int(t.shape))
	}

	rows, cols := t.shape[0], t.shape[1]
	result := Zeros[T](Shape{cols, rows})
	src := t.Data()
	dst := result.DataMut()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
	return result, nil
}
