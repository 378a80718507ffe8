package tensor

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
)

// Tensor is a view over shared storage: a shape plus the window
// [offset, offset+length) of the backing buffer it addresses.
//
// Views produced by Slice and Clone share storage with their parent and never
// copy it. Writes through DataMut on one view are visible through every other
// view covering the same elements.
//
// Invariants:
//   - shape.NumElements() == length
//   - offset + length <= storage.Len()
//
// A Tensor's metadata (shape, offset) is not safe for concurrent mutation.
// The storage reference count is.
//
// Example:
//
//	t := tensor.Must(tensor.New([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}))
//	row, _ := t.Slice(3, Shape{3}) // [4 5 6], shares storage with t
type Tensor[T Element] struct {
	storage  *Storage[T]
	shape    Shape
	offset   int
	length   int
	released bool
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Dims returns the number of dimensions.
func (t *Tensor[T]) Dims() int {
	return len(t.shape)
}

// Size returns the number of elements visible through this view.
func (t *Tensor[T]) Size() int {
	return t.length
}

// Offset returns the start of this view within its storage.
func (t *Tensor[T]) Offset() int {
	return t.offset
}

// Strides returns the row-major strides of the tensor's shape.
func (t *Tensor[T]) Strides() []int {
	return t.shape.ComputeStrides()
}

// Refs returns how many tensors currently hold this tensor's storage.
func (t *Tensor[T]) Refs() int {
	return t.storage.Refs()
}

// IsUnique returns true if this tensor is the only holder of its storage.
func (t *Tensor[T]) IsUnique() bool {
	return t.storage.isUnique()
}

// SharesStorage reports whether t and other are views of the same buffer.
func (t *Tensor[T]) SharesStorage(other *Tensor[T]) bool {
	return t.storage == other.storage
}

// Data returns the elements of this view, zero-copy.
//
// The slice is read-only by contract. Its capacity is clipped to the view, so
// appending to it never overwrites elements outside the window.
func (t *Tensor[T]) Data() []T {
	return t.window()
}

// DataMut returns the elements of this view for writing, zero-copy.
//
// WARNING: no aliasing check is performed. Storage may be shared with other
// views (Slice, Clone), and writes through the returned slice are observed by
// all of them. Use Exclusive when the caller cannot prove it is the sole holder.
func (t *Tensor[T]) DataMut() []T {
	return t.window()
}

// Exclusive returns the elements of this view for writing, but only if no
// other tensor holds the same storage. Otherwise it returns ErrAliased.
func (t *Tensor[T]) Exclusive() ([]T, error) {
	data := t.window()
	if !t.storage.isUnique() {
		return nil, errors.Wrapf(ErrAliased, "%d tensors hold the storage", t.storage.Refs())
	}
	return data, nil
}

func (t *Tensor[T]) window() []T {
	t.mustBeLive()
	end := t.offset + t.length
	return t.storage.data[t.offset:end:end]
}

func (t *Tensor[T]) mustBeLive() {
	if t.released {
		panic("tensor: use of released tensor")
	}
	if t.storage.freed() {
		panic("tensor: use of freed storage")
	}
}

// share takes a new reference to t's storage for a view.
func (t *Tensor[T]) share() {
	if t.released {
		panic("tensor: use of released tensor")
	}
	if !t.storage.addRef() {
		panic("tensor: use of freed storage")
	}
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(indices ...int) T {
	return t.Data()[t.flatIndex(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds. Like DataMut, the write is visible
// through every view sharing the storage.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.DataMut()[t.flatIndex(indices)] = value
}

func (t *Tensor[T]) flatIndex(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	strides := t.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// Clone returns a new view of the same window. No data is copied: the clone
// shares storage with t and increments its reference count.
func (t *Tensor[T]) Clone() *Tensor[T] {
	t.share()
	return &Tensor[T]{
		storage: t.storage,
		shape:   t.shape.Clone(),
		offset:  t.offset,
		length:  t.length,
	}
}

// Contiguous returns a deep copy of this view in fresh, unshared storage.
func (t *Tensor[T]) Contiguous() *Tensor[T] {
	data := make([]T, t.length)
	copy(data, t.Data())
	return newTensor(data, t.shape.Clone())
}

// Release drops this tensor's reference to its storage. The buffer is freed
// once every view sharing it has been released. Releasing twice is a no-op.
// Data access, views and Reshape on a released tensor panic; metadata
// accessors (Shape, Size, Offset, String) keep reporting the last state.
func (t *Tensor[T]) Release() {
	if t.released {
		return
	}
	t.released = true
	t.storage.release()
}

// String returns a one-line summary of the tensor.
func (t *Tensor[T]) String() string {
	var zero T
	return fmt.Sprintf("Tensor[%T]%v offset=%d length=%d", zero, []int(t.shape), t.offset, t.length)
}

// LogValue implements slog.LogValuer.
func (t *Tensor[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("shape", []int(t.shape)),
		slog.Int("offset", t.offset),
		slog.Int("length", t.length),
		slog.Int("refs", t.storage.Refs()),
	)
}
