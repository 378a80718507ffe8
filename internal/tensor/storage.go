package tensor

import "sync/atomic"

// Storage is the reference-counted flat buffer behind one or more tensor views.
// Its length is fixed at allocation. Every view created by Slice or Clone holds
// one reference, and the buffer is dropped when the last holder releases it.
type Storage[T Element] struct {
	data []T
	refs atomic.Int32
}

// newStorage wraps data with refCount = 1. The storage owns data from now on.
func newStorage[T Element](data []T) *Storage[T] {
	s := &Storage[T]{data: data}
	s.refs.Store(1)
	logger().Debug("tensor storage allocated", "elements", len(data))
	return s
}

// Len returns the number of elements in the backing buffer.
func (s *Storage[T]) Len() int {
	return len(s.data)
}

// Refs returns the number of live holders.
func (s *Storage[T]) Refs() int {
	return int(s.refs.Load())
}

// addRef increments the reference count (for Slice and Clone).
// It returns false, leaving the count at zero, if the storage is already freed.
func (s *Storage[T]) addRef() bool {
	for {
		n := s.refs.Load()
		if n <= 0 {
			return false
		}
		if s.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// release decrements the reference count and drops the buffer when it reaches 0.
// Releasing a storage that is already freed is a no-op.
func (s *Storage[T]) release() {
	for {
		n := s.refs.Load()
		if n <= 0 {
			return
		}
		if s.refs.CompareAndSwap(n, n-1) {
			if n == 1 {
				elements := len(s.data)
				s.data = nil
				logger().Debug("tensor storage released", "elements", elements)
			}
			return
		}
	}
}

// isUnique returns true if exactly one tensor holds this storage.
func (s *Storage[T]) isUnique() bool {
	return s.refs.Load() == 1
}

// freed reports whether the last holder has released the storage.
func (s *Storage[T]) freed() bool {
	return s.refs.Load() <= 0
}
