// Package tensor provides the core tensor view type for tensorview: a generic
// N-dimensional array over shared, reference-counted storage.
package tensor

// Element is the constraint for tensor element types.
// Every supported type is copyable and its zero value is the additive identity,
// which is what Zeros fills new storage with.
type Element interface {
	~float32 | ~float64 |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Float is the constraint for the tolerance-based comparison helpers.
type Float interface {
	~float32 | ~float64
}
