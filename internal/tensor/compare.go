package tensor

import "slices"

// FloatEq reports whether x and y agree within relative tolerance rel:
// |x-y| <= rel * (|x|+|y|) / 2.
// NaN and infinities follow IEEE comparison rules and are never special-cased.
func FloatEq[F Float](x, y, rel F) bool {
	return abs(x-y) <= rel*(abs(x)+abs(y))/2
}

func abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// CloseTo reports whether a and b have the same shape and all elements
// pairwise satisfy FloatEq with tolerance rel.
func CloseTo[F Float](a, b *Tensor[F], rel F) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	x, y := a.Data(), b.Data()
	for i := range x {
		if !FloatEq(x[i], y[i], rel) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b have the same shape and identical elements.
func Equal[T Element](a, b *Tensor[T]) bool {
	return a.shape.Equal(b.shape) && slices.Equal(a.Data(), b.Data())
}
