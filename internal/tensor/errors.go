package tensor

import "github.com/pkg/errors"

// Errors returned by tensor operations. Returned errors wrap one of these
// with the offending shapes, so match them with errors.Is.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrOutOfBounds   = errors.New("out of bounds")
	ErrInvalidShape  = errors.New("invalid shape")
	ErrAliased       = errors.New("storage is shared by another tensor")
)

// Must panics if err is non-nil and returns t otherwise.
// It is intended for shapes known to be valid at the call site.
//
// Example:
//
//	w := tensor.Must(tensor.New(weights, Shape{4, 8}))
func Must[T Element](t *Tensor[T], err error) *Tensor[T] {
	if err != nil {
		panic(err)
	}
	return t
}
