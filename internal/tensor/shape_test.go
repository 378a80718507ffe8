package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{Shape{4, 0}, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShapeValidate(t *testing.T) {
	for _, shape := range []Shape{{}, {0}, {2, 0}, {2, 3}, {math.MaxInt, 1}, {0, math.MaxInt, 2}} {
		assert.NoError(t, shape.Validate(), "shape %v", shape)
	}
	for _, shape := range []Shape{{-1}, {2, -3}, {math.MaxInt, 2}, {math.MaxInt / 3, 2, 2}, {2, math.MaxInt/2 + 1}} {
		require.ErrorIs(t, shape.Validate(), ErrInvalidShape, "shape %v", shape)
	}
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{7}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9

	assert.True(t, s.Equal(Shape{2, 3}))
	assert.False(t, s.Equal(c))
	assert.False(t, s.Equal(Shape{2, 3, 1}))
}
