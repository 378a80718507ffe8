// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"bytes"
	"testing"

	"github.com/born-ml/tensorview/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestPublicAPI walks the head-splitting flow a host pipeline uses:
// build a projection, reshape it, take per-head tensors and transpose one.
func TestPublicAPI(t *testing.T) {
	const seqLen, nHeads, headDim = 3, 2, 2

	q := tensor.Iota[float32](tensor.Shape{seqLen * nHeads * headDim})
	_, err := q.Reshape(tensor.Shape{seqLen, nHeads * headDim})
	require.NoError(t, err)

	heads, err := q.SplitHeads(nHeads, headDim)
	require.NoError(t, err)
	require.Len(t, heads, nHeads)

	want := tensor.Must(tensor.New([]float32{2, 3, 6, 7, 10, 11}, tensor.Shape{seqLen, headDim}))
	assert.True(t, tensor.Equal(heads[1], want))

	kt, err := tensor.Transpose(heads[1])
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{headDim, seqLen}, kt.Shape())
	assert.Equal(t, []float32{2, 6, 10, 3, 7, 11}, kt.Data())
}

func TestPublicErrors(t *testing.T) {
	x := tensor.Zeros[float32](tensor.Shape{2, 3})

	_, err := x.Reshape(tensor.Shape{4, 2})
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = x.Slice(4, tensor.Shape{3})
	require.ErrorIs(t, err, tensor.ErrOutOfBounds)

	_, err = tensor.New([]float32{1}, tensor.Shape{-1})
	require.ErrorIs(t, err, tensor.ErrInvalidShape)

	view := x.Clone()
	_, err = x.Exclusive()
	require.ErrorIs(t, err, tensor.ErrAliased)
	view.Release()
	_, err = x.Exclusive()
	require.NoError(t, err)
}

func TestPublicCloseTo(t *testing.T) {
	a := tensor.Full[float32](tensor.Shape{2, 2}, 1.0)
	b := tensor.Full[float32](tensor.Shape{2, 2}, 1.0001)

	assert.True(t, tensor.CloseTo(a, b, 1e-3))
	assert.False(t, tensor.CloseTo(a, b, 1e-6))
	assert.True(t, tensor.FloatEq[float32](100, 101, 0.01))
}

func TestPublicDense(t *testing.T) {
	x := tensor.Must(tensor.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}))

	d, err := tensor.AsDense(x)
	require.NoError(t, err)
	d.Set(0, 0, 42)
	assert.Equal(t, 42.0, x.At(0, 0))

	back := tensor.FromDense(d.T())
	assert.Equal(t, tensor.Shape{3, 2}, back.Shape())
	assert.Equal(t, []float64{42, 4, 2, 5, 3, 6}, back.Data())

	id := tensor.FromDense(mat.NewDiagDense(2, []float64{1, 1}))
	assert.Equal(t, []float64{1, 0, 0, 1}, id.Data())
}

func TestPublicFprint(t *testing.T) {
	x := tensor.Iota[int32](tensor.Shape{2, 2})

	var buf bytes.Buffer
	require.NoError(t, x.Fprint(&buf, tensor.DefaultFormatOptions()))
	assert.Equal(t, "shape: [2 2], offset: 0, length: 4\n[0 1]\n[2 3]\n", buf.String())
}
