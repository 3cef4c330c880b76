// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"
	"strings"
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	sh := NewShape([]int{2, 3, 4}, "a", "b", "c")
	assert.Equal(t, 24, sh.Len())
	assert.Equal(t, 3, sh.NumDims())
	assert.Equal(t, []int{12, 4, 1}, sh.Strides)
	assert.Equal(t, 1*12+2*4+3, sh.Offset(1, 2, 3))
	assert.Equal(t, []int{1, 2, 3}, sh.Index(23))
	assert.Equal(t, 1, sh.DimByName("b"))
	assert.Equal(t, -1, sh.DimByName("z"))
	assert.Equal(t, "[a: 2, b: 3, c: 4]", sh.String())
}

func TestFloat64(t *testing.T) {
	tsr := NewFloat64(4, 2)
	tsr.SetNames("Row", "Vals")
	assert.Equal(t, 8, tsr.Len())
	assert.Equal(t, 2, tsr.SubSpace(0).Len())

	tsr.SetFloat(3.14, 2, 0)
	assert.Equal(t, 3.14, tsr.Float(2, 0))
	tsr.SetFloat1D(2.17, 5)
	assert.Equal(t, 2.17, tsr.Float(2, 1))
	assert.Equal(t, 3.14, tsr.Float1D(4))
	assert.Equal(t, []float64{3.14, 2.17}, tsr.Row(2))
	assert.Equal(t, []float64{0, 0, 3.14, 0}, tsr.Column(0))

	cln := tsr.Clone()
	cln.SetFloat1D(9, 5)
	assert.Equal(t, 2.17, tsr.Float(2, 1))

	tsr.SetFloat1D(math.NaN(), 0)
	mn, mx, mni, mxi := tsr.Range()
	assert.Equal(t, 0.0, mn)
	assert.Equal(t, 3.14, mx)
	assert.Equal(t, 1, mni)
	assert.Equal(t, 4, mxi)

	_, err := NewFloat64Shaped([]float64{1, 2, 3}, 2, 2)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestLabeled(t *testing.T) {
	vals := NewFloat64(1, 3, 2)
	for i := range vals.Values {
		vals.Values[i] = float64(i)
	}
	lb, err := NewLabeled("test", vals,
		NewCoord("scan", "", []float64{0}),
		NewCoord("angle", "deg", []float64{-1, 0, 1}),
		NewCoord("energy", "eV", []float64{10, 11}))
	require.NoError(t, err)
	assert.Equal(t, []string{"scan", "angle", "energy"}, lb.DimNames())
	assert.Equal(t, 1, lb.Dim("angle"))
	assert.Equal(t, "deg", lb.Coord("angle").Units)
	assert.Nil(t, lb.Coord("focus"))

	lb.Attrs.Set("scan_name", "test")
	sq, err := lb.Squeeze(0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, sq.Sizes())
	assert.Equal(t, []string{"angle", "energy"}, sq.DimNames())
	assert.Equal(t, 5.0, sq.Values.Float(2, 1))
	nm, err := GetAttr[string](sq.Attrs, "scan_name")
	assert.NoError(t, err)
	assert.Equal(t, "test", nm)

	_, err = lb.Squeeze(1)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = NewLabeled("bad", NewFloat64(2, 2), NewCoord("x", "", []float64{0, 1}), NewCoord("y", "", []float64{0}))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = NewLabeled("bad", NewFloat64(2, 2), NewCoord("x", "", []float64{0, 1}))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = NewLabeled("dup", NewFloat64(1, 1), NewCoord("x", "", []float64{0}), NewCoord("x", "", []float64{0}))
	assert.Error(t, err)

	assert.True(t, strings.HasPrefix(sq.String(), "test [angle: 3, energy: 2]"))
}

func TestHistory(t *testing.T) {
	lb, err := NewLabeled("h", NewFloat64(1), NewCoord("x", "", []float64{0}))
	require.NoError(t, err)
	lb.Attrs.Set(HistoryKey, []string{})
	lb.AppendHistory("normalized")
	lb.AppendHistory("EF corrected")
	hist, err := GetAttr[[]string](lb.Attrs, HistoryKey)
	assert.NoError(t, err)
	assert.Equal(t, []string{"normalized", "EF corrected"}, hist)

	_, err = GetAttr[float64](lb.Attrs, HistoryKey)
	assert.Error(t, err)
	_, err = GetAttr[float64](lb.Attrs, "missing")
	assert.Error(t, err)
}

func TestTranspose(t *testing.T) {
	vals, err := NewFloat64Shaped([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	lb, err := NewLabeled("tr", vals, NewCoord("y", "", []float64{0, 1}), NewCoord("x", "", []float64{0, 1, 2}))
	require.NoError(t, err)
	lb.Attrs.Set("zdim", "z")
	tr, err := lb.Transpose2D()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, tr.Sizes())
	assert.Equal(t, []string{"x", "y"}, tr.DimNames())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Values.Values)
	assert.Equal(t, "z", tr.Attrs.At("zdim"))

	r, c := vals.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, vals.At(1, 2))
	assert.Equal(t, 6.0, vals.T().At(2, 1))
}

func TestRowGrid(t *testing.T) {
	rows, err := NewFloat64Shaped([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	ax := Axes{X: Axis{Name: "x", Units: "mm"}, Y: Axis{Name: "y", Units: "K"}, Z: Axis{Name: "counts"}}
	lb, err := ax.RowGrid("rg", rows, []float64{0, 1, 2}, []float64{10, 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, lb.DimNames())
	assert.Equal(t, []int{3, 2}, lb.Sizes())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, lb.Values.Values)
	assert.Equal(t, "mm", lb.Coord("x").Units)
	assert.Equal(t, []string{"scan_name", "zdim", "zuts"}, lb.Attrs.Keys)
	assert.Equal(t, "rg", lb.Attrs.At("scan_name"))

	_, err = ax.RowGrid("bad", rows, []float64{0, 1}, []float64{10, 20})
	assert.Error(t, err)
}

func TestReduce2D(t *testing.T) {
	vals := NewFloat64(2, 2, 2)
	for i := range vals.Values {
		vals.Values[i] = float64(i)
	}
	vals.Values[7] = math.NaN()
	lb, err := NewLabeled("r", vals,
		NewCoord("polar", "deg", []float64{0, 1}),
		NewCoord("angle", "deg", []float64{0, 1}),
		NewCoord("energy", "eV", []float64{0, 1}))
	require.NoError(t, err)
	red, err := lb.Reduce2D()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, red.Shp.Sizes)
	assert.Equal(t, []string{"angle", "energy"}, red.Shp.Names)
	assert.Equal(t, []float64{4, 6, 8, 3}, red.Values)
}

func TestReadGrid(t *testing.T) {
	grid, err := ReadGrid(strings.NewReader("1, 2, 3\n4,5,\n\n7,8,9\n"), Comma)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, grid.Shp.Sizes)
	assert.Equal(t, 4.0, grid.Float(1, 0))
	assert.True(t, math.IsNaN(grid.Float(1, 2)))

	_, err = ReadGrid(strings.NewReader("1,2\n3\n"), Comma)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = ReadGrid(strings.NewReader("1,x\n"), Comma)
	assert.Error(t, err)

	_, err = ReadGrid(strings.NewReader(""), Comma)
	assert.Error(t, err)

	_, err = OpenGrid("testdata/missing.csv", Comma)
	assert.Error(t, err)
}
