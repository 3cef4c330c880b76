// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Dims is the gonum/mat.Matrix interface method for returning the dimensionality of the
// 2D Matrix.  Assumes Row-major ordering and logs an error if NumDims < 2.
func (tsr *Float64) Dims() (r, c int) {
	nd := tsr.NumDims()
	if nd < 2 {
		slog.Error("tensor Dims gonum Matrix call made on Tensor with dims < 2")
		return 0, 0
	}
	return tsr.Shp.DimSize(nd - 2), tsr.Shp.DimSize(nd - 1)
}

// At is the gonum/mat.Matrix interface method for returning 2D matrix element at given
// row, column index.  Assumes Row-major ordering and uses the innermost two dimensions.
func (tsr *Float64) At(i, j int) float64 {
	_, nc := tsr.Dims()
	return tsr.Values[i*nc+j]
}

// T is the gonum/mat.Matrix transpose method.
// It performs an implicit transpose by returning the receiver inside a Transpose.
func (tsr *Float64) T() mat.Matrix {
	return mat.Transpose{Matrix: tsr}
}

// Dense returns a gonum mat.Dense copy of a 2D tensor.
func (tsr *Float64) Dense() (*mat.Dense, error) {
	if tsr.NumDims() != 2 {
		return nil, fmt.Errorf("tensor.Dense: tensor must be 2D, has %d dims", tsr.NumDims())
	}
	r, c := tsr.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("tensor.Dense: tensor has zero size %v", tsr.Shp.Sizes)
	}
	return mat.NewDense(r, c, slices.Clone(tsr.Values)), nil
}

// CopyDense returns a new 2D tensor with values copied from
// a gonum mat.Matrix.
func CopyDense(m mat.Matrix) *Float64 {
	nr, nc := m.Dims()
	tsr := NewFloat64(nr, nc)
	idx := 0
	for ri := range nr {
		for ci := range nc {
			tsr.Values[idx] = m.At(ri, ci)
			idx++
		}
	}
	return tsr
}

// Transpose2D returns a new 2D tensor with the two dimensions
// (and their coordinates) swapped. Attributes are copied.
func (lb *Labeled) Transpose2D() (*Labeled, error) {
	dm, err := lb.Values.Dense()
	if err != nil {
		return nil, err
	}
	vals := CopyDense(dm.T())
	tr, err := NewLabeled(lb.Name, vals, lb.Coords[1], lb.Coords[0])
	if err != nil {
		return nil, err
	}
	CopyAttrs(tr.Attrs, lb.Attrs)
	return tr, nil
}

// Reduce2D returns a 2D tensor of the innermost two dimensions,
// summing over all outer dimensions. NaN values are skipped.
// A 2D tensor is returned as-is.
func (lb *Labeled) Reduce2D() (*Float64, error) {
	nd := lb.NumDims()
	if nd < 2 {
		return nil, fmt.Errorf("tensor.Reduce2D: %q has %d dims, needs at least 2", lb.Name, nd)
	}
	if nd == 2 {
		return lb.Values, nil
	}
	sizes := lb.Sizes()
	out := NewFloat64(sizes[nd-2], sizes[nd-1])
	out.SetNames(lb.DimNames()[nd-2:]...)
	cells := out.Len()
	outer := lb.Values.Len() / cells
	for o := range outer {
		sub := lb.Values.Values[o*cells : (o+1)*cells]
		for i, v := range sub {
			if math.IsNaN(v) {
				continue
			}
			out.Values[i] += v
		}
	}
	return out, nil
}
