// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"math"
	"slices"
)

// Float64 is an n-dimensional array of float64 values,
// stored in a flat Row-Major Values slice.
// Use NaN to indicate missing values.
type Float64 struct {
	Shp    Shape
	Values []float64
}

// NewFloat64 returns a new [Float64] tensor
// with the given sizes per dimension (shape).
func NewFloat64(sizes ...int) *Float64 {
	tsr := &Float64{}
	tsr.SetShape(sizes)
	return tsr
}

// NewFloat64FromValues returns a new 1-dimensional tensor
// initialized directly from the given slice values, which are not copied.
// The resulting Tensor thus "wraps" the given values.
func NewFloat64FromValues(vals ...float64) *Float64 {
	tsr := &Float64{}
	tsr.Shp.SetShape([]int{len(vals)})
	tsr.Values = vals
	return tsr
}

// NewFloat64Shaped returns a new tensor wrapping the given values
// with the given shape sizes. It returns an error if the number
// of values does not match the shape.
func NewFloat64Shaped(vals []float64, sizes ...int) (*Float64, error) {
	tsr := &Float64{}
	tsr.Shp.SetShape(sizes)
	if tsr.Len() != len(vals) {
		return nil, fmt.Errorf("tensor.NewFloat64Shaped: %d values do not fit shape %v: %w", len(vals), sizes, ErrShapeMismatch)
	}
	tsr.Values = vals
	return tsr, nil
}

// Shape returns a pointer to the shape that fully parametrizes the tensor shape
func (tsr *Float64) Shape() *Shape { return &tsr.Shp }

// Len returns the number of elements in the tensor (product of shape dimensions).
func (tsr *Float64) Len() int { return tsr.Shp.Len() }

// NumDims returns the total number of dimensions.
func (tsr *Float64) NumDims() int { return tsr.Shp.NumDims() }

// DimSize returns size of given dimension
func (tsr *Float64) DimSize(dim int) int { return tsr.Shp.DimSize(dim) }

// SetShape sets the shape params, resizing backing storage appropriately
func (tsr *Float64) SetShape(sizes []int, names ...string) {
	tsr.Shp.SetShape(sizes, names...)
	nln := tsr.Len()
	if cap(tsr.Values) >= nln {
		tsr.Values = tsr.Values[:nln]
	} else {
		tsr.Values = slices.Grow(tsr.Values, nln-len(tsr.Values))[:nln]
	}
}

// SetNames sets the dimension names of the tensor shape.
func (tsr *Float64) SetNames(names ...string) {
	tsr.Shp.Names = make([]string, tsr.NumDims())
	copy(tsr.Shp.Names, names)
}

func (tsr *Float64) Float(i ...int) float64 { return tsr.Values[tsr.Shp.Offset(i...)] }

func (tsr *Float64) SetFloat(val float64, i ...int) { tsr.Values[tsr.Shp.Offset(i...)] = val }

func (tsr *Float64) Float1D(i int) float64 { return tsr.Values[i] }

func (tsr *Float64) SetFloat1D(val float64, i int) { tsr.Values[i] = val }

// Range returns the min, max (and associated indexes, -1 = no values) for the tensor.
// NaN values are skipped.
func (tsr *Float64) Range() (min, max float64, minIndex, maxIndex int) {
	minIndex = -1
	maxIndex = -1
	for j, vl := range tsr.Values {
		if math.IsNaN(vl) {
			continue
		}
		if minIndex < 0 || vl < min {
			min = vl
			minIndex = j
		}
		if maxIndex < 0 || vl > max {
			max = vl
			maxIndex = j
		}
	}
	return
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *Float64) Clone() *Float64 {
	csr := &Float64{}
	csr.Shp.CopyShape(&tsr.Shp)
	csr.Values = slices.Clone(tsr.Values)
	return csr
}

// SubSpace returns a new tensor with innermost subspace at given
// offset(s) in outermost dimension(s) (len(offs) < NumDims).
// The new tensor points to the values of the this tensor (i.e., modifications
// will affect both), as its Values slice is a view onto the original (which
// is why only inner-most contiguous supsaces are supported).
// Use Clone() method to separate the two.
func (tsr *Float64) SubSpace(offs ...int) *Float64 {
	nd := tsr.NumDims()
	od := len(offs)
	if od >= nd {
		return nil
	}
	stsr := &Float64{}
	stsr.Shp.SetShape(tsr.Shp.Sizes[od:], tsr.Shp.Names[od:]...)
	sti := make([]int, nd)
	copy(sti, offs)
	stoff := tsr.Shp.Offset(sti...)
	sln := stsr.Len()
	stsr.Values = tsr.Values[stoff : stoff+sln]
	return stsr
}

// Column returns a copy of the values along the outermost dimension
// of a 2D tensor at the given inner index, i.e., t[:, col].
func (tsr *Float64) Column(col int) []float64 {
	nr := tsr.DimSize(0)
	vals := make([]float64, nr)
	for r := range nr {
		vals[r] = tsr.Float(r, col)
	}
	return vals
}

// Row returns a copy of the values along the inner dimension
// of a 2D tensor at the given outer index, i.e., t[row, :].
func (tsr *Float64) Row(row int) []float64 {
	return slices.Clone(tsr.SubSpace(row).Values)
}

// String satisfies the fmt.Stringer interface for a summary of the tensor.
func (tsr *Float64) String() string {
	return fmt.Sprintf("Float64: %s", tsr.Shp.String())
}
