// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
	"strings"
)

// Shape manages a tensor's shape information, including sizes and names
// of each dimension, and strides for computing the 1D offset of an
// n-dimensional index. Per C / Go / Python conventions, indexes are
// Row-Major, ordered from outer to inner left-to-right, so the
// inner-most is right-most.
type Shape struct {

	// Sizes is the size of each dimension.
	Sizes []int

	// Names are optional names for each dimension.
	Names []string

	// Strides are the offset increments for each dimension.
	Strides []int
}

// NewShape returns a new shape with given sizes and optional dimension names.
func NewShape(sizes []int, names ...string) *Shape {
	sh := &Shape{}
	sh.SetShape(sizes, names...)
	return sh
}

// SetShape sets the shape size and optional names.
// Names beyond the number of sizes are ignored,
// and missing names are left empty.
func (sh *Shape) SetShape(sizes []int, names ...string) {
	sh.Sizes = slices.Clone(sizes)
	sh.Names = make([]string, len(sizes))
	copy(sh.Names, names)
	sh.Strides = RowMajorStrides(sh.Sizes...)
}

// CopyShape copies the shape parameters from another Shape struct.
// Copies the data so it is not accidentally subject to updates.
func (sh *Shape) CopyShape(cp *Shape) {
	sh.Sizes = slices.Clone(cp.Sizes)
	sh.Names = slices.Clone(cp.Names)
	sh.Strides = slices.Clone(cp.Strides)
}

// Len returns the total length of elements in the tensor
// (i.e., the product of the shape sizes).
func (sh *Shape) Len() int {
	if len(sh.Sizes) == 0 {
		return 0
	}
	ln := 1
	for _, v := range sh.Sizes {
		ln *= v
	}
	return ln
}

// NumDims returns the total number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of given dimension.
func (sh *Shape) DimSize(i int) int { return sh.Sizes[i] }

// DimName returns the name of given dimension.
func (sh *Shape) DimName(i int) string { return sh.Names[i] }

// DimByName returns the index of the given dimension name.
// returns -1 if not found.
func (sh *Shape) DimByName(name string) int {
	return slices.Index(sh.Names, name)
}

// IsEqual returns true if this shape is same as other (does not compare names)
func (sh *Shape) IsEqual(oth *Shape) bool {
	return slices.Equal(sh.Sizes, oth.Sizes)
}

// Offset returns the "flat" 1D array index into an element at the given n-dimensional index.
// No checking is done on the length or size of the index values relative to the shape of the tensor.
func (sh *Shape) Offset(index ...int) int {
	var offset int
	for i, v := range index {
		offset += v * sh.Strides[i]
	}
	return offset
}

// Index returns the n-dimensional index from a "flat" 1D array index.
func (sh *Shape) Index(offset int) []int {
	nd := len(sh.Sizes)
	index := make([]int, nd)
	rem := offset
	for i := nd - 1; i >= 0; i-- {
		s := sh.Sizes[i]
		if s == 0 {
			return index
		}
		iv := rem % s
		rem /= s
		index[i] = iv
	}
	return index
}

// RowMajorStrides returns strides for sizes where the first dimension is outermost
// and subsequent dimensions are progressively inner.
func RowMajorStrides(sizes ...int) []int {
	rem := int(1)
	for _, v := range sizes {
		rem *= v
	}

	if rem == 0 {
		strides := make([]int, len(sizes))
		for i := range strides {
			strides[i] = rem
		}
		return strides
	}

	strides := make([]int, len(sizes))
	for i, v := range sizes {
		rem /= v
		strides[i] = rem
	}
	return strides
}

// String satisfies the fmt.Stringer interface
func (sh *Shape) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, sz := range sh.Sizes {
		if i > 0 {
			b.WriteString(", ")
		}
		if nm := sh.Names[i]; nm != "" {
			b.WriteString(nm)
			b.WriteString(": ")
		}
		fmt.Fprintf(&b, "%d", sz)
	}
	b.WriteString("]")
	return b.String()
}
