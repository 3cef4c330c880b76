// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor provides labeled n-dimensional arrays of float64 values,
// with named dimensions, per-dimension coordinate values and units,
// and an ordered set of named attributes, as produced by the data
// loaders and consumed by the display panel.
package tensor

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/keylist"
)

// ErrShapeMismatch is returned when values, coordinates,
// or dimension names do not agree with the shape of a tensor.
var ErrShapeMismatch = errors.New("shape mismatch")

// Attrs is an ordered list of named attribute values attached to
// a [Labeled] tensor, with fast lookup by name. Values are
// typically nil, float64, int, string or []string.
type Attrs = keylist.List[string, any]

// NewAttrs returns a new empty [Attrs] list.
func NewAttrs() *Attrs {
	return keylist.New[string, any]()
}

// GetAttr gets attribute value of given type.
// returns error if not present or item is a different type.
func GetAttr[T any](attrs *Attrs, key string) (T, error) {
	var z T
	x, ok := attrs.AtTry(key)
	if !ok {
		return z, fmt.Errorf("key %q not found in attributes", key)
	}
	v, ok := x.(T)
	if !ok {
		return z, fmt.Errorf("key %q has a different type than expected %T: is %T", key, z, x)
	}
	return v, nil
}

// CopyAttrs sets all of the entries of from into to, in order,
// replacing any existing values with the same key.
func CopyAttrs(to, from *Attrs) {
	for i, k := range from.Keys {
		to.Set(k, from.Values[i])
	}
}

// HistoryKey is the attribute holding the list of analysis steps
// applied after loading.
const HistoryKey = "analysis_history"

// Coord holds the coordinate values along one dimension of a [Labeled] tensor.
type Coord struct {

	// Name is the dimension name.
	Name string

	// Values has one coordinate value per index along the dimension.
	Values []float64

	// Units of the coordinate values, e.g., "deg" or "mm".
	Units string

	// Source is the record field the coordinate values were read from, if any.
	Source string
}

// NewCoord returns a new [Coord] with the given name, units and values.
func NewCoord(name, units string, vals []float64) *Coord {
	return &Coord{Name: name, Units: units, Values: vals}
}

// SetSource sets the source field and returns the coord for chaining.
func (cd *Coord) SetSource(src string) *Coord {
	cd.Source = src
	return cd
}

// IndexCoord returns a coordinate of n integer index values 0..n-1.
func IndexCoord(name, units string, n int) *Coord {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i)
	}
	return NewCoord(name, units, vals)
}

// Labeled is an n-dimensional float64 tensor with a name, coordinate
// values and units for each dimension, and ordered attributes
// (the metadata record of the source).
type Labeled struct {

	// Name is the display name.
	Name string

	// Values are the data values, whose shape names match the Coords.
	Values *Float64

	// Coords has one coordinate per dimension, in dimension order.
	Coords []*Coord

	// Attrs are the named attribute values.
	Attrs *Attrs
}

// NewLabeled returns a new [Labeled] tensor for the given values and
// coordinates, setting the shape dimension names from the coordinates.
// It returns an error wrapping [ErrShapeMismatch] if the number of
// coordinates or any coordinate length does not match the values.
func NewLabeled(name string, vals *Float64, coords ...*Coord) (*Labeled, error) {
	lb := &Labeled{Name: name, Values: vals, Coords: coords, Attrs: NewAttrs()}
	names := make([]string, len(coords))
	for i, cd := range coords {
		names[i] = cd.Name
	}
	if len(coords) == vals.NumDims() {
		vals.SetNames(names...)
	}
	if err := lb.Validate(); err != nil {
		return nil, err
	}
	return lb, nil
}

// Validate checks that there is exactly one coordinate per dimension,
// that each coordinate has one value per index, and that dimension
// names are unique and match the shape names.
func (lb *Labeled) Validate() error {
	nd := lb.Values.NumDims()
	if len(lb.Coords) != nd {
		return fmt.Errorf("tensor.Labeled %q: %d coordinates for %d dimensions: %w", lb.Name, len(lb.Coords), nd, ErrShapeMismatch)
	}
	for i, cd := range lb.Coords {
		if sz := lb.Values.DimSize(i); len(cd.Values) != sz {
			return fmt.Errorf("tensor.Labeled %q: coordinate %q has %d values for dimension of size %d: %w", lb.Name, cd.Name, len(cd.Values), sz, ErrShapeMismatch)
		}
		if lb.Values.Shp.Names[i] != cd.Name {
			return fmt.Errorf("tensor.Labeled %q: coordinate %q does not match dimension name %q: %w", lb.Name, cd.Name, lb.Values.Shp.Names[i], ErrShapeMismatch)
		}
		if slices.Index(lb.Values.Shp.Names, cd.Name) != i {
			return fmt.Errorf("tensor.Labeled %q: duplicate dimension name %q", lb.Name, cd.Name)
		}
	}
	return nil
}

// NumDims returns the total number of dimensions.
func (lb *Labeled) NumDims() int { return lb.Values.NumDims() }

// Sizes returns the sizes of each dimension.
func (lb *Labeled) Sizes() []int { return lb.Values.Shp.Sizes }

// DimNames returns the names of each dimension.
func (lb *Labeled) DimNames() []string { return lb.Values.Shp.Names }

// Dim returns the index of the given dimension name, -1 if not found.
func (lb *Labeled) Dim(name string) int { return lb.Values.Shp.DimByName(name) }

// Coord returns the coordinate for the given dimension name, nil if not found.
func (lb *Labeled) Coord(name string) *Coord {
	if d := lb.Dim(name); d >= 0 {
		return lb.Coords[d]
	}
	return nil
}

// Squeeze returns a view with the given singleton dimension removed.
// The values are shared with the receiver.
func (lb *Labeled) Squeeze(dim int) (*Labeled, error) {
	if dim < 0 || dim >= lb.NumDims() {
		return nil, fmt.Errorf("tensor.Labeled.Squeeze: dimension %d out of range", dim)
	}
	if sz := lb.Values.DimSize(dim); sz != 1 {
		return nil, fmt.Errorf("tensor.Labeled.Squeeze: dimension %q has size %d, not 1: %w", lb.Values.Shp.Names[dim], sz, ErrShapeMismatch)
	}
	sizes := slices.Delete(slices.Clone(lb.Sizes()), dim, dim+1)
	vals, err := NewFloat64Shaped(lb.Values.Values, sizes...)
	if err != nil {
		return nil, err
	}
	coords := slices.Delete(slices.Clone(lb.Coords), dim, dim+1)
	sq, err := NewLabeled(lb.Name, vals, coords...)
	if err != nil {
		return nil, err
	}
	CopyAttrs(sq.Attrs, lb.Attrs)
	return sq, nil
}

// AppendHistory appends an entry to the analysis history attribute,
// which is the only attribute modified after loading.
func (lb *Labeled) AppendHistory(entry string) {
	hist, _ := GetAttr[[]string](lb.Attrs, HistoryKey)
	lb.Attrs.Set(HistoryKey, append(slices.Clone(hist), entry))
}

// Label returns a short summary description of the tensor.
func (lb *Labeled) Label() string {
	return fmt.Sprintf("%s %s", lb.Name, lb.Values.Shp.String())
}

// String satisfies the fmt.Stringer interface.
func (lb *Labeled) String() string {
	var b strings.Builder
	b.WriteString(lb.Label())
	for _, cd := range lb.Coords {
		fmt.Fprintf(&b, "\n  %s (%s): %d values", cd.Name, cd.Units, len(cd.Values))
	}
	return b.String()
}
