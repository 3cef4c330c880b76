// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

// Axis is the name and units of one axis of a gridded dataset.
type Axis struct {
	Name  string `toml:"name"`
	Units string `toml:"units"`
}

// Axes are the axes of a 2D gridded dataset, where
// Z is the value at each X, Y grid point.
type Axes struct {
	X Axis `toml:"x"`
	Y Axis `toml:"y"`
	Z Axis `toml:"z"`
}

// Grid returns a new 2D [Labeled] tensor with dimensions X, Y for the
// given values and coordinates, with attributes scan_name, zdim and zuts.
func (ax *Axes) Grid(name string, vals *Float64, x, y []float64) (*Labeled, error) {
	lb, err := NewLabeled(name, vals, NewCoord(ax.X.Name, ax.X.Units, x), NewCoord(ax.Y.Name, ax.Y.Units, y))
	if err != nil {
		return nil, err
	}
	ax.SetAttrs(lb)
	return lb, nil
}

// RowGrid returns a new 2D [Labeled] tensor with dimensions X, Y for
// values stored as one row per Y value, with the attributes of [Axes.Grid].
func (ax *Axes) RowGrid(name string, rows *Float64, x, y []float64) (*Labeled, error) {
	lb, err := NewLabeled(name, rows, NewCoord(ax.Y.Name, ax.Y.Units, y), NewCoord(ax.X.Name, ax.X.Units, x))
	if err != nil {
		return nil, err
	}
	tr, err := lb.Transpose2D()
	if err != nil {
		return nil, err
	}
	ax.SetAttrs(tr)
	return tr, nil
}

// SetAttrs sets the scan_name, zdim and zuts attributes of lb.
func (ax *Axes) SetAttrs(lb *Labeled) {
	lb.Attrs.Set("scan_name", lb.Name)
	lb.Attrs.Set("zdim", ax.Z.Name)
	lb.Attrs.Set("zuts", ax.Z.Units)
}
