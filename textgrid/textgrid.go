// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textgrid loads a 2D dataset from three comma-delimited text
// files: the X coordinates, the Y coordinates, and the Z values
// at each grid point, with one row per Y value.
package textgrid

import (
	"fmt"
	"log/slog"

	"cogentcore.org/arpes/tensor"
)

// Files are the paths of the three text files of a dataset.
type Files struct {
	X string `toml:"x"`
	Y string `toml:"y"`
	Z string `toml:"z"`
}

// Load loads the given files as a 2D array with dimensions
// (axes.X, axes.Y), named name. X and Y are read as flat lists of
// values regardless of their layout, and Z as a grid of len(Y) rows
// of len(X) values, which is transposed. Empty values are NaN.
func Load(name string, files Files, axes tensor.Axes) (*tensor.Labeled, error) {
	x, err := tensor.OpenVector(files.X, tensor.Comma)
	if err != nil {
		return nil, fmt.Errorf("textgrid: %w", err)
	}
	y, err := tensor.OpenVector(files.Y, tensor.Comma)
	if err != nil {
		return nil, fmt.Errorf("textgrid: %w", err)
	}
	z, err := tensor.OpenGrid(files.Z, tensor.Comma)
	if err != nil {
		return nil, fmt.Errorf("textgrid: %w", err)
	}
	rows, cols := z.DimSize(0), z.DimSize(1)
	if rows != y.Len() || cols != x.Len() {
		return nil, fmt.Errorf("textgrid: %s: values grid is %d x %d, expected %d x %d (y by x): %w", files.Z, rows, cols, y.Len(), x.Len(), tensor.ErrShapeMismatch)
	}
	return grid(name, x.Values, y.Values, z, axes)
}

// grid returns z, which has one row per y value, as an X by Y array.
func grid(name string, x, y []float64, z *tensor.Float64, axes tensor.Axes) (*tensor.Labeled, error) {
	lb, err := axes.RowGrid(name, z, x, y)
	if err != nil {
		return nil, fmt.Errorf("textgrid: %w", err)
	}
	slog.Info("textgrid: loaded", "name", name, "shape", lb.Values.Shp.String())
	return lb, nil
}
