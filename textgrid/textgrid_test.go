// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textgrid

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/arpes/tensor"
	"cogentcore.org/core/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAxes = tensor.Axes{
	X: tensor.Axis{Name: "BE", Units: "eV"},
	Y: tensor.Axis{Name: "hv", Units: "eV"},
	Z: tensor.Axis{Name: "Intensity", Units: "counts"},
}

func writeFiles(t *testing.T, x, y, z string) Files {
	dir := t.TempDir()
	fs := Files{X: filepath.Join(dir, "x.txt"), Y: filepath.Join(dir, "y.txt"), Z: filepath.Join(dir, "z.txt")}
	require.NoError(t, os.WriteFile(fs.X, []byte(x), 0666))
	require.NoError(t, os.WriteFile(fs.Y, []byte(y), 0666))
	require.NoError(t, os.WriteFile(fs.Z, []byte(z), 0666))
	return fs
}

func TestLoad(t *testing.T) {
	fs := writeFiles(t, "-1,0,1\n", "10\n20\n30\n40\n",
		"1,2,3\n4,5,6\n7,8,9\n10,11,\n")
	arr, err := Load("Map_or", fs, testAxes)
	require.NoError(t, err)
	assert.Equal(t, "Map_or", arr.Name)
	assert.Equal(t, []int{3, 4}, arr.Sizes())
	assert.Equal(t, []string{"BE", "hv"}, arr.DimNames())
	assert.Equal(t, []float64{-1, 0, 1}, arr.Coord("BE").Values)
	assert.Equal(t, []float64{10, 20, 30, 40}, arr.Coord("hv").Values)
	assert.Equal(t, "eV", arr.Coord("hv").Units)

	// value at (x, y) is row y, column x of z
	assert.Equal(t, 1.0, arr.Values.Float(0, 0))
	assert.Equal(t, 4.0, arr.Values.Float(0, 1))
	assert.Equal(t, 8.0, arr.Values.Float(1, 2))
	assert.Equal(t, 11.0, arr.Values.Float(1, 3))
	assert.True(t, math.IsNaN(arr.Values.Float(2, 3)))

	rows, err := arr.Transpose2D()
	require.NoError(t, err)
	assert.Equal(t, []string{"hv", "BE"}, rows.DimNames())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, rows.Values.Values[:11])

	assert.Equal(t, []string{"scan_name", "zdim", "zuts"}, arr.Attrs.Keys)
	assert.Equal(t, "Map_or", arr.Attrs.At("scan_name"))
	assert.Equal(t, "Intensity", arr.Attrs.At("zdim"))
	assert.Equal(t, "counts", arr.Attrs.At("zuts"))
}

func TestLoadErrors(t *testing.T) {
	fs := writeFiles(t, "-1,0,1\n", "10,20\n", "1,2,3\n4,5,6\n7,8,9\n")
	_, err := Load("bad", fs, testAxes)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

	fs = writeFiles(t, "-1,0,1\n", "10,20\n", "1,2\n3,4\n")
	_, err = Load("bad", fs, testAxes)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

	fs = writeFiles(t, "-1,0,1\n", "10,20\n", "1,2,3\n4,5\n")
	_, err = Load("ragged", fs, testAxes)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

	fs = writeFiles(t, "a,b\n", "10\n", "1,2\n")
	_, err = Load("text", fs, testAxes)
	assert.Error(t, err)

	fs.X = filepath.Join(t.TempDir(), "missing.txt")
	_, err = Load("missing", fs, testAxes)
	assert.Error(t, err)
}
