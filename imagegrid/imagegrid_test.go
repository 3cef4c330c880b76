// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagegrid

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/arpes/tensor"
	"cogentcore.org/core/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAxes = tensor.Axes{
	X: tensor.Axis{Name: "k", Units: "1/A"},
	Y: tensor.Axis{Name: "E", Units: "eV"},
	Z: tensor.Axis{Name: "Intensity", Units: "arb"},
}

func TestLoadNoRotation(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 3))
	for y := range 3 {
		for x := range 4 {
			img.SetGray(x, y, color.Gray{uint8(10*x + 50*y)})
		}
	}
	fn := filepath.Join(t.TempDir(), "plot.png")
	require.NoError(t, imagex.Save(img, fn))

	arr, err := Load(fn, testAxes, WithRotation(0))
	require.NoError(t, err)
	assert.Equal(t, fn, arr.Name)
	assert.Equal(t, []int{4, 3}, arr.Sizes())
	assert.Equal(t, []string{"k", "E"}, arr.DimNames())
	assert.Equal(t, []float64{0, 1, 2, 3}, arr.Coord("k").Values)
	assert.Equal(t, []float64{0, 1, 2}, arr.Coord("E").Values)
	assert.Equal(t, "1/A", arr.Coord("k").Units)
	for x := range 4 {
		for y := range 3 {
			// y = 0 is the bottom row of the image
			assert.Equal(t, float64(255-(10*x+50*(2-y))), arr.Values.Float(x, y))
		}
	}
	assert.Equal(t, fn, arr.Attrs.At("scan_name"))
	assert.Equal(t, "Intensity", arr.Attrs.At("zdim"))
	assert.Equal(t, "arb", arr.Attrs.At("zuts"))
}

func TestLoadColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	fn := filepath.Join(t.TempDir(), "red.bmp")
	require.NoError(t, imagex.Save(img, fn))
	arr, err := Load(fn, testAxes, WithRotation(0))
	require.NoError(t, err)
	for _, v := range arr.Values.Values {
		assert.Equal(t, 179.0, v)
	}
}

func TestLoadRotation(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	for i := range img.Pix {
		img.Pix[i] = 100
	}
	fn := filepath.Join(t.TempDir(), "uniform.png")
	require.NoError(t, imagex.Save(img, fn))
	arr, err := Load(fn, testAxes)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 20}, arr.Sizes())
	for x := 5; x < 15; x++ {
		for y := 5; y < 15; y++ {
			assert.InDelta(t, 155, arr.Values.Float(x, y), 1)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.png"), testAxes)
	assert.Error(t, err)

	fn := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(fn, []byte("not an image"), 0666))
	_, err = Load(fn, testAxes)
	assert.Error(t, err)
}
