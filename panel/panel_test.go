// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"cogentcore.org/arpes/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection(t *testing.T) {
	sl := NewSelection(3)
	assert.Equal(t, 0, sl.Index())
	assert.Equal(t, 2, sl.Prev())
	assert.Equal(t, 0, sl.Next())
	assert.Equal(t, 1, sl.Next())
	assert.Equal(t, 2, sl.Next())
	assert.Equal(t, 0, sl.Next())
	assert.Equal(t, 1, sl.Set(4))
	assert.Equal(t, 2, sl.Set(-1))

	sl.SetLen(2)
	assert.Equal(t, 1, sl.Index())
	sl.SetLen(5)
	assert.Equal(t, 1, sl.Index())

	var empty Selection
	assert.Equal(t, -1, empty.Index())
	assert.Equal(t, -1, empty.Next())
	assert.Equal(t, -1, empty.Prev())
	empty.SetLen(1)
	assert.Equal(t, 0, empty.Index())
	assert.Equal(t, 0, empty.Next())
}

func testArray(t *testing.T) *tensor.Labeled {
	vals, err := tensor.NewFloat64Shaped([]float64{0, 1, 2, 3, 4, math.NaN()}, 3, 2)
	require.NoError(t, err)
	arr, err := tensor.NewLabeled("i05-1", vals,
		tensor.NewCoord("angle", "deg", []float64{-1, 0, 1}),
		tensor.NewCoord("energy", "eV", []float64{16.5, 16.6}))
	require.NoError(t, err)
	arr.Attrs.Set("scan_type", "dispersion")
	arr.Attrs.Set("x3", nil)
	return arr
}

func TestRender(t *testing.T) {
	img, err := Render(testArray(t))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	// energy index 0 is the bottom row
	assert.Equal(t, uint8(0), img.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(64), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(2, 1).Y)
	assert.Equal(t, uint8(0), img.GrayAt(2, 0).Y)

	flat, err := tensor.NewLabeled("flat", tensor.NewFloat64(2, 2),
		tensor.NewCoord("a", "", []float64{0, 1}), tensor.NewCoord("b", "", []float64{0, 1}))
	require.NoError(t, err)
	img, err = Render(flat)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 0}, img.Pix)

	big := Scale(img, 3)
	assert.Equal(t, 6, big.Bounds().Dx())
	assert.Equal(t, 6, big.Bounds().Dy())
	assert.Same(t, img, Scale(img, 1))

	line, err := tensor.NewLabeled("line", tensor.NewFloat64(2), tensor.NewCoord("a", "", []float64{0, 1}))
	require.NoError(t, err)
	_, err = Render(line)
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	sm := Summary(testArray(t))
	lines := strings.Split(sm, "\n")
	assert.Equal(t, "i05-1 [angle: 3, energy: 2]", lines[0])
	assert.Equal(t, "angle: -1 .. 1 deg (3)", lines[1])
	assert.Equal(t, "energy: 16.5 .. 16.6 eV (2)", lines[2])
	assert.Equal(t, "  scan_type: dispersion", lines[3])
	assert.Equal(t, "  x3: -", lines[4])

	var b bytes.Buffer
	pr := &Printer{W: &b}
	var dp Displayer = pr
	require.NoError(t, dp.Display([]*tensor.Labeled{testArray(t), testArray(t)}))
	assert.Equal(t, sm+"\n"+sm, b.String())
	assert.Equal(t, []string{"i05-1"}, Names([]*tensor.Labeled{testArray(t)}))
}
