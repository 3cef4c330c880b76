// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"image"
	"math"

	"cogentcore.org/arpes/tensor"
	"golang.org/x/image/draw"
)

// Render returns a grayscale image of the dataset, summed down to its
// innermost two dimensions, with the first of those horizontal and
// the last (e.g., energy) increasing upward. Values are scaled from
// their minimum (black) to maximum (white). NaN values are black.
func Render(arr *tensor.Labeled) (*image.Gray, error) {
	vals, err := arr.Reduce2D()
	if err != nil {
		return nil, err
	}
	nx, ny := vals.DimSize(0), vals.DimSize(1)
	img := image.NewGray(image.Rect(0, 0, nx, ny))
	mn, mx, _, _ := vals.Range()
	scale := 0.0
	if mx > mn {
		scale = 255 / (mx - mn)
	}
	for x := range nx {
		for y := range ny {
			v := vals.Values[x*ny+y]
			if math.IsNaN(v) {
				continue
			}
			img.Pix[(ny-1-y)*img.Stride+x] = uint8(math.Round((v - mn) * scale))
		}
	}
	return img, nil
}

// Scale returns the image enlarged by the given integer factor,
// with each value repeated over a factor x factor block.
// A factor of 1 or less returns the image itself.
func Scale(img *image.Gray, factor int) *image.Gray {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(out, out.Bounds(), img, b, draw.Src, nil)
	return out
}
