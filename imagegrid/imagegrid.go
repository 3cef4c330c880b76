// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagegrid loads a raster image (e.g., a scanned plot) as a
// 2D dataset of inverted 8-bit luminance values, with the image rows
// counted from the bottom.
package imagegrid

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/arpes/tensor"
	"cogentcore.org/core/base/iox/imagex"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/transform"
)

// DefaultRotation is the default clockwise rotation in degrees,
// which corrects the skew of the scanned source plots.
const DefaultRotation = 0.5

type options struct {
	rotation float64
}

// Option is an option for [Load].
type Option func(o *options)

// WithRotation sets the clockwise rotation in degrees
// applied before inverting. 0 disables rotation.
func WithRotation(deg float64) Option {
	return func(o *options) { o.rotation = deg }
}

// Load loads the given image file as a 2D array of shape
// (width, height) with dimensions (axes.X, axes.Y), named by the path.
// The image is converted to luminance, rotated, and inverted (255 - v),
// and y counts rows from the bottom of the image.
func Load(path string, axes tensor.Axes, opts ...Option) (*tensor.Labeled, error) {
	o := options{rotation: DefaultRotation}
	for _, opt := range opts {
		opt(&o)
	}
	img, _, err := imagex.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imagegrid: %s: %w", path, err)
	}
	proc := Process(img, o.rotation)
	b := proc.Bounds()
	w, h := b.Dx(), b.Dy()
	vals := tensor.NewFloat64(w, h)
	for x := range w {
		for y := range h {
			vals.Values[x*h+y] = float64(proc.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
		}
	}
	lb, err := axes.Grid(path, vals, index(w), index(h))
	if err != nil {
		return nil, fmt.Errorf("imagegrid: %s: %w", path, err)
	}
	slog.Info("imagegrid: loaded", "file", path, "shape", vals.Shp.String())
	return lb, nil
}

// Process returns the given image converted to luminance,
// rotated clockwise by the given degrees about its center, inverted,
// and flipped vertically. Areas rotated in from outside the image are 255.
func Process(img image.Image, rotation float64) *image.Gray {
	gray := Gray(img)
	if rotation != 0 {
		gray = Gray(transform.Rotate(gray, rotation, &transform.RotationOptions{}))
	}
	return Gray(transform.FlipV(effect.Invert(gray)))
}

// Gray returns the image as 8-bit luminance:
// if it already is one, then it returns that image directly.
func Gray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := range b.Dy() {
		for x := range b.Dx() {
			g.SetGray(x, y, color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray))
		}
	}
	return g
}

// index returns the pixel indexes 0..n-1.
func index(n int) []float64 {
	idx := make([]float64, n)
	for i := range idx {
		idx[i] = float64(i)
	}
	return idx
}
