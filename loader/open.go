// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"fmt"
	"runtime"

	"cogentcore.org/arpes/i05"
	"cogentcore.org/arpes/imagegrid"
	"cogentcore.org/arpes/tensor"
	"golang.org/x/sync/errgroup"
)

// ImageAxes are the axes of images opened by [Open].
var ImageAxes = tensor.Axes{
	X: tensor.Axis{Name: "x", Units: "pix"},
	Y: tensor.Axis{Name: "y", Units: "pix"},
	Z: tensor.Axis{Name: "z", Units: "bytes"},
}

// Open loads the given file with the loader for its detected kind.
// Nexus files are loaded with [i05.Load], and images with
// [imagegrid.Load] using [ImageAxes]. Text files must be loaded
// as a triplet with a [Session].
func Open(filename string) (*tensor.Labeled, error) {
	kind, err := Detect(filename)
	if err != nil {
		return nil, err
	}
	switch kind {
	case Nexus:
		return i05.Load(filename)
	case Image:
		return imagegrid.Load(filename, ImageAxes)
	}
	return nil, fmt.Errorf("loader: %s is %s, which needs x, y and z files listed in a session: %w", filename, kind, ErrUnknownFormat)
}

// OpenAll loads all of the given files with [Open], in parallel.
// The datasets are returned in the order of the files. If any file
// fails to load, the error of the first such file in that order
// is returned, so the result does not depend on scheduling.
func OpenAll(filenames ...string) ([]*tensor.Labeled, error) {
	arrs := make([]*tensor.Labeled, len(filenames))
	errs := make([]error, len(filenames))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, fn := range filenames {
		g.Go(func() error {
			arrs[i], errs[i] = Open(fn)
			return nil
		})
	}
	g.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return arrs, nil
}
