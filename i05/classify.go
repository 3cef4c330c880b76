// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i05

import (
	"fmt"
	"slices"

	"cogentcore.org/arpes/nexus"
	"cogentcore.org/arpes/tensor"
)

// Rule is one scan classification rule: if Match is true for the
// names of the scan fields and the data sizes, the scan is of type Scan,
// with leading axes (before angle and energy) given by Axes.
type Rule struct {
	Scan ScanType

	Match func(fields []string, sizes []int) bool

	// Axes returns the coordinates of the leading axes of the data.
	// It is nil for a scan type that cannot be loaded.
	Axes func(rec nexus.Record) ([]*tensor.Coord, error)

	// Squeeze drops the leading singleton axis of the data.
	Squeeze bool
}

func has(fields []string, names ...string) bool {
	for _, nm := range names {
		if !slices.Contains(fields, nm) {
			return false
		}
	}
	return true
}

// hasField returns a rule match function for the given field names.
func hasField(names ...string) func(fields []string, sizes []int) bool {
	return func(fields []string, sizes []int) bool { return has(fields, names...) }
}

// Rules are the scan classification rules, in priority order:
// the first rule that matches determines the scan type.
var Rules = []Rule{
	{Scan: HVScan, Match: hasField(FieldPhotonEnergy)},
	{Scan: FSMap, Match: hasField(FieldPolar), Axes: axis(AxisPolar, UnitsDeg, ManipulatorPl)},
	{Scan: FocusScan, Match: hasField(FieldFocus), Axes: axis(AxisFocus, UnitsMM, ManipulatorFc)},
	{Scan: SpatialMap, Match: hasField(FieldX, FieldZ), Axes: spatialAxes},
	{Scan: LineScan, Match: hasField(FieldZ), Axes: axis(AxisPos, UnitsMM, ManipulatorZ)},
	{Scan: LineScan, Match: hasField(FieldX), Axes: axis(AxisPos, UnitsMM, ManipulatorX)},
	{Scan: FocusScan, Match: hasField(FieldY), Axes: axis(AxisPos3, UnitsMM, ManipulatorY)},
	{Scan: TempDep, Match: hasField(FieldTemperature), Axes: axis(AxisTemperature, UnitsKelvin, ScanTemp)},
	{Scan: Dispersion, Squeeze: true, Match: func(fields []string, sizes []int) bool {
		return len(sizes) == 3 && sizes[0] == 1
	}, Axes: func(rec nexus.Record) ([]*tensor.Coord, error) {
		return []*tensor.Coord{tensor.IndexCoord("scan", "", 1)}, nil
	}},
}

// Classify returns the first of the [Rules] matching the given scan
// field names and data sizes. It returns an error wrapping
// [ErrNotImplemented] for a photon energy scan, and [ErrUnsupportedScan]
// if no rule matches.
func Classify(fields []string, sizes []int) (*Rule, error) {
	for i := range Rules {
		rl := &Rules[i]
		if !rl.Match(fields, sizes) {
			continue
		}
		if rl.Axes == nil {
			return rl, fmt.Errorf("%s: %w", rl.Scan, ErrNotImplemented)
		}
		return rl, nil
	}
	return nil, fmt.Errorf("fields %v with data sizes %v: %w", fields, sizes, ErrUnsupportedScan)
}

// axis returns an Axes function for a single leading axis
// read from the given path.
func axis(name, units, p string) func(rec nexus.Record) ([]*tensor.Coord, error) {
	return func(rec nexus.Record) ([]*tensor.Coord, error) {
		tsr, err := rec.Float64(p)
		if err != nil {
			return nil, err
		}
		_, src := nexus.Split(p)
		return []*tensor.Coord{tensor.NewCoord(name, units, tsr.Values).SetSource(src)}, nil
	}
}

// spatialAxes returns the two spatial map axes. The slow axis is
// x if x varies along the first dimension of its grid, and z otherwise.
func spatialAxes(rec nexus.Record) ([]*tensor.Coord, error) {
	sax, err := grid(rec, ManipulatorX)
	if err != nil {
		return nil, err
	}
	saz, err := grid(rec, ManipulatorZ)
	if err != nil {
		return nil, err
	}
	if sax.Float(1, 0) != sax.Float(0, 0) {
		return []*tensor.Coord{
			tensor.NewCoord(AxisPos1, UnitsMM, sax.Column(0)).SetSource(FieldX),
			tensor.NewCoord(AxisPos2, UnitsMM, saz.Row(0)).SetSource(FieldZ),
		}, nil
	}
	return []*tensor.Coord{
		tensor.NewCoord(AxisPos1, UnitsMM, saz.Column(0)).SetSource(FieldZ),
		tensor.NewCoord(AxisPos2, UnitsMM, sax.Row(0)).SetSource(FieldX),
	}, nil
}

// grid reads a 2D position grid with at least 2 rows.
func grid(rec nexus.Record, p string) (*tensor.Float64, error) {
	tsr, err := rec.Float64(p)
	if err != nil {
		return nil, err
	}
	if tsr.NumDims() != 2 || tsr.DimSize(0) < 2 || tsr.DimSize(1) < 1 {
		return nil, fmt.Errorf("%s: spatial map grid has sizes %v: %w", p, tsr.Shp.Sizes, tensor.ErrShapeMismatch)
	}
	return tsr, nil
}
