// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package i05 loads ARPES scans recorded as Nexus (HDF5) files at the
// Diamond Light Source I05-HR beamline into labeled arrays, with the
// scan metadata as attributes.
package i05

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/arpes/nexus"
	"cogentcore.org/arpes/tensor"
	"cogentcore.org/core/base/errors"
)

var (
	// ErrWrongInstrument is returned for a file that was not
	// recorded by the I05 instrument.
	ErrWrongInstrument = errors.New("does not appear to be from the I05-HR branch")

	// ErrNotImplemented is returned for a photon energy (hv) scan.
	ErrNotImplemented = errors.New("not yet implemented")

	// ErrUnsupportedScan is returned if no scan type matches the file.
	ErrUnsupportedScan = errors.New("scan type does not seem to be supported")
)

// Load loads the given I05-HR Nexus file, with the scan metadata
// as attributes. The file is closed before returning.
func Load(filename string) (*tensor.Labeled, error) {
	rec, err := nexus.Open(filename)
	if err != nil {
		return nil, err
	}
	defer rec.Close()
	return LoadRecord(rec, filename)
}

// LoadRecord loads an array from the given record, where filename
// is used for error messages. The axes are determined by the
// first matching classification rule in [Rules], followed by the
// analyser angle and kinetic energy axes.
func LoadRecord(rec nexus.Record, filename string) (*tensor.Labeled, error) {
	inst, err := nexus.String(rec, InstrumentName)
	if err != nil || inst != Instrument {
		return nil, fmt.Errorf("i05: file %s: instrument %q: %w", filename, inst, ErrWrongInstrument)
	}
	fields, err := rec.Keys(ScanGroup)
	if err != nil {
		return nil, fmt.Errorf("i05: file %s: %w", filename, err)
	}
	data, err := rec.Float64(Data)
	if err != nil {
		return nil, fmt.Errorf("i05: file %s: %w", filename, err)
	}
	angles, err := rec.Float64(Angles)
	if err != nil {
		return nil, fmt.Errorf("i05: file %s: %w", filename, err)
	}
	rl, err := Classify(fields, data.Shp.Sizes)
	if err != nil {
		return nil, fmt.Errorf("i05: file %s: %w", filename, err)
	}
	energies, err := rec.Float64(Energies)
	if err != nil {
		return nil, fmt.Errorf("i05: file %s: %w", filename, err)
	}
	coords, err := rl.Axes(rec)
	if err != nil {
		return nil, fmt.Errorf("i05: file %s: %s axes: %w", filename, rl.Scan, err)
	}
	coords = append(coords,
		tensor.NewCoord(AxisAngle, UnitsDeg, angles.Values),
		tensor.NewCoord(AxisEnergy, UnitsEV, energies.Values))

	attrs := Extract(rec, rl.Scan)
	name, ok := attrs.At("scan_name").(string)
	if !ok {
		name = filepath.Base(filename)
	}
	arr, err := tensor.NewLabeled(name, data, coords...)
	if err != nil {
		return nil, fmt.Errorf("i05: file %s: %w", filename, err)
	}
	if rl.Squeeze {
		arr, err = arr.Squeeze(0)
		if err != nil {
			return nil, fmt.Errorf("i05: file %s: %w", filename, err)
		}
	}
	arr.Attrs = attrs
	slog.Info("i05: loaded", "file", filename, "scan", rl.Scan.String(), "shape", arr.Values.Shp.String())
	return arr, nil
}
