// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nexus

import (
	"fmt"
	"log/slog"

	"github.com/scigolib/hdf5"
)

// WriteHDF5 writes the record to a new HDF5 file, replacing any
// existing file, so that it can be read back with [Open].
// Scalar datasets are written with a single dimension of size 1,
// and string datasets as fixed-length strings.
func (mr *Memory) WriteHDF5(filename string) error {
	fw, err := hdf5.CreateForWrite(filename, hdf5.CreateTruncate)
	if err != nil {
		return fmt.Errorf("nexus: creating %s: %w", filename, err)
	}
	defer fw.Close()
	for _, p := range mr.paths {
		if err := mr.writeHDF5(fw, p); err != nil {
			return fmt.Errorf("nexus: writing %s: %q: %w", filename, p, err)
		}
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("nexus: closing %s: %w", filename, err)
	}
	slog.Debug("nexus: wrote", "file", filename, "objects", len(mr.paths))
	return nil
}

// writeHDF5 writes the group or dataset at the given path.
// Parent groups must already be written.
func (mr *Memory) writeHDF5(fw *hdf5.FileWriter, p string) error {
	name := "/" + p
	if tsr, ok := mr.numbers[p]; ok {
		dims := []uint64{1}
		if tsr.NumDims() > 0 {
			dims = make([]uint64, tsr.NumDims())
			for i, sz := range tsr.Shp.Sizes {
				dims[i] = uint64(sz)
			}
		}
		ds, err := fw.CreateDataset(name, hdf5.Float64, dims)
		if err != nil {
			return err
		}
		return ds.Write(tsr.Values)
	}
	if strs, ok := mr.strings[p]; ok {
		size := 1
		for _, s := range strs {
			size = max(size, len(s))
		}
		ds, err := fw.CreateDataset(name, hdf5.String, []uint64{uint64(len(strs))}, hdf5.WithStringSize(uint32(size)))
		if err != nil {
			return err
		}
		return ds.Write(strs)
	}
	_, err := fw.CreateGroup(name)
	return err
}
