// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nexus provides typed, read-only access to hierarchical
// instrument records such as NeXus (HDF5) files, where named groups
// contain other groups and datasets addressed by slash-separated paths
// (e.g., "entry1/instrument/analyser/data").
package nexus

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"cogentcore.org/arpes/tensor"
	"cogentcore.org/core/base/errors"
)

// ErrNotFound is returned when there is no group or dataset at a path.
var ErrNotFound = errors.New("not found")

// Record is read-only hierarchical access to a structured data file.
// Paths are slash-separated and relative to the root group.
type Record interface {

	// Keys returns the names of the groups and datasets in the group
	// at the given path ("" for the root).
	Keys(group string) ([]string, error)

	// Float64 returns the numeric values of the dataset at the given path,
	// shaped as stored. A scalar dataset has a 0-dimensional shape with one value.
	Float64(path string) (*tensor.Float64, error)

	// Strings returns the values of the dataset at the given path as
	// a flat list of strings. Numeric values are formatted.
	Strings(path string) ([]string, error)

	// Close releases any resources held by the record.
	Close() error
}

// Has returns whether the given path names a group or dataset in the record.
func Has(rec Record, p string) bool {
	dir, name := Split(p)
	keys, err := rec.Keys(dir)
	if err != nil {
		return false
	}
	return slices.Contains(keys, name)
}

// Scalar returns the first numeric value of the dataset at the given path.
func Scalar(rec Record, p string) (float64, error) {
	tsr, err := rec.Float64(p)
	if err != nil {
		return 0, err
	}
	if len(tsr.Values) == 0 {
		return 0, fmt.Errorf("nexus: %s is empty", p)
	}
	return tsr.Values[0], nil
}

// String returns the first string value of the dataset at the given path.
func String(rec Record, p string) (string, error) {
	strs, err := rec.Strings(p)
	if err != nil {
		return "", err
	}
	if len(strs) == 0 {
		return "", fmt.Errorf("nexus: %s is empty", p)
	}
	return strs[0], nil
}

// Len returns the number of entries along the outermost dimension
// of the dataset at the given path, with 1 for a scalar.
func Len(rec Record, p string) (int, error) {
	if tsr, err := rec.Float64(p); err == nil {
		if tsr.NumDims() == 0 {
			return 1, nil
		}
		return tsr.DimSize(0), nil
	}
	strs, err := rec.Strings(p)
	if err != nil {
		return 0, err
	}
	return len(strs), nil
}

// Split splits a path into its parent group path and final name.
func Split(p string) (dir, name string) {
	p = Clean(p)
	dir, name = path.Split(p)
	return strings.TrimSuffix(dir, "/"), name
}

// Clean returns a canonical path with no leading, trailing
// or repeated slashes.
func Clean(p string) string {
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// Components returns the group names along the given path.
func Components(p string) []string {
	p = Clean(p)
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// notFound returns an [ErrNotFound] error for the given path.
func notFound(p string) error {
	return fmt.Errorf("nexus: %q: %w", p, ErrNotFound)
}
