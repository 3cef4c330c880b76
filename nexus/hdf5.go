// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nexus

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/arpes/tensor"
	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// File is a [Record] backed by an HDF5 (NetCDF-4) file on disk.
type File struct {

	// Filename is the path the file was opened from.
	Filename string

	root api.Group

	// groups caches opened groups by path
	groups map[string]api.Group
}

// Open opens the given HDF5 file for reading as a [Record].
// The caller must Close the returned record.
func Open(filename string) (*File, error) {
	root, err := netcdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("nexus: opening %s: %w", filename, err)
	}
	slog.Debug("nexus: opened", "file", filename)
	return &File{Filename: filename, root: root, groups: map[string]api.Group{}}, nil
}

// group returns the group at the given path, descending
// one component at a time from the nearest cached parent.
func (f *File) group(p string) (api.Group, error) {
	p = Clean(p)
	if p == "" {
		return f.root, nil
	}
	if g, ok := f.groups[p]; ok {
		return g, nil
	}
	dir, name := Split(p)
	parent, err := f.group(dir)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(parent.ListSubgroups(), name) {
		return nil, notFound(p)
	}
	g, err := parent.GetGroup(name)
	if err != nil {
		return nil, fmt.Errorf("nexus: group %q: %w", p, err)
	}
	f.groups[p] = g
	return g, nil
}

func (f *File) Keys(group string) ([]string, error) {
	g, err := f.group(group)
	if err != nil {
		return nil, err
	}
	return append(g.ListSubgroups(), g.ListVariables()...), nil
}

// values returns the raw values of the dataset at the given path.
func (f *File) values(p string) (any, error) {
	dir, name := Split(p)
	g, err := f.group(dir)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(g.ListVariables(), name) {
		return nil, notFound(p)
	}
	v, err := g.GetVariable(name)
	if err != nil {
		return nil, fmt.Errorf("nexus: dataset %q: %w", p, err)
	}
	return v.Values, nil
}

func (f *File) Float64(p string) (*tensor.Float64, error) {
	vals, err := f.values(p)
	if err != nil {
		return nil, err
	}
	tsr, err := Numbers(vals)
	if err != nil {
		return nil, fmt.Errorf("%s: %q: %w", f.Filename, p, err)
	}
	return tsr, nil
}

func (f *File) Strings(p string) ([]string, error) {
	vals, err := f.values(p)
	if err != nil {
		return nil, err
	}
	strs, err := Texts(vals)
	if err != nil {
		return nil, fmt.Errorf("%s: %q: %w", f.Filename, p, err)
	}
	return strs, nil
}

// Close closes all opened groups and the file.
func (f *File) Close() error {
	for _, g := range f.groups {
		g.Close()
	}
	f.groups = nil
	if f.root != nil {
		f.root.Close()
		f.root = nil
	}
	return nil
}
