// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nexus

import (
	"slices"
	"strings"

	"cogentcore.org/arpes/tensor"
)

// Memory is an in-memory [Record], used for constructing records
// directly in code (e.g., for tests and synthetic data).
// Groups are created implicitly by the paths of their datasets.
type Memory struct {
	// paths of all groups and datasets, in order of creation
	paths []string

	numbers map[string]*tensor.Float64
	strings map[string][]string
}

// NewMemory returns a new empty [Memory] record.
func NewMemory() *Memory {
	return &Memory{numbers: map[string]*tensor.Float64{}, strings: map[string][]string{}}
}

func (mr *Memory) add(p string) {
	comps := Components(p)
	for i := range comps {
		sub := strings.Join(comps[:i+1], "/")
		if !slices.Contains(mr.paths, sub) {
			mr.paths = append(mr.paths, sub)
		}
	}
}

// AddGroup adds an (empty) group at the given path.
func (mr *Memory) AddGroup(p string) *Memory {
	mr.add(p)
	return mr
}

// SetFloat64 sets the numeric dataset at the given path to the given
// values with the given shape sizes. With no sizes, the values are 1D.
// It panics if the number of values does not fit the shape.
func (mr *Memory) SetFloat64(p string, vals []float64, sizes ...int) *Memory {
	p = Clean(p)
	var tsr *tensor.Float64
	if len(sizes) == 0 {
		tsr = tensor.NewFloat64FromValues(vals...)
	} else {
		var err error
		tsr, err = tensor.NewFloat64Shaped(vals, sizes...)
		if err != nil {
			panic(err)
		}
	}
	mr.add(p)
	mr.numbers[p] = tsr
	delete(mr.strings, p)
	return mr
}

// SetScalar sets a 0-dimensional numeric dataset at the given path.
func (mr *Memory) SetScalar(p string, val float64) *Memory {
	p = Clean(p)
	tsr := &tensor.Float64{Values: []float64{val}}
	tsr.Shp.SetShape(nil)
	mr.add(p)
	mr.numbers[p] = tsr
	delete(mr.strings, p)
	return mr
}

// SetStrings sets the string dataset at the given path.
func (mr *Memory) SetStrings(p string, vals ...string) *Memory {
	p = Clean(p)
	mr.add(p)
	mr.strings[p] = vals
	delete(mr.numbers, p)
	return mr
}

func (mr *Memory) Keys(group string) ([]string, error) {
	group = Clean(group)
	if group != "" && !slices.Contains(mr.paths, group) {
		return nil, notFound(group)
	}
	if _, ok := mr.numbers[group]; ok {
		return nil, notFound(group)
	}
	if _, ok := mr.strings[group]; ok {
		return nil, notFound(group)
	}
	var keys []string
	for _, p := range mr.paths {
		dir, name := Split(p)
		if dir == group {
			keys = append(keys, name)
		}
	}
	return keys, nil
}

func (mr *Memory) Float64(p string) (*tensor.Float64, error) {
	tsr, ok := mr.numbers[Clean(p)]
	if !ok {
		return nil, notFound(p)
	}
	return tsr.Clone(), nil
}

func (mr *Memory) Strings(p string) ([]string, error) {
	p = Clean(p)
	if strs, ok := mr.strings[p]; ok {
		return slices.Clone(strs), nil
	}
	if tsr, ok := mr.numbers[p]; ok {
		return formatValues(tsr.Values), nil
	}
	return nil, notFound(p)
}

func (mr *Memory) Close() error { return nil }
