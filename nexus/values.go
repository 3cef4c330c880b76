// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nexus

import (
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/arpes/tensor"
)

// Numbers converts the value of a dataset as returned by a file reader,
// which is a scalar or an arbitrarily nested slice of a numeric type,
// into a shaped tensor. Nested slices must be rectangular.
func Numbers(val any) (*tensor.Float64, error) {
	var sizes []int
	var vals []float64
	if err := flatten(reflect.ValueOf(val), 0, &sizes, func(v reflect.Value) error {
		f, err := toFloat(v)
		if err != nil {
			return err
		}
		vals = append(vals, f)
		return nil
	}); err != nil {
		return nil, err
	}
	tsr := &tensor.Float64{Values: vals}
	tsr.Shp.SetShape(sizes)
	if len(sizes) > 0 && tsr.Len() != len(vals) {
		return nil, fmt.Errorf("nexus: non-rectangular values: %w", tensor.ErrShapeMismatch)
	}
	return tsr, nil
}

// Texts converts the value of a dataset as returned by a file reader
// into a flat list of strings. Byte slices are treated as a single string,
// and numbers are formatted.
func Texts(val any) ([]string, error) {
	var strs []string
	var sizes []int
	err := flatten(reflect.ValueOf(val), 0, &sizes, func(v reflect.Value) error {
		if v.Kind() == reflect.String {
			strs = append(strs, v.String())
			return nil
		}
		f, err := toFloat(v)
		if err != nil {
			return err
		}
		strs = append(strs, strconv.FormatFloat(f, 'g', -1, 64))
		return nil
	})
	return strs, err
}

// flatten calls fn on each leaf value of v in row-major order,
// recording the size of each slice nesting level in sizes.
func flatten(v reflect.Value, depth int, sizes *[]int, fn func(v reflect.Value) error) error {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return fmt.Errorf("nexus: nil value")
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Invalid:
		return fmt.Errorf("nexus: invalid value")
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 && v.Kind() == reflect.Slice && depth > 0 {
			return fn(reflect.ValueOf(string(v.Bytes())))
		}
		n := v.Len()
		if len(*sizes) == depth {
			*sizes = append(*sizes, n)
		} else if (*sizes)[depth] != n {
			return fmt.Errorf("nexus: ragged values at depth %d: %d != %d: %w", depth, n, (*sizes)[depth], tensor.ErrShapeMismatch)
		}
		for i := range n {
			if err := flatten(v.Index(i), depth+1, sizes, fn); err != nil {
				return err
			}
		}
		return nil
	default:
		return fn(v)
	}
}

func toFloat(v reflect.Value) (float64, error) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("nexus: value %q is not numeric", v.String())
		}
		return f, nil
	}
	return 0, fmt.Errorf("nexus: value of type %s is not numeric", v.Type())
}

func formatValues(vals []float64) []string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strs
}
