// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// OpenGrid reads a 2D numeric grid from a delimited text file,
// using [ReadGrid]. The file is closed before returning.
func OpenGrid(filename string, delim Delims) (*Float64, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	tsr, err := ReadGrid(bufio.NewReader(fp), delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return tsr, nil
}

// ReadGrid reads a 2D numeric grid from delimited text,
// using the Go standard encoding/csv reader conforming
// to the official CSV standard. Each non-blank line is a row,
// and all rows must have the same number of values.
// Empty fields are read as NaN; any other field that does not
// parse as a number is an error.
func ReadGrid(r io.Reader, delim Delims) (*Float64, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim.Rune()
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("tensor.ReadGrid: no values")
	}
	rows := len(rec)
	cols := len(rec[0])
	tsr := NewFloat64(rows, cols)
	nan := math.NaN()
	for ri, row := range rec {
		if len(row) != cols {
			return nil, fmt.Errorf("tensor.ReadGrid: line %d has %d values, expected %d: %w", ri+1, len(row), cols, ErrShapeMismatch)
		}
		for ci, str := range row {
			str = strings.TrimSpace(str)
			if str == "" {
				tsr.Values[ri*cols+ci] = nan
				continue
			}
			v, err := strconv.ParseFloat(str, 64)
			if err != nil {
				return nil, fmt.Errorf("tensor.ReadGrid: line %d, value %d: %w", ri+1, ci+1, err)
			}
			tsr.Values[ri*cols+ci] = v
		}
	}
	return tsr, nil
}

// OpenVector reads all of the numeric values in a delimited text file
// as a flat 1D tensor, regardless of their row / column layout.
func OpenVector(filename string, delim Delims) (*Float64, error) {
	grid, err := OpenGrid(filename, delim)
	if err != nil {
		return nil, err
	}
	return NewFloat64FromValues(grid.Values...), nil
}
