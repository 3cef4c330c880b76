// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panel provides the display logic for browsing a list of
// loaded datasets: a circular selection over the list, rendering of
// a dataset as a grayscale image, and a text summary of its axes and
// attributes. A GUI implementation of [Displayer] is in panelcore.
package panel

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/arpes/tensor"
)

// Displayer shows a list of datasets for interactive inspection.
type Displayer interface {

	// Display shows the given datasets, blocking until the
	// display is closed.
	Display(arrays []*tensor.Labeled) error
}

// Selection is a selected index into a list of n items, which wraps
// around at both ends of the list. The zero value is an empty list.
type Selection struct {
	n     int
	index int
}

// NewSelection returns a new selection over n items, with the first selected.
func NewSelection(n int) *Selection {
	sl := &Selection{}
	sl.SetLen(n)
	return sl
}

// Len returns the number of items.
func (sl *Selection) Len() int { return sl.n }

// SetLen sets the number of items, keeping the selected index
// if it is still valid, and otherwise selecting the last item.
func (sl *Selection) SetLen(n int) {
	sl.n = max(n, 0)
	if sl.index >= sl.n {
		sl.index = sl.n - 1
	}
	if sl.index < 0 {
		sl.index = 0
	}
}

// Index returns the selected index, or -1 if there are no items.
func (sl *Selection) Index() int {
	if sl.n == 0 {
		return -1
	}
	return sl.index
}

// Set selects the given index, wrapping around modulo the length,
// and returns the selected index.
func (sl *Selection) Set(i int) int {
	if sl.n == 0 {
		return -1
	}
	sl.index = ((i % sl.n) + sl.n) % sl.n
	return sl.index
}

// Next selects the next item, going to the first after the last.
func (sl *Selection) Next() int { return sl.Set(sl.index + 1) }

// Prev selects the previous item, going to the last before the first.
func (sl *Selection) Prev() int { return sl.Set(sl.index - 1) }

// Names returns the names of the given datasets.
func Names(arrays []*tensor.Labeled) []string {
	names := make([]string, len(arrays))
	for i, arr := range arrays {
		names[i] = arr.Name
	}
	return names
}

// Summary returns a multi-line description of the dataset:
// its name and shape, the range and units of each axis,
// and its attributes in order.
func Summary(arr *tensor.Labeled) string {
	var b strings.Builder
	b.WriteString(arr.Label())
	b.WriteString("\n")
	for _, cd := range arr.Coords {
		fmt.Fprintf(&b, "%s:", cd.Name)
		if n := len(cd.Values); n > 0 {
			fmt.Fprintf(&b, " %g .. %g", cd.Values[0], cd.Values[n-1])
		}
		if cd.Units != "" {
			fmt.Fprintf(&b, " %s", cd.Units)
		}
		fmt.Fprintf(&b, " (%d)\n", len(cd.Values))
	}
	if arr.Attrs == nil {
		return b.String()
	}
	for i, k := range arr.Attrs.Keys {
		v := arr.Attrs.Values[i]
		if v == nil {
			fmt.Fprintf(&b, "  %s: -\n", k)
			continue
		}
		fmt.Fprintf(&b, "  %s: %v\n", k, v)
	}
	return b.String()
}

// Printer is a [Displayer] that writes the [Summary] of each dataset.
type Printer struct {
	W io.Writer
}

func (pr *Printer) Display(arrays []*tensor.Labeled) error {
	for i, arr := range arrays {
		if i > 0 {
			if _, err := io.WriteString(pr.W, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(pr.W, Summary(arr)); err != nil {
			return err
		}
	}
	return nil
}
