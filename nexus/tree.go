// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nexus

import (
	"fmt"
	"io"
	"strings"

	"github.com/scigolib/hdf5"
)

// Kinds of [Entry].
const (
	KindGroup   = "group"
	KindDataset = "dataset"
	KindOther   = "other"
)

// Entry is one object in the structure of an HDF5 file.
type Entry struct {

	// Path is the full slash-separated path of the object.
	Path string

	// Kind is one of [KindGroup], [KindDataset], or [KindOther].
	Kind string

	// Children are the names of the direct children of a group.
	Children []string
}

// Depth returns the nesting depth of the entry, with 0 for the root group.
func (en *Entry) Depth() int {
	return len(Components(en.Path))
}

// Tree returns all of the objects in the given HDF5 file,
// in walk order, starting with the root group.
func Tree(filename string) ([]Entry, error) {
	file, err := hdf5.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("nexus: opening %s: %w", filename, err)
	}
	defer file.Close()

	var ents []Entry
	file.Walk(func(p string, obj hdf5.Object) {
		en := Entry{Path: Clean(p)}
		switch v := obj.(type) {
		case *hdf5.Group:
			en.Kind = KindGroup
			for _, ch := range v.Children() {
				en.Children = append(en.Children, ch.Name())
			}
		case *hdf5.Dataset:
			en.Kind = KindDataset
		default:
			en.Kind = KindOther
		}
		ents = append(ents, en)
	})
	return ents, nil
}

// WriteTree writes an indented listing of the given entries.
func WriteTree(w io.Writer, ents []Entry) error {
	for _, en := range ents {
		name := en.Path
		if name == "" {
			name = "/"
		} else {
			_, name = Split(en.Path)
		}
		indent := strings.Repeat("  ", en.Depth())
		var err error
		if en.Kind == KindGroup {
			_, err = fmt.Fprintf(w, "%s%s/ (%d)\n", indent, name, len(en.Children))
		} else {
			_, err = fmt.Fprintf(w, "%s%s\n", indent, name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
