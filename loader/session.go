// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cogentcore.org/arpes/i05"
	"cogentcore.org/arpes/imagegrid"
	"cogentcore.org/arpes/tensor"
	"cogentcore.org/arpes/textgrid"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Session is a list of datasets to load together, read from a TOML file.
// Relative paths are relative to the directory of the session file.
type Session struct {
	Nexus []NexusEntry `toml:"nexus"`
	Text  []TextEntry  `toml:"text"`
	Image []ImageEntry `toml:"image"`

	// Dir is the directory relative paths are resolved against.
	Dir string `toml:"-"`
}

// NexusEntry is an I05-HR Nexus file.
type NexusEntry struct {
	Path string `toml:"path"`
}

// TextEntry is a text grid triplet.
type TextEntry struct {
	Name string      `toml:"name"`
	X    string      `toml:"x"`
	Y    string      `toml:"y"`
	Z    string      `toml:"z"`
	Axes tensor.Axes `toml:"axes"`
}

// ImageEntry is an image file. Rotation defaults to [imagegrid.DefaultRotation].
type ImageEntry struct {
	Path     string      `toml:"path"`
	Rotation *float64    `toml:"rotation"`
	Axes     tensor.Axes `toml:"axes"`
}

// OpenSession reads the given session file.
func OpenSession(filename string) (*Session, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	ss, err := ReadSession(fp)
	if err != nil {
		return nil, fmt.Errorf("loader: session %s: %w", filename, err)
	}
	ss.Dir = filepath.Dir(filename)
	return ss, nil
}

// ReadSession reads a session from TOML. Unknown fields are an error.
func ReadSession(r io.Reader) (*Session, error) {
	ss := &Session{}
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(ss); err != nil {
		return nil, err
	}
	for i, te := range ss.Text {
		if te.X == "" || te.Y == "" || te.Z == "" {
			return nil, fmt.Errorf("text entry %d (%q) needs x, y and z files", i, te.Name)
		}
	}
	return ss, nil
}

// Len returns the number of datasets in the session.
func (ss *Session) Len() int {
	return len(ss.Nexus) + len(ss.Text) + len(ss.Image)
}

// path resolves a path in the session, expanding a leading ~
// to the home directory.
func (ss *Session) path(p string) string {
	if hp, err := homedir.Expand(p); err == nil {
		p = hp
	}
	if ss.Dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(ss.Dir, p)
}

// Load loads all of the datasets in the session: Nexus files,
// then text grids, then images, each in the listed order.
// It stops at the first error.
func (ss *Session) Load() ([]*tensor.Labeled, error) {
	arrs := make([]*tensor.Labeled, 0, ss.Len())
	for _, ne := range ss.Nexus {
		arr, err := i05.Load(ss.path(ne.Path))
		if err != nil {
			return nil, err
		}
		arrs = append(arrs, arr)
	}
	for _, te := range ss.Text {
		files := textgrid.Files{X: ss.path(te.X), Y: ss.path(te.Y), Z: ss.path(te.Z)}
		name := te.Name
		if name == "" {
			name = te.Z
		}
		arr, err := textgrid.Load(name, files, te.Axes)
		if err != nil {
			return nil, err
		}
		arrs = append(arrs, arr)
	}
	for _, ie := range ss.Image {
		var opts []imagegrid.Option
		if ie.Rotation != nil {
			opts = append(opts, imagegrid.WithRotation(*ie.Rotation))
		}
		axes := ie.Axes
		if axes.X.Name == "" && axes.Y.Name == "" {
			axes = ImageAxes
		}
		arr, err := imagegrid.Load(ss.path(ie.Path), axes, opts...)
		if err != nil {
			return nil, err
		}
		arrs = append(arrs, arr)
	}
	return arrs, nil
}
