// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loader detects the format of dataset files and loads them
// with the matching loader, individually, from session files listing
// many datasets, or as they appear in a watched directory.
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/gabriel-vasile/mimetype"
	"github.com/h2non/filetype"
)

// ErrUnknownFormat is returned for a file that is not of a known [Kinds].
var ErrUnknownFormat = errors.New("unknown file format")

// Kinds are the kinds of dataset files.
type Kinds int32

const (
	// Unknown is a file of an unknown format.
	Unknown Kinds = iota

	// Nexus is an HDF5 Nexus instrument file.
	Nexus

	// Image is a raster image.
	Image

	// Text is delimited text, one of a text grid triplet.
	Text
)

var kindNames = [...]string{"unknown", "nexus", "image", "text"}

func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// hdf5Signature starts an HDF5 superblock, which is at byte 0 or a
// power of two from 512 on.
var hdf5Signature = []byte("\x89HDF\r\n\x1a\n")

// hdf5 is the file type registered for HDF5 signatures.
var hdf5 = filetype.NewType("nxs", "application/x-hdf5")

func init() {
	filetype.AddMatcher(hdf5, matchHDF5)
}

func matchHDF5(buf []byte) bool {
	for off := 0; off+len(hdf5Signature) <= len(buf); off = max(512, off*2) {
		if bytes.Equal(buf[off:off+len(hdf5Signature)], hdf5Signature) {
			return true
		}
	}
	return false
}

// headerSize is the number of bytes read for signature matching.
const headerSize = 4096

// Detect returns the kind of the given file from its contents.
// It returns [ErrUnknownFormat] if the kind is not recognized.
func Detect(filename string) (Kinds, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return Unknown, err
	}
	defer fp.Close()
	buf := make([]byte, headerSize)
	n, err := io.ReadFull(fp, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Unknown, err
	}
	return DetectBytes(buf[:n], filename)
}

// DetectBytes returns the kind of a file from the start of its contents,
// where filename is used for error messages.
func DetectBytes(head []byte, filename string) (Kinds, error) {
	if len(head) == 0 {
		return Unknown, fmt.Errorf("loader: %s is empty: %w", filename, ErrUnknownFormat)
	}
	if filetype.IsImage(head) {
		return Image, nil
	}
	if kind, err := filetype.Match(head); err == nil && kind == hdf5 {
		return Nexus, nil
	}
	for mt := mimetype.Detect(head); mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return Text, nil
		}
	}
	return Unknown, fmt.Errorf("loader: %s: %w", filename, ErrUnknownFormat)
}
