// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i05

import (
	"fmt"
	"strconv"
	"strings"
)

// ScanType is the kind of acquisition a file records,
// which determines the axes of the loaded array.
type ScanType int32

const (
	// Dispersion is a single angle vs. energy image.
	Dispersion ScanType = iota

	// LineScan steps one spatial manipulator axis.
	LineScan

	// FSMap is a Fermi surface map over the polar angle.
	FSMap

	// SpatialMap steps two spatial manipulator axes.
	SpatialMap

	// FocusScan steps the focus (along the beam) or the y axis.
	FocusScan

	// TempDep steps the sample temperature.
	TempDep

	// HVScan steps the photon energy, and is not supported.
	HVScan

	ScanTypeN
)

var scanTypeNames = [...]string{"dispersion", "line scan", "FS map", "spatial map", "focus scan", "temp dep", "hv scan"}

// String returns the name recorded in the scan_type attribute.
func (st ScanType) String() string {
	if st < 0 || st >= ScanTypeN {
		return fmt.Sprintf("ScanType(%d)", int32(st))
	}
	return scanTypeNames[st]
}

// ScanTypeValues returns all the valid scan types.
func ScanTypeValues() []ScanType {
	vals := make([]ScanType, ScanTypeN)
	for i := range vals {
		vals[i] = ScanType(i)
	}
	return vals
}

// ParseScanType returns the scan type with the given name.
func ParseScanType(s string) (ScanType, error) {
	for i, nm := range scanTypeNames {
		if nm == s {
			return ScanType(i), nil
		}
	}
	names := make([]string, 0, ScanTypeN)
	for _, st := range ScanTypeValues() {
		names = append(names, strconv.Quote(st.String()))
	}
	return 0, fmt.Errorf("i05: %q is not a valid scan type (one of %s)", s, strings.Join(names, ", "))
}
