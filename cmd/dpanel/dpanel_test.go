// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"cogentcore.org/arpes/i05"
	"cogentcore.org/arpes/nexus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "i05-9.nxs")
	rec := nexus.NewMemory().
		SetStrings(i05.InstrumentName, i05.Instrument).
		SetStrings(i05.EntryID, "9").
		AddGroup(i05.ScanGroup).
		SetFloat64(i05.Data, []float64{0, 1, 2, 3, 4, 5}, 1, 3, 2).
		SetFloat64(i05.Angles, []float64{-1, 0, 1}).
		SetFloat64(i05.Energies, []float64{16.8, 16.9})
	require.NoError(t, rec.WriteHDF5(fn))

	attrs, err := metadata(fn, i05.ScanTypeN)
	require.NoError(t, err)
	assert.Equal(t, "i05-9", attrs.At("scan_name"))
	assert.Equal(t, "dispersion", attrs.At("scan_type"))

	attrs, err = metadata(fn, i05.TempDep)
	require.NoError(t, err)
	assert.Equal(t, "temp dep", attrs.At("scan_type"))

	err = Meta(&Config{Files: []string{fn}, Format: "yaml", Scan: "bogus"})
	assert.ErrorContains(t, err, `"bogus" is not a valid scan type`)
	err = Meta(&Config{Files: []string{fn}, Format: "json", Scan: "FS map"})
	assert.NoError(t, err)
}
