// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i05

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/arpes/nexus"
	"cogentcore.org/arpes/tensor"
)

// field is one metadata attribute, computed from the record.
type field struct {
	key string
	get func(rec nexus.Record, st ScanType) (any, error)
}

func constant(v any) func(rec nexus.Record, st ScanType) (any, error) {
	return func(rec nexus.Record, st ScanType) (any, error) { return v, nil }
}

func recorded(f func(rec nexus.Record) (any, error)) func(rec nexus.Record, st ScanType) (any, error) {
	return func(rec nexus.Record, st ScanType) (any, error) { return f(rec) }
}

func position(p string) func(rec nexus.Record, st ScanType) (any, error) {
	return func(rec nexus.Record, st ScanType) (any, error) { return PositionOf(rec, p).Attr(), nil }
}

// metaFields are the metadata attributes in order.
var metaFields = []field{
	{"scan_name", recorded(scanName)},
	{"scan_type", func(rec nexus.Record, st ScanType) (any, error) { return st.String(), nil }},
	{"sample_description", constant(nil)},
	{"eV_type", constant("Kinetic")},
	{"beamline", constant(Beamline)},
	{tensor.HistoryKey, func(rec nexus.Record, st ScanType) (any, error) { return []string{}, nil }},
	{"EF_correction", constant(nil)},
	{"PE", recorded(func(rec nexus.Record) (any, error) { return nexus.Scalar(rec, PassEnergy) })},
	{"hv", recorded(func(rec nexus.Record) (any, error) { return scanned(rec, PhotonEnergy) })},
	{"pol", recorded(polarisation)},
	{"sweeps", recorded(sweeps)},
	{"dwell", recorded(dwell)},
	{"ana_mode", recorded(lensMode)},
	{"ana_slit", recorded(entranceSlit)},
	{"ana_slit_angle", constant(90)},
	{"exit_slit", recorded(exitSlit)},
	{"x1", position(ManipulatorX)},
	{"x2", position(ManipulatorZ)},
	{"x3", position(ManipulatorY)},
	{"polar", recorded(func(rec nexus.Record) (any, error) { return scanned(rec, ManipulatorPl) })},
	{"tilt", recorded(func(rec nexus.Record) (any, error) { return angle(rec, ManipulatorTl) })},
	{"azi", recorded(func(rec nexus.Record) (any, error) { return angle(rec, ManipulatorAz) })},
	{"norm_polar", constant(nil)},
	{"norm_tilt", constant(nil)},
	{"norm_azi", constant(nil)},
	{"temp_sample", recorded(func(rec nexus.Record) (any, error) { return temperature(rec, SampleTemp) })},
	{"temp_cryo", recorded(func(rec nexus.Record) (any, error) { return temperature(rec, CryostatTemp) })},
}

// Keys returns the metadata attribute names, in order.
func Keys() []string {
	keys := make([]string, len(metaFields))
	for i, fd := range metaFields {
		keys[i] = fd.key
	}
	return keys
}

// Extract returns the metadata attributes of the given record for
// a scan of the given type. A field that cannot be read is nil.
func Extract(rec nexus.Record, st ScanType) *tensor.Attrs {
	attrs := tensor.NewAttrs()
	for _, fd := range metaFields {
		v, err := fd.get(rec, st)
		if err != nil {
			slog.Debug("i05: metadata field not available", "field", fd.key, "err", err)
			v = nil
		}
		attrs.Set(fd.key, v)
	}
	return attrs
}

// ExtractFile returns the metadata attributes of the given
// Nexus file for a scan of the given type.
func ExtractFile(filename string, st ScanType) (*tensor.Attrs, error) {
	rec, err := nexus.Open(filename)
	if err != nil {
		return nil, err
	}
	defer rec.Close()
	return Extract(rec, st), nil
}

func scanName(rec nexus.Record) (any, error) {
	id, err := nexus.String(rec, EntryID)
	if err != nil {
		return nil, err
	}
	return "i05-" + id, nil
}

// values returns the flat values of a numeric field, with at least one value.
func values(rec nexus.Record, p string) ([]float64, error) {
	tsr, err := rec.Float64(p)
	if err != nil {
		return nil, err
	}
	if len(tsr.Values) == 0 {
		return nil, fmt.Errorf("%s: no values", p)
	}
	return tsr.Values, nil
}

// scanned returns a single value rounded to 1 decimal, or the
// "first_step_last" encoding of multiple values.
func scanned(rec nexus.Record, p string) (any, error) {
	vals, err := values(rec, p)
	if err != nil {
		return nil, err
	}
	n := len(vals)
	if n == 1 {
		return Round(vals[0], 1), nil
	}
	first := Round(vals[0], 1)
	last := Round(vals[n-1], 1)
	return RangeString(first, (last-first)/float64(n-1), last), nil
}

func polarisation(rec nexus.Record) (any, error) {
	pols, err := rec.Strings(Polarisation)
	if err != nil {
		return nil, err
	}
	switch len(pols) {
	case 0:
		return nil, fmt.Errorf("%s: no values", Polarisation)
	case 1:
		return pols[0], nil
	}
	return Varied, nil
}

// sweeps returns the first readable count of [Iterations]
// and [Cycles], or else 1.
func sweeps(rec nexus.Record) (any, error) {
	for _, p := range []string{Iterations, Cycles} {
		if !nexus.Has(rec, p) {
			continue
		}
		if n, err := nexus.Scalar(rec, p); err == nil {
			return int(n), nil
		}
	}
	return 1, nil
}

func dwell(rec nexus.Record) (any, error) {
	vals, err := values(rec, FrameTime)
	if err != nil {
		return nil, err
	}
	return Round(vals[0], 2), nil
}

func lensMode(rec nexus.Record) (any, error) {
	mode, err := nexus.String(rec, LensMode)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.Contains(mode, "Angular30"):
		return "Ang30", nil
	case strings.Contains(mode, "Angular14"):
		return "Ang14", nil
	case strings.Contains(mode, "Transmission"):
		return "Trans", nil
	}
	return mode, nil
}

// fieldText returns the first value of a field formatted with format,
// or else its recorded text.
func fieldText(rec nexus.Record, p string, format func(v float64) string) (string, error) {
	if v, err := nexus.Scalar(rec, p); err == nil {
		return format(v), nil
	}
	return nexus.String(rec, p)
}

// formatSetting formats a slit setting number, which is integral.
func formatSetting(v float64) string {
	if v == math.Trunc(v) {
		return strconv.Itoa(int(v))
	}
	return FormatFloat(v)
}

func entranceSlit(rec nexus.Record) (any, error) {
	setting, err := fieldText(rec, SlitSetting, formatSetting)
	if err != nil {
		return nil, err
	}
	size, err := fieldText(rec, SlitSize, FormatFloat)
	if err != nil {
		return nil, err
	}
	shape, err := nexus.String(rec, SlitShape)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.Contains(shape, "straight"):
		shape = "s"
	case strings.Contains(shape, "curved"):
		shape = "c"
	}
	return size + shape + " (#" + setting + ")", nil
}

func exitSlit(rec nexus.Record) (any, error) {
	n, err := nexus.Len(rec, ExitSlitSize)
	if err != nil {
		return nil, err
	}
	if n > 1 {
		return Varied, nil
	}
	vals, err := values(rec, ExitSlitSize)
	if err != nil {
		return nil, err
	}
	return FormatFloat(Round(vals[0], 3) * 1000), nil
}

// angle returns the first value rounded to 1 decimal, or else
// the recorded text of the field.
func angle(rec nexus.Record, p string) (any, error) {
	vals, err := values(rec, p)
	if err == nil {
		return Round(vals[0], 1), nil
	}
	s, serr := nexus.String(rec, p)
	if serr != nil {
		return nil, err
	}
	return s, nil
}

// temperature returns a single value rounded to 1 decimal,
// or the "first : last" encoding of multiple values.
func temperature(rec nexus.Record, p string) (any, error) {
	vals, err := values(rec, p)
	if err != nil {
		return nil, err
	}
	n := len(vals)
	if n == 1 {
		return Round(vals[0], 1), nil
	}
	return SpanString(Round(vals[0], 1), Round(vals[n-1], 1)), nil
}
