// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i05

import (
	"log/slog"

	"cogentcore.org/arpes/nexus"
	"cogentcore.org/arpes/tensor"
)

// PositionKinds are the encodings of a manipulator position field.
type PositionKinds int32

const (
	// Absent is a field that is missing or could not be read.
	Absent PositionKinds = iota

	// Fixed is a single recorded value.
	Fixed

	// Stepped is a field that varied uniformly during the scan.
	Stepped

	// Varying is a field with more dimensions than can be encoded.
	Varying
)

// Varied is the attribute value of fields that changed in ways
// that are not encoded.
const Varied = "var"

// Position is the encoding of a manipulator position field.
type Position struct {
	Kind PositionKinds

	// Value is the value of a [Fixed] position, rounded to 3 decimals.
	Value float64

	// Start, Step and End describe a [Stepped] position.
	// Start and End are rounded to 3 decimals, Step to 2.
	Start, Step, End float64
}

// Attr returns the attribute value of the position:
// nil, a float64, a "start_step_end" string, or [Varied].
func (ps Position) Attr() any {
	switch ps.Kind {
	case Fixed:
		return ps.Value
	case Stepped:
		return RangeString(ps.Start, ps.Step, ps.End)
	case Varying:
		return Varied
	}
	return nil
}

// PositionOf returns the encoding of the position field at the given path.
// A 2D field is scanned along dimension 1 if its first two rows
// start with equal values, and along dimension 0 otherwise.
func PositionOf(rec nexus.Record, p string) Position {
	tsr, err := rec.Float64(p)
	if err != nil {
		slog.Debug("i05: position not recorded", "field", p, "err", err)
		return Position{}
	}
	return encodePosition(tsr)
}

func encodePosition(tsr *tensor.Float64) Position {
	switch tsr.NumDims() {
	case 0:
		if len(tsr.Values) == 0 {
			return Position{}
		}
		return Position{Kind: Fixed, Value: Round(tsr.Values[0], 3)}
	case 1:
		n := len(tsr.Values)
		switch n {
		case 0:
			return Position{}
		case 1:
			return Position{Kind: Fixed, Value: Round(tsr.Values[0], 3)}
		}
		return stepped(tsr.Values[0], tsr.Values[n-1], n)
	case 2:
		rows, cols := tsr.DimSize(0), tsr.DimSize(1)
		if rows < 2 || cols < 1 {
			return Position{}
		}
		if tsr.Float(0, 0) == tsr.Float(1, 0) {
			return stepped(tsr.Float(0, 0), tsr.Float(0, cols-1), cols)
		}
		return stepped(tsr.Float(0, 0), tsr.Float(rows-1, 0), rows)
	}
	return Position{Kind: Varying}
}

func stepped(first, last float64, n int) Position {
	start := Round(first, 3)
	end := Round(last, 3)
	return Position{Kind: Stepped, Start: start, End: end, Step: Round((end-start)/float64(n-1), 2)}
}
