// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i05

import (
	"math"
	"strconv"
	"strings"
)

// Round rounds x to the given number of decimals,
// with halves going to the nearest even digit.
func Round(x float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.RoundToEven(x*p) / p
}

// FormatFloat formats x in the shortest form that reads back
// to the same value, always including a decimal point or exponent
// (e.g., 10 -> "10.0", 0.25 -> "0.25", 1e-05 -> "1e-05").
func FormatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	ax := math.Abs(x)
	if ax != 0 && (ax < 1e-4 || ax >= 1e16) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// RangeString returns the "start_step_end" encoding of a range.
func RangeString(start, step, end float64) string {
	return FormatFloat(start) + "_" + FormatFloat(step) + "_" + FormatFloat(end)
}

// SpanString returns the "first : last" encoding of a recorded sequence.
func SpanString(first, last float64) string {
	return FormatFloat(first) + " : " + FormatFloat(last)
}
