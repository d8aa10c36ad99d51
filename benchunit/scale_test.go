// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"math"
	"testing"
)

func TestScale(t *testing.T) {
	for _, tc := range []struct {
		val    float64
		binary bool
		want   string
		// wantPred is the result for the next value toward zero,
		// which must not round up into the larger prefix.
		wantPred string
	}{
		{0, false, "0.000", "0.000"},
		{-1, false, "-1.000", "-1.000"},
		{999950000, false, "1.000G", "999.9M"},
		{99995, false, "100.0k", "99.99k"},
		{9.9995, false, "10.00", "9.999"},
		{.99995, false, "1.000", "999.9m"},
		{.00000099995, false, "1.000µ", "999.9n"},
		{.00000000099995, false, "1.000n", "0.9999n"},
		{.0000000000099995, false, "0.01000n", "0.009999n"},
		{-.0000000099995, false, "-10.00n", "-9.999n"},

		{0, true, "0.000", "0.000"},
		{.99995 * (1 << 30), true, "1.000Gi", "1023.9Mi"},
		{99.995 * (1 << 10), true, "100.0Ki", "99.99Ki"},
		{.99995 * (1 << 10), true, "1.000Ki", "1023.9"},
		{.99995, true, "1.000", "0.9999"},
		{.00099995, true, "0.001000", "0.0009999"},
	} {
		if got := scale(tc.val, tc.binary); got != tc.want {
			t.Errorf("scale(%v, %v) = %s, want %s", tc.val, tc.binary, got, tc.want)
		}
		pred := math.Nextafter(tc.val, 0)
		if got := scale(pred, tc.binary); got != tc.wantPred {
			t.Errorf("scale(%v, %v) = %s, want %s", pred, tc.binary, got, tc.wantPred)
		}
	}
}

func TestFormatValue(t *testing.T) {
	for _, tc := range []struct {
		val  float64
		unit string
		want string
	}{
		{1234, "ms", "1.234 sec"},
		{4321, "msec", "4.321 sec"},
		{52, "ns", "52.00n sec"},
		{12340, "#", "12.34k"},
		{1500, "op/min", "1.500k op/min"},
		{2048, "B", "2.000Ki B"},
	} {
		if got := FormatValue(tc.val, tc.unit); got != tc.want {
			t.Errorf("FormatValue(%v, %q) = %q, want %q", tc.val, tc.unit, got, tc.want)
		}
	}
}
