// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import "fmt"

// AssumeExact is the assumption for deterministic counters, such as
// the dynamic move counts reported by compiler instrumentation. Every
// iteration is expected to produce the same value, so the summary is
// that value and any change between samples is significant.
var AssumeExact = assumeExact{}

type assumeExact struct{}

var _ Assumption = assumeExact{}

func (assumeExact) SummaryLabel() string {
	return "exact"
}

// mode returns the most common value of sorted vals. Ties go to the
// smallest value.
func mode(vals []float64) float64 {
	best, bestN := vals[0], 0
	for i := 0; i < len(vals); {
		j := i
		for j < len(vals) && vals[j] == vals[i] {
			j++
		}
		if j-i > bestN {
			best, bestN = vals[i], j-i
		}
		i = j
	}
	return best
}

func (assumeExact) Summary(s *Sample, confidence float64) Summary {
	lo, hi := s.Values[0], s.Values[len(s.Values)-1]
	sum := Summary{Center: mode(s.Values), Lo: lo, Hi: hi, Confidence: 1}
	if lo != hi {
		sum.Warnings = []error{fmt.Errorf("counter values vary between iterations, from %v to %v", lo, hi)}
	}
	return sum
}

// Compare reports P=0 when the samples' modes differ and P=1 when they
// agree.
func (assumeExact) Compare(s1, s2 *Sample) Comparison {
	cmp := Comparison{P: 1, N1: len(s1.Values), N2: len(s2.Values), Alpha: DefaultThresholds.CompareAlpha}
	if s1.Thresholds != nil {
		cmp.Alpha = s1.Thresholds.CompareAlpha
	}
	if mode(s1.Values) != mode(s2.Values) {
		cmp.P = 0
	}
	return cmp
}
