// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// AssumeNothing is a non-parametric Assumption. It summarizes samples
// by their median, with a confidence interval derived from order
// statistics, and compares them with the Mann-Whitney U-test.
//
// Benchmark iterations are rarely normally distributed (warmup,
// compilation and garbage collection all produce long tails), so this
// is the assumption to use by default.
var AssumeNothing = assumeNothing{}

type assumeNothing struct{}

var _ Assumption = assumeNothing{}

func (assumeNothing) SummaryLabel() string {
	return "median"
}

// median returns the median of the sorted values xs.
func median(xs []float64) float64 {
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}

// binomHalf returns the probability mass function of the binomial
// distribution with n trials and p=0.5.
func binomHalf(n int) []float64 {
	pmf := make([]float64, n+1)
	c := 1.0
	scale := math.Ldexp(1, -n)
	for i := 0; i <= n; i++ {
		pmf[i] = c * scale
		c = c * float64(n-i) / float64(i+1)
	}
	return pmf
}

// medianCI returns the 0-based order statistics lo and hi that bound
// the median of a sample of size n with at least the given confidence,
// and the actual confidence. ok is false if no interval reaches the
// requested confidence.
func medianCI(n int, confidence float64) (lo, hi int, actual float64, ok bool) {
	if n < 2 {
		return 0, 0, 0, false
	}
	pmf := binomHalf(n)
	tail := 0.0
	found := false
	for k := 0; k < n-1-k; k++ {
		tail += pmf[k]
		cov := 1 - 2*tail
		if cov < confidence {
			break
		}
		lo, hi, actual, found = k, n-1-k, cov, true
	}
	return lo, hi, actual, found
}

// medianSamples returns how many samples are needed for a median
// confidence interval at the given confidence level, as an operator
// and count.
func medianSamples(confidence float64) (op string, n int) {
	const limit = 50
	for n := 2; n <= limit; n++ {
		if _, _, _, ok := medianCI(n, confidence); ok {
			return ">=", n
		}
	}
	return ">", limit
}

func (assumeNothing) Summary(s *Sample, confidence float64) Summary {
	summary := Summary{Center: median(s.Values)}
	lo, hi, actual, ok := medianCI(len(s.Values), confidence)
	if !ok {
		op, need := medianSamples(confidence)
		summary.Lo, summary.Hi = math.Inf(-1), math.Inf(1)
		summary.Confidence = 1
		summary.Warnings = []error{fmt.Errorf("need %s %d samples for confidence interval at level %v", op, need, confidence)}
		return summary
	}
	summary.Lo, summary.Hi = s.Values[lo], s.Values[hi]
	summary.Confidence = actual
	return summary
}

// uTestMinP returns the smallest p-value the two-sided U-test can
// produce for samples of sizes n1 and n2, reached when the samples do
// not overlap.
func uTestMinP(n1, n2 int) float64 {
	// 2 / C(n1+n2, n1)
	c := 1.0
	for i := 0; i < n1; i++ {
		c = c * float64(n2+n1-i) / float64(i+1)
	}
	return math.Min(1, 2/c)
}

// uTestSamples returns how many samples per side the U-test needs to
// be able to reject the null hypothesis at level alpha.
func uTestSamples(alpha float64) (op string, n int) {
	const limit = 10
	for n := 1; n < limit; n++ {
		if uTestMinP(n, n) <= alpha {
			return ">=", n
		}
	}
	return ">", limit
}

func (assumeNothing) Compare(s1, s2 *Sample) Comparison {
	n1, n2 := len(s1.Values), len(s2.Values)
	cmp := Comparison{P: 1, N1: n1, N2: n2, Alpha: s1.Thresholds.CompareAlpha}
	res, err := stats.MannWhitneyUTest(s1.Values, s2.Values, stats.LocationDiffers)
	if err != nil {
		cmp.Warnings = append(cmp.Warnings, err)
		return cmp
	}
	cmp.P = res.P
	if uTestMinP(n1, n2) > cmp.Alpha {
		op, need := uTestSamples(cmp.Alpha)
		cmp.Warnings = append(cmp.Warnings, fmt.Errorf("need %s %d samples to detect a difference at alpha level %v", op, need, cmp.Alpha))
	}
	return cmp
}
