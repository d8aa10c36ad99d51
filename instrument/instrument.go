// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package instrument adds measurement instrumentation to benchmark
// suites.
//
// An Instrument contributes VM flags and extraction rules to a suite it
// wraps, and a suffix to the suite's name. Instruments compose by
// explicit wrapping: in
//
//	instrument.Wrap(s, a, b)
//
// b is the outermost layer. The VM flags of the result are b's flags,
// then a's, then those of s, and its rules are those of s, then a's,
// then b's. Every other Suite method is delegated to s.
package instrument

import (
	"strings"

	"golang.org/x/benchsuite/extract"
	"golang.org/x/benchsuite/suite"
)

// An Instrument is one layer of instrumentation.
type Instrument interface {
	// Suffix is appended to the name of the wrapped suite.
	Suffix() string

	// Flags returns the VM flags this layer adds in front of the
	// flags of the layers below it.
	Flags(run *suite.Run) []string

	// Rules returns the extraction rules this layer adds. inner is
	// the suite directly below this layer.
	Rules(run *suite.Run, inner suite.Suite) ([]extract.Rule, error)
}

// Wrap wraps s in each of ins in turn, so the last instrument is the
// outermost.
func Wrap(s suite.Suite, ins ...Instrument) suite.Suite {
	for _, in := range ins {
		s = &wrapped{Suite: s, in: in}
	}
	return s
}

type wrapped struct {
	suite.Suite // inner
	in          Instrument
}

func (w *wrapped) Name() string {
	return w.Suite.Name() + w.in.Suffix()
}

func (w *wrapped) VMArgs(run *suite.Run) ([]string, error) {
	inner, err := w.Suite.VMArgs(run)
	if err != nil {
		return nil, err
	}
	return append(append([]string(nil), w.in.Flags(run)...), inner...), nil
}

func (w *wrapped) Rules(run *suite.Run, output string) ([]extract.Rule, error) {
	rules, err := w.Suite.Rules(run, output)
	if err != nil {
		return nil, err
	}
	more, err := w.in.Rules(run, w.Suite)
	if err != nil {
		return nil, err
	}
	return append(rules, more...), nil
}

// Unwrap returns the suite directly below the outermost instrument of
// s, or s itself if it is not instrumented.
func Unwrap(s suite.Suite) suite.Suite {
	if w, ok := s.(*wrapped); ok {
		return w.Suite
	}
	return s
}

// ShortenFlags summarizes a VM flag list for the config.vm-flags tag.
// Counter configuration flags are replaced by "...", and everything
// after the last "..." is dropped.
func ShortenFlags(flags []string) string {
	short := make([]string, len(flags))
	for i, f := range flags {
		if strings.Contains(f, "DynamicCounter") || strings.Contains(f, "BenchmarkCounter") {
			f = "..."
		}
		short[i] = f
	}
	s := strings.Join(short, " ")
	if i := strings.LastIndex(s, "..."); i >= 0 {
		s = s[:i+len("...")]
	}
	return s
}
