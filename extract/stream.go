// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"errors"
	"regexp"

	"golang.org/x/benchsuite/metric"
)

// A StreamRule extracts one record per non-overlapping match of
// Pattern in the captured process output.
//
// Named capture groups of Pattern are the source fields available to
// Template. Patterns that must match at line boundaries should be
// compiled with the (?m) flag.
type StreamRule struct {
	Pattern  *regexp.Regexp
	Template Template
}

// NewStreamRule compiles pattern in multi-line mode and returns a
// StreamRule for it.
func NewStreamRule(pattern string, t Template) (*StreamRule, error) {
	re, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		return nil, err
	}
	return &StreamRule{re, t}, nil
}

// MustStreamRule is like NewStreamRule but panics if pattern does not
// compile.
func MustStreamRule(pattern string, t Template) *StreamRule {
	r, err := NewStreamRule(pattern, t)
	if err != nil {
		panic(err)
	}
	return r
}

// Parse implements Rule.
func (r *StreamRule) Parse(in Input) ([]metric.Record, error) {
	names := r.Pattern.SubexpNames()
	var recs []metric.Record
	var errs []error
	for i, m := range r.Pattern.FindAllStringSubmatchIndex(in.Output, -1) {
		values := make(map[string]string, len(names))
		for g, name := range names {
			if name == "" || m[2*g] < 0 {
				continue
			}
			values[name] = in.Output[m[2*g]:m[2*g+1]]
		}
		rec, err := r.Template.Eval(values, i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, errors.Join(errs...)
}
