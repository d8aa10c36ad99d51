// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package outcome classifies a finished benchmark run as a success or
// a failure from patterns over its captured output.
package outcome

import (
	"fmt"
	"regexp"
)

// A Kind is the classification of one run.
type Kind int

const (
	// Failure means a failure pattern matched, or the process exit
	// code was not accepted.
	Failure Kind = iota
	// Success means a success pattern matched and no unforgiven
	// failure was seen.
	Success
	// NoEvidence means neither a success nor a failure pattern
	// matched. It is treated as a failure.
	NoEvidence
)

func (k Kind) String() string {
	switch k {
	case Failure:
		return "failure"
	case Success:
		return "success"
	case NoEvidence:
		return "no-evidence"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Patterns are the ordered pattern lists a suite classifies its output
// with.
type Patterns struct {
	Success []*regexp.Regexp
	Failure []*regexp.Regexp

	// FlakySuccess patterns identify known transient failures. If
	// one matches, failure patterns and a rejected exit code are
	// ignored for this run.
	FlakySuccess []*regexp.Regexp
}

// An Outcome is the classification of one run.
type Outcome struct {
	Kind Kind

	// Matched is the pattern that decided Kind, if any.
	Matched *regexp.Regexp

	// Flaky is the flaky-success pattern that caused a failing run
	// to be reclassified, or nil. A reclassification is never
	// silent: callers should report it.
	Flaky *regexp.Regexp

	// Err explains a failure that did not come from output
	// patterns, such as a *ProcessError.
	Err error
}

// Failed reports whether o counts as a failure.
func (o Outcome) Failed() bool {
	return o.Kind != Success
}

func (o Outcome) String() string {
	s := o.Kind.String()
	if o.Flaky != nil {
		s += fmt.Sprintf(" (flaky failure forgiven by %q)", o.Flaky)
	}
	if o.Err != nil {
		s += ": " + o.Err.Error()
	}
	return s
}

// A ProcessError reports a process exit code outside the accepted set.
type ProcessError struct {
	ExitCode int
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("process exited with unexpected code %d", e.ExitCode)
}

func firstMatch(res []*regexp.Regexp, out string) *regexp.Regexp {
	for _, re := range res {
		if re.MatchString(out) {
			return re
		}
	}
	return nil
}

// Classify classifies the captured output of a finished process.
// exitCode is the process exit code, and exitOK reports whether the
// suite accepts it.
//
// A matching failure pattern or a rejected exit code makes the run a
// Failure, unless a flaky-success pattern also matches. Otherwise a
// matching success pattern makes the run a Success. If nothing
// matched, the run is classified NoEvidence.
func Classify(out string, exitCode int, exitOK bool, p Patterns) Outcome {
	flaky := firstMatch(p.FlakySuccess, out)
	failed := firstMatch(p.Failure, out)
	success := firstMatch(p.Success, out)

	var o Outcome
	switch {
	case (failed != nil || !exitOK) && flaky == nil:
		o.Kind, o.Matched = Failure, failed
		if !exitOK {
			o.Err = &ProcessError{exitCode}
		}
		return o
	case failed != nil || !exitOK:
		o.Flaky = flaky
	}
	if success != nil {
		o.Kind, o.Matched = Success, success
		return o
	}
	if o.Flaky != nil {
		// A forgiven failure with no positive evidence still
		// counts as a success; the flaky pattern is the evidence.
		o.Kind, o.Matched = Success, flaky
		return o
	}
	o.Kind = NoEvidence
	return o
}
