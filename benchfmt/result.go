// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt writes metric records in the Go benchmark format.
//
// This implements the format documented at
// https://golang.org/design/14313-benchmark-format, so that records
// collected from JVM harnesses can be compared with benchstat and
// stored with the rest of the Go performance tooling.
//
// Each metric record becomes one benchmark line whose name is the
// benchmark, the optional value name and the metric name, such as
//
//	Benchmarkavrora/metric=time 1 4321 ms
//
// Record fields that identify the run (suite, VM, configuration and
// profile dimensions) become file configuration lines, and the
// metric's better direction becomes unit metadata.
package benchfmt

// A Result is one benchmark line and the file configuration in effect
// for it.
type Result struct {
	// Config is the file configuration of this result, in the order
	// keys were first set. Keys are unique.
	Config []Config

	// Name is the full benchmark name, including sub-benchmark
	// components such as "/metric=time".
	Name string

	// Iters is the number of iterations the values were averaged
	// over. Harness records are single measurements, so this is 1.
	Iters int

	// Values is this benchmark's measurements and their units.
	Values []Value
}

// A Config is a single file configuration pair, written as a
// "key: value" line.
type Config struct {
	Key, Value string
}

// A Value is a single value/unit measurement from a benchmark result.
//
// Values should be tidied to use base units like "sec" and "B" when
// constructed. FromRecord ensures this.
type Value struct {
	Value float64
	Unit  string

	// OrigValue and OrigUnit, if OrigUnit is non-empty, give the
	// untidied value and unit as reported by the harness.
	OrigValue float64
	OrigUnit  string
}

// SetConfig sets configuration key to value. If value is "", it
// deletes key, keeping the order of the remaining keys.
func (r *Result) SetConfig(key, value string) {
	i := r.index(key)
	switch {
	case i >= 0 && value == "":
		r.Config = append(r.Config[:i], r.Config[i+1:]...)
	case i >= 0:
		r.Config[i].Value = value
	case value != "":
		r.Config = append(r.Config, Config{key, value})
	}
}

// GetConfig returns the value of key and whether it is set.
func (r *Result) GetConfig(key string) (string, bool) {
	if i := r.index(key); i >= 0 {
		return r.Config[i].Value, true
	}
	return "", false
}

func (r *Result) index(key string) int {
	for i, c := range r.Config {
		if c.Key == key {
			return i
		}
	}
	return -1
}
