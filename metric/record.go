// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metric defines the normalized performance observation
// produced by extraction rules.
//
// Every Record carries the same fixed schema regardless of which
// benchmark harness produced it, so results from DaCapo, SPECjvm2008
// or compiler instrumentation can be stored and compared side by side.
// The JSON encoding uses the dotted field names of the schema
// ("bench-suite", "metric.value", ...), with execution profile
// dimensions flattened into the same object.
package metric

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Schema field names. These are the only keys an extraction template
// may set.
const (
	KeyBenchmark     = "benchmark"
	KeyBenchSuite    = "bench-suite"
	KeyVM            = "vm"
	KeyConfigName    = "config.name"
	KeyVMFlags       = "config.vm-flags"
	KeyValueName     = "extra.value.name"
	KeyName          = "metric.name"
	KeyValue         = "metric.value"
	KeyUnit          = "metric.unit"
	KeyType          = "metric.type"
	KeyScoreFunction = "metric.score-function"
	KeyBetter        = "metric.better"
	KeyIteration     = "metric.iteration"
)

// Keys lists the schema fields in canonical order.
var Keys = []string{
	KeyBenchmark, KeyBenchSuite, KeyVM, KeyConfigName, KeyVMFlags,
	KeyValueName, KeyName, KeyValue, KeyUnit, KeyType,
	KeyScoreFunction, KeyBetter, KeyIteration,
}

// Better says which direction of a metric's value is an improvement.
type Better int

const (
	// Unknown indicates no preferred direction.
	Unknown Better = iota
	// Lower indicates lower values are better, as for durations.
	Lower
	// Higher indicates higher values are better, as for throughput.
	Higher
)

func (b Better) String() string {
	switch b {
	case Lower:
		return "lower"
	case Higher:
		return "higher"
	}
	return ""
}

// ParseBetter parses "lower" or "higher".
func ParseBetter(s string) (Better, error) {
	switch s {
	case "lower":
		return Lower, nil
	case "higher":
		return Higher, nil
	case "":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("metric.better must be lower or higher, got %q", s)
}

// Sign returns -1 if lower is better, +1 if higher is better and 0 if
// unknown. This matches benchfmt.UnitMetadataMap.GetBetter.
func (b Better) Sign() int {
	switch b {
	case Lower:
		return -1
	case Higher:
		return 1
	}
	return 0
}

// A Record is a single normalized performance observation.
type Record struct {
	Benchmark     string
	BenchSuite    string
	VM            string
	ConfigName    string
	VMFlags       string // optional
	ValueName     string // optional
	Name          string
	Value         float64
	Unit          string
	Type          string
	ScoreFunction string
	Better        Better
	Iteration     int

	// Dims holds additional dimension tags, such as those
	// contributed by an execution profile ("host-vm", ...).
	Dims map[string]string
}

// SetDims merges dims into r's dimension tags. Existing tags with the
// same key are overwritten.
func (r *Record) SetDims(dims map[string]string) {
	if len(dims) == 0 {
		return
	}
	if r.Dims == nil {
		r.Dims = make(map[string]string, len(dims))
	}
	for k, v := range dims {
		r.Dims[k] = v
	}
}

// Key identifies the series a record belongs to. Records that differ
// only in value, iteration, type or score function share a key.
type Key struct {
	BenchSuite, Benchmark, ValueName, Name, Unit string
	VM, ConfigName, VMFlags                      string

	// Dims is the canonical "k=v,k=v" form of the dimension tags,
	// with keys in sorted order.
	Dims string
}

// Key returns the series key of r.
func (r *Record) Key() Key {
	var dims strings.Builder
	for i, k := range r.DimKeys() {
		if i > 0 {
			dims.WriteByte(',')
		}
		dims.WriteString(k + "=" + r.Dims[k])
	}
	return Key{
		BenchSuite: r.BenchSuite,
		Benchmark:  r.Benchmark,
		ValueName:  r.ValueName,
		Name:       r.Name,
		Unit:       r.Unit,
		VM:         r.VM,
		ConfigName: r.ConfigName,
		VMFlags:    r.VMFlags,
		Dims:       dims.String(),
	}
}

// String returns a short human-readable form of r.
func (r *Record) String() string {
	name := r.Benchmark
	if r.ValueName != "" {
		name += "/" + r.ValueName
	}
	return fmt.Sprintf("%s %s[%d] %v %s", name, r.Name, r.Iteration, r.Value, r.Unit)
}

// MarshalJSON encodes r as a flat object keyed by schema field names.
// Optional fields are omitted when empty.
func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(Keys)+len(r.Dims))
	for k, v := range r.Dims {
		m[k] = v
	}
	m[KeyBenchmark] = r.Benchmark
	m[KeyBenchSuite] = r.BenchSuite
	m[KeyVM] = r.VM
	m[KeyConfigName] = r.ConfigName
	if r.VMFlags != "" {
		m[KeyVMFlags] = r.VMFlags
	}
	if r.ValueName != "" {
		m[KeyValueName] = r.ValueName
	}
	m[KeyName] = r.Name
	m[KeyValue] = r.Value
	m[KeyUnit] = r.Unit
	m[KeyType] = r.Type
	m[KeyScoreFunction] = r.ScoreFunction
	m[KeyBetter] = r.Better.String()
	m[KeyIteration] = r.Iteration
	return json.Marshal(m)
}

// UnmarshalJSON decodes the flat object produced by MarshalJSON.
// Unknown string keys become dimension tags.
func (r *Record) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*r = Record{}
	for k, v := range m {
		if err := r.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Set assigns a single schema field from a decoded value. Keys outside
// the schema are stored as dimension tags and must be strings.
func (r *Record) Set(key string, v any) error {
	str := func() (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("%s: want string, got %T", key, v)
		}
		return s, nil
	}
	var err error
	switch key {
	case KeyBenchmark:
		r.Benchmark, err = str()
	case KeyBenchSuite:
		r.BenchSuite, err = str()
	case KeyVM:
		r.VM, err = str()
	case KeyConfigName:
		r.ConfigName, err = str()
	case KeyVMFlags:
		r.VMFlags, err = str()
	case KeyValueName:
		r.ValueName, err = str()
	case KeyName:
		r.Name, err = str()
	case KeyUnit:
		r.Unit, err = str()
	case KeyType:
		r.Type, err = str()
	case KeyScoreFunction:
		r.ScoreFunction, err = str()
	case KeyBetter:
		var s string
		if s, err = str(); err == nil {
			r.Better, err = ParseBetter(s)
		}
	case KeyValue:
		switch v := v.(type) {
		case float64:
			r.Value = v
		case int:
			r.Value = float64(v)
		case int64:
			r.Value = float64(v)
		default:
			err = fmt.Errorf("%s: want number, got %T", key, v)
		}
	case KeyIteration:
		switch v := v.(type) {
		case float64:
			r.Iteration = int(v)
		case int:
			r.Iteration = v
		case int64:
			r.Iteration = int(v)
		default:
			err = fmt.Errorf("%s: want integer, got %T", key, v)
		}
	default:
		var s string
		if s, err = str(); err == nil {
			r.SetDims(map[string]string{key: s})
		}
	}
	return err
}

// DimKeys returns the dimension tag keys of r in sorted order.
func (r *Record) DimKeys() []string {
	keys := make([]string, 0, len(r.Dims))
	for k := range r.Dims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
