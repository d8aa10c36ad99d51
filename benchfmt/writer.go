// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/benchsuite/benchunit"
	"golang.org/x/benchsuite/metric"
)

// A Writer writes results in the Go benchmark format.
//
// It tracks the file configuration in effect and emits a configuration
// block only when a result's file configuration differs from it. Unit
// metadata for records is announced once per unit, at the start of the
// block that first uses the unit.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer

	wrote bool              // at least one benchmark line was written
	cfg   map[string]string // file configuration in effect
	order []string          // keys of cfg, in the order they were set
	units map[UnitMetadataKey]bool
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:     w,
		cfg:   make(map[string]string),
		units: make(map[UnitMetadataKey]bool),
	}
}

// WriteRecord writes rec as a benchmark line, preceded by the
// configuration lines that changed since the previous line and by the
// better direction of rec's unit if this is its first use.
func (w *Writer) WriteRecord(rec metric.Record) error {
	var unit *UnitMetadata
	if rec.Better != metric.Unknown {
		u := recordUnit(rec)
		_, tidied := benchunit.Tidy(1, u)
		k := UnitMetadataKey{Unit: tidied, Key: "better"}
		if !w.units[k] {
			unit = &UnitMetadata{UnitMetadataKey: k, OrigUnit: u, Value: rec.Better.String()}
		}
	}
	w.writeResult(FromRecord(rec), unit)
	return w.flush()
}

// Write writes res. Values with an OrigUnit are written in their
// original value and unit, so harness units are preserved.
func (w *Writer) Write(res *Result) error {
	w.writeResult(res, nil)
	return w.flush()
}

// WriteUnit writes a unit metadata line, unless the same metadata key
// was already written for the unit.
func (w *Writer) WriteUnit(m *UnitMetadata) error {
	w.writeUnit(m)
	return w.flush()
}

func (w *Writer) flush() error {
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

func (w *Writer) writeUnit(m *UnitMetadata) {
	if m == nil || w.units[m.UnitMetadataKey] {
		return
	}
	w.units[m.UnitMetadataKey] = true
	fmt.Fprintf(&w.buf, "Unit %s %s=%s\n", m.OrigUnit, m.Key, m.Value)
}

func (w *Writer) writeResult(res *Result, unit *UnitMetadata) {
	if lines := w.updateConfig(res); len(lines) > 0 {
		if w.wrote {
			w.buf.WriteByte('\n')
		}
		w.writeUnit(unit)
		for _, l := range lines {
			w.buf.WriteString(l)
		}
		w.buf.WriteByte('\n')
	} else {
		w.writeUnit(unit)
	}

	fmt.Fprintf(&w.buf, "Benchmark%s %d", res.Name, res.Iters)
	for _, v := range res.Values {
		if v.OrigUnit != "" {
			fmt.Fprintf(&w.buf, " %v %s", v.OrigValue, v.OrigUnit)
		} else {
			fmt.Fprintf(&w.buf, " %v %s", v.Value, v.Unit)
		}
	}
	w.buf.WriteByte('\n')
	w.wrote = true
}

// updateConfig makes res's configuration the one in effect and returns
// the configuration lines that express the change. A deleted key is
// written with an empty value.
func (w *Writer) updateConfig(res *Result) []string {
	var lines []string
	kept := w.order[:0]
	for _, key := range w.order {
		v, ok := res.GetConfig(key)
		if !ok {
			lines = append(lines, key+":\n")
			delete(w.cfg, key)
			continue
		}
		kept = append(kept, key)
		if v != w.cfg[key] {
			lines = append(lines, key+": "+v+"\n")
			w.cfg[key] = v
		}
	}
	w.order = kept
	for _, c := range res.Config {
		if _, ok := w.cfg[c.Key]; ok {
			continue
		}
		lines = append(lines, c.Key+": "+c.Value+"\n")
		w.cfg[c.Key] = c.Value
		w.order = append(w.order, c.Key)
	}
	return lines
}
