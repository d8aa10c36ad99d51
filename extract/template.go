// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/benchsuite/metric"
)

// A Coercion converts a source field's text into a typed value.
type Coercion int

const (
	// String passes the text through unchanged.
	String Coercion = iota
	// Int parses a base-10 integer.
	Int
	// Float parses a floating point number. Either '.' or ',' is
	// accepted as the decimal separator.
	Float
)

func (c Coercion) String() string {
	switch c {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return fmt.Sprintf("Coercion(%d)", int(c))
}

func (c Coercion) coerce(s string) (any, error) {
	switch c {
	case String:
		return s, nil
	case Int:
		return strconv.Atoi(strings.TrimSpace(s))
	case Float:
		return strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
	}
	return nil, fmt.Errorf("unknown coercion %d", int(c))
}

type fieldKind int

const (
	literalField fieldKind = iota
	sourceField
	iterationField
)

// A Field says how a template computes one output field.
type Field struct {
	kind     fieldKind
	literal  any
	source   string
	coercion Coercion
}

// Literal returns a Field with the constant value v. v must be a string
// or a number.
func Literal(v any) Field {
	return Field{kind: literalField, literal: v}
}

// Source returns a Field whose value is the named source field (a
// named capture group or a column name), converted by c.
func Source(name string, c Coercion) Field {
	return Field{kind: sourceField, source: name, coercion: c}
}

// Iteration returns a Field whose value is the number of records the
// rule has emitted before this one in the current scan, starting at 0.
func Iteration() Field {
	return Field{kind: iterationField}
}

// A Template maps schema field names (see metric.Keys) to Fields.
// Keys outside the schema become dimension tags.
type Template map[string]Field

// Eval builds a record from the source values of one match or row.
// iter is the current value of the scan's iteration counter.
func (t Template) Eval(values map[string]string, iter int) (metric.Record, error) {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rec metric.Record
	for _, key := range keys {
		f := t[key]
		var v any
		switch f.kind {
		case literalField:
			v = f.literal
		case iterationField:
			v = iter
		case sourceField:
			s, ok := values[f.source]
			if !ok {
				return metric.Record{}, &FormatError{Field: key, Source: f.source}
			}
			var err error
			if v, err = f.coercion.coerce(s); err != nil {
				return metric.Record{}, &FormatError{Field: key, Source: f.source, Value: s, Coercion: f.coercion, Err: err}
			}
		}
		if err := rec.Set(key, v); err != nil {
			return metric.Record{}, fmt.Errorf("template field %s: %w", key, err)
		}
	}
	return rec, nil
}

// With returns a copy of t with the given fields overridden.
func (t Template) With(fields Template) Template {
	t2 := make(Template, len(t)+len(fields))
	for k, f := range t {
		t2[k] = f
	}
	for k, f := range fields {
		t2[k] = f
	}
	return t2
}
