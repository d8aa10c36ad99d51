// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import "fmt"

// A ParseError reports a missing or malformed sidecar file.
type ParseError struct {
	File string
	Line int // 0 if the error is not tied to a line
	Msg  string
	Err  error // underlying error, if any
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
	}
	return fmt.Sprintf("%s: %s", e.File, msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// A FormatError reports that a source field could not be coerced into
// the type a template asked for. It applies to a single record.
type FormatError struct {
	Field    string // output field being evaluated
	Source   string // source field name
	Value    string // offending source value
	Coercion Coercion
	Err      error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: source field %q missing", e.Field, e.Source)
	}
	return fmt.Sprintf("%s: cannot parse %s=%q as %s: %v", e.Field, e.Source, e.Value, e.Coercion, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
