// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/benchsuite/metric"
)

// A Row is one parsed line of a sidecar file, keyed by column name.
type Row map[string]string

// A FixedFileRule extracts records from a delimited sidecar file that
// the benchmark process wrote. The file has no header row: the i'th
// value of each line is bound to Columns[i].
type FixedFileRule struct {
	// File is the sidecar file name. If it is relative, it is
	// resolved against Input.Dir.
	File string

	// Columns names the positional columns of each row.
	Columns []string

	Dialect Dialect

	// Filter, if non-nil, is called for each row before template
	// evaluation. It may return a modified row, or keep=false to
	// drop the row entirely.
	Filter func(r Row) (out Row, keep bool)

	Template Template
}

// Parse implements Rule. A missing or malformed file is reported as a
// *ParseError.
func (r *FixedFileRule) Parse(in Input) ([]metric.Record, error) {
	path := r.File
	if !filepath.IsAbs(path) && in.Dir != "" {
		path = filepath.Join(in.Dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ParseError{File: path, Msg: "sidecar file missing", Err: err}
		}
		return nil, &ParseError{File: path, Err: err}
	}
	defer f.Close()

	var recs []metric.Record
	var errs []error
	n := 0 // rows that passed the filter
	dr := newDelimReader(f, r.Dialect)
	for {
		fields, err := dr.read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, &ParseError{File: path, Line: dr.line, Err: err})
			break
		}
		if len(fields) != len(r.Columns) {
			errs = append(errs, &ParseError{File: path, Line: dr.line,
				Msg: fmt.Sprintf("expected %d fields, got %d", len(r.Columns), len(fields))})
			continue
		}
		row := make(Row, len(fields))
		for i, col := range r.Columns {
			row[col] = fields[i]
		}
		if r.Filter != nil {
			var keep bool
			if row, keep = r.Filter(row); !keep {
				continue
			}
		}
		rec, err := r.Template.Eval(row, n)
		n++
		if err != nil {
			errs = append(errs, fmt.Errorf("%s:%d: %w", path, dr.line, err))
			continue
		}
		recs = append(recs, rec)
	}
	return recs, errors.Join(errs...)
}
