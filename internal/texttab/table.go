// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out plain-text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Row and Rule return the Table so callers can chain them to build up
// several rows at once.
type Table struct {
	rows  []row
	cols  int
	align []Align
}

type row struct {
	cells []string
	rule  bool
}

// Align is the alignment of a column.
type Align int

const (
	Left Align = iota
	Right
)

func (a Align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if a == Right {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// SetAlign sets the alignment of column col. Columns are numbered
// starting at 0 and are left-aligned by default.
func (t *Table) SetAlign(col int, a Align) *Table {
	for len(t.align) <= col {
		t.align = append(t.align, Left)
	}
	t.align[col] = a
	return t
}

func (t *Table) alignment(col int) Align {
	if col < len(t.align) {
		return t.align[col]
	}
	return Left
}

// Row adds a row of cells to t.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, row{cells: cells})
	if len(cells) > t.cols {
		t.cols = len(cells)
	}
	return t
}

// Rule adds a horizontal rule across the full width of t.
func (t *Table) Rule() *Table {
	t.rows = append(t.rows, row{rule: true})
	return t
}

// Format lays out table t and writes it to w. Columns are separated
// by two spaces, and trailing blanks are trimmed.
func (t *Table) Format(w io.Writer) error {
	const sep = "  "

	ws := make([]int, t.cols)
	for _, r := range t.rows {
		for col, c := range r.cells {
			if n := utf8.RuneCountInString(c); n > ws[col] {
				ws[col] = n
			}
		}
	}
	total := 0
	for col, n := range ws {
		if col > 0 {
			total += len(sep)
		}
		total += n
	}

	var line strings.Builder
	for _, r := range t.rows {
		line.Reset()
		if r.rule {
			line.WriteString(strings.Repeat("-", total))
		} else {
			for col := 0; col < t.cols; col++ {
				if col > 0 {
					line.WriteString(sep)
				}
				var c string
				if col < len(r.cells) {
					c = r.cells[col]
				}
				line.WriteString(t.alignment(col).pad(c, ws[col]))
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
