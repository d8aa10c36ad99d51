// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// A Dialect describes a delimited text format.
type Dialect struct {
	Delimiter rune // field separator, default ','
	Quote     rune // quote character, default '"'; a doubled quote inside a quoted field is a literal quote
	Escape    rune // escape character, or 0 for none; the following character is taken literally
}

func (d Dialect) withDefaults() Dialect {
	if d.Delimiter == 0 {
		d.Delimiter = ','
	}
	if d.Quote == 0 {
		d.Quote = '"'
	}
	return d
}

// delimReader reads records from a delimited text file with no header.
// Blank lines are skipped. Quoted fields may span lines.
type delimReader struct {
	r    *bufio.Reader
	d    Dialect
	line int // line number of the last record's first line
	next int // line number of the next unread line
}

func newDelimReader(r io.Reader, d Dialect) *delimReader {
	return &delimReader{r: bufio.NewReader(r), d: d.withDefaults(), next: 1}
}

var errUnterminated = errors.New("unterminated quoted field")

// read returns the next record, or io.EOF.
func (dr *delimReader) read() ([]string, error) {
	var (
		fields  []string
		field   strings.Builder
		inQuote bool
		quoted  bool // current field started with a quote
		started bool // any character consumed for this record
	)
	dr.line = dr.next
	for {
		c, _, err := dr.r.ReadRune()
		if err == io.EOF {
			if inQuote {
				return nil, errUnterminated
			}
			if !started {
				return nil, io.EOF
			}
			return append(fields, field.String()), nil
		}
		if err != nil {
			return nil, err
		}

		if dr.d.Escape != 0 && c == dr.d.Escape {
			n, _, err := dr.r.ReadRune()
			if err != nil {
				return nil, errors.New("escape character at end of input")
			}
			if n == '\n' {
				dr.next++
			}
			field.WriteRune(n)
			started = true
			continue
		}

		if inQuote {
			switch c {
			case dr.d.Quote:
				// Doubled quote is a literal quote.
				if p, _, err := dr.r.ReadRune(); err == nil {
					if p == dr.d.Quote {
						field.WriteRune(p)
						continue
					}
					dr.r.UnreadRune()
				}
				inQuote = false
			case '\n':
				dr.next++
				field.WriteRune(c)
			default:
				field.WriteRune(c)
			}
			continue
		}

		switch c {
		case '\r':
			// Dropped; \r\n line endings are accepted.
		case '\n':
			dr.next++
			if !started {
				// Blank line.
				dr.line = dr.next
				continue
			}
			return append(fields, field.String()), nil
		case dr.d.Delimiter:
			fields = append(fields, field.String())
			field.Reset()
			quoted = false
			started = true
		case dr.d.Quote:
			if field.Len() == 0 && !quoted {
				inQuote, quoted = true, true
			} else {
				field.WriteRune(c)
			}
			started = true
		default:
			field.WriteRune(c)
			started = true
		}
	}
}
