// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit normalizes the units JVM benchmark harnesses
// report ("ms", "msec", "op/min", "#", ...) and formats values in them.
package benchunit

import "unicode"

// A token is one word of a unit, such as "MB" in "MB/s".
type token struct {
	text  string
	pos   int  // byte offset in the unit
	denom bool // follows a "/" with no "*" in between
}

// tokens splits unit into words. Words are separated by "/", "*", "-"
// and spaces. A "/" moves the following words into the denominator and
// a "*" moves them back into the numerator.
func tokens(unit string) []token {
	var toks []token
	start, denom := -1, false
	flush := func(end int) {
		if start >= 0 {
			toks = append(toks, token{unit[start:end], start, denom})
			start = -1
		}
	}
	for i, r := range unit {
		switch {
		case r == '/':
			flush(i)
			denom = true
		case r == '*':
			flush(i)
			denom = false
		case r == '-' || unicode.IsSpace(r):
			flush(i)
		case start < 0:
			start = i
		}
	}
	flush(len(unit))
	return toks
}

var byteWords = map[string]bool{"B": true, "MB": true, "bytes": true}

// isBinary reports whether unit measures bytes in its numerator, in
// which case values scale by powers of 1024.
func isBinary(unit string) bool {
	for _, t := range tokens(unit) {
		if !t.denom && byteWords[t.text] {
			return true
		}
	}
	return false
}
