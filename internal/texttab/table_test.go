// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a Align, w int, want string) {
		t.Helper()
		got := a.pad(s, w)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", Left, 6, "abc   ")
	check("abc", Right, 6, "   abc")
	check("abc", Right, 2, "abc")
	check("☃", Right, 4, "   ☃")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		// Reset tab.
		tab = Table{}
	}

	// Basic test.
	tab.Row("a", "b", "c").Row("d", "e", "f")
	check("a  b  c\nd  e  f\n")

	// Cell padding, without trailing spaces.
	tab.Row("a", "b", "c").Row("long", "e", "x")
	check("a     b  c\nlong  e  x\n")

	// Right alignment.
	tab.SetAlign(1, Right)
	tab.Row("name", "value").Row("a", "1").Row("bb", "1234")
	check("name  value\na         1\nbb     1234\n")

	// Rules span the table.
	tab.Row("ab", "c").Rule().Row("d", "efg")
	check("ab  c\n-------\nd   efg\n")

	// Missing cells at the end.
	tab.Row("a").Row("d", "e", "f")
	check("a\nd  e  f\n")

	// Empty table.
	check("")
}
