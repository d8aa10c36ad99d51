// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/benchsuite/suite"
)

func TestDefault(t *testing.T) {
	r := Default(suite.OSEnvironment{})
	assert.Equal(t, []string{
		"dacapo",
		"dacapo-move-profiling",
		"dacapo-timing",
		"renaissance",
		"scala-dacapo",
		"scala-dacapo-move-profiling",
		"scala-dacapo-timing",
		"specjbb2005",
		"specjbb2013",
		"specjbb2015",
		"specjvm2008",
	}, r.Names())

	for _, name := range r.Names() {
		s, ok := r.Get(name)
		require.True(t, ok)
		assert.Equal(t, "Graal", s.Group(), name)
		assert.Equal(t, "graal-compiler", s.Subgroup(), name)
	}
}

func TestRegisterTwice(t *testing.T) {
	var r suite.Registry
	require.NoError(t, Register(&r, suite.OSEnvironment{}))
	assert.Error(t, Register(&r, suite.OSEnvironment{}))
}
