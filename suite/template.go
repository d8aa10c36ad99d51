// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package suite

import (
	"fmt"
	"path/filepath"

	"golang.org/x/benchsuite/extract"
	"golang.org/x/benchsuite/metric"
)

// BaseTemplate returns the template fields shared by every rule of a
// suite.
func BaseTemplate(benchSuite string) extract.Template {
	return extract.Template{
		metric.KeyBenchSuite:    extract.Literal(benchSuite),
		metric.KeyVM:            extract.Literal("jvmci"),
		metric.KeyConfigName:    extract.Literal("default"),
		metric.KeyType:          extract.Literal("numeric"),
		metric.KeyScoreFunction: extract.Literal("id"),
	}
}

// base implements the parts of Suite common to all harnesses.
type base struct {
	name string
	env  Environment
}

func (b *base) Name() string     { return b.name }
func (b *base) Group() string    { return "Graal" }
func (b *base) Subgroup() string { return "graal-compiler" }

func (b *base) ValidateReturnCode(code int) bool { return code == 0 }

func (b *base) VMArgs(run *Run) ([]string, error) {
	return append([]string(nil), run.VMArgs...), nil
}

func (b *base) envError(format string, args ...any) error {
	return &EnvironmentError{b.name, fmt.Sprintf(format, args...)}
}

func (b *base) configError(bench, format string, args ...any) error {
	return &ConfigurationError{b.name, bench, fmt.Sprintf(format, args...)}
}

// jarIn returns dir/jar, or an EnvironmentError naming envVar if dir is
// unset or does not contain jar.
func (b *base) jarIn(envVar, jar string) (string, error) {
	dir := b.env.Getenv(envVar)
	if dir == "" {
		return "", b.envError("the %s environment variable is not set", envVar)
	}
	path := filepath.Join(dir, jar)
	if !b.env.Exists(path) {
		return "", b.envError("the %s environment variable points to a directory without %s", envVar, jar)
	}
	return path, nil
}
