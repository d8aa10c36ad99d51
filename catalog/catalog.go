// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog registers the built-in benchmark suites.
package catalog

import (
	"golang.org/x/benchsuite/instrument"
	"golang.org/x/benchsuite/suite"
)

// Suites returns the built-in suites, including the instrumented
// variants of the DaCapo harnesses, using env to locate harnesses.
func Suites(env suite.Environment) []suite.Suite {
	return []suite.Suite{
		suite.NewDaCapo(env),
		instrument.Wrap(suite.NewDaCapo(env), instrument.Timing{}),
		instrument.Wrap(suite.NewDaCapo(env), instrument.DaCapoMoveProfiling),
		suite.NewScalaDaCapo(env),
		instrument.Wrap(suite.NewScalaDaCapo(env), instrument.Timing{}),
		instrument.Wrap(suite.NewScalaDaCapo(env), instrument.DaCapoMoveProfiling),
		suite.NewSpecJvm2008(env),
		suite.NewSpecJbb2005(env),
		suite.NewSpecJbb2013(env),
		suite.NewSpecJbb2015(env),
		suite.NewRenaissance(env),
	}
}

// Register adds the built-in suites to r.
func Register(r *suite.Registry, env suite.Environment) error {
	for _, s := range Suites(env) {
		if err := r.Add(s); err != nil {
			return err
		}
	}
	return nil
}

// Default returns a registry of the built-in suites.
func Default(env suite.Environment) *suite.Registry {
	r := new(suite.Registry)
	if err := Register(r, env); err != nil {
		panic(err)
	}
	return r
}
