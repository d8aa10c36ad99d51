// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchsuite runs JVM benchmark suites and reports their metrics.
//
// Usage:
//
//	benchsuite [flags] command [arguments]
//
// The commands are:
//
//	run        run the benchmarks of a suite
//	extract    extract metrics from a saved benchmark log
//	list       list suites, or the benchmarks of a suite
//	profiles   list execution profiles
//	summarize  summarize metric record files
//	compare    compare two metric record files
//
// A benchmark selector names a suite and, optionally, some of its
// benchmarks:
//
//	dacapo               every benchmark of dacapo
//	dacapo:avrora,fop    only avrora and fop
//
// Arguments after the selector of run are VM flags. Arguments after a
// "--" are passed to the benchmark harness:
//
//	benchsuite run --profile server/graal-core dacapo:avrora -Xmx2g -- -n 5
//
// Records are written as JSON (--format json), in the Go benchmark
// format (--format bench), or as a table (--format text, the default).
// The -o flag of run additionally saves the records as JSON, which
// summarize and compare read.
//
// Suite harness locations, extra profiles, and the process timeout are
// set in a YAML configuration file given by --config:
//
//	java: /usr/lib/jvm/jvmci/bin/java
//	timeout: 30m
//	env:
//	  DACAPO_CP: /opt/dacapo-9.12-bach.jar
//	profiles:
//	  - name: server
//	    config: g1
//	    flags: [-server, -XX:+UseG1GC]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "benchsuite: %v\n", err)
		os.Exit(exitCode(err))
	}
}
