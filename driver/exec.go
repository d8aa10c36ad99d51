// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// A Command is one benchmark process to run.
type Command struct {
	Args []string // Args[0] is the program
	Dir  string   // working directory, or "" for the current one
	Env  []string // extra "KEY=value" pairs
}

// Result is the result of a finished process.
type Result struct {
	ExitCode int
	Output   string // combined standard output and error
}

// An Executor runs benchmark processes to completion.
//
// Run returns an error only if the process could not be run or did not
// finish, for example on timeout. A non-zero exit status is reported in
// Result.ExitCode with a nil error.
type Executor interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// waitDelay bounds how long output is drained after a process is
// killed.
const waitDelay = 5 * time.Second

// ExecExecutor runs processes with os/exec.
type ExecExecutor struct {
	// Timeout bounds each process. Zero means no limit.
	Timeout time.Duration

	// Echo, if non-nil, receives the process output as it is
	// produced.
	Echo io.Writer
}

func (e *ExecExecutor) Run(ctx context.Context, c Command) (Result, error) {
	if len(c.Args) == 0 {
		return Result{}, errors.New("empty command")
	}
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Dir = c.Dir
	cmd.WaitDelay = waitDelay
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	var out bytes.Buffer
	var w io.Writer = &out
	if e.Echo != nil {
		w = io.MultiWriter(&out, e.Echo)
	}
	cmd.Stdout = w
	cmd.Stderr = w

	err := cmd.Run()
	res := Result{Output: out.String()}
	if ctx.Err() != nil {
		res.ExitCode = -1
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && e.Timeout > 0 {
			return res, fmt.Errorf("%s: timed out after %v", c.Args[0], e.Timeout)
		}
		return res, ctx.Err()
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		res.ExitCode = ee.ExitCode()
		return res, nil
	}
	if err != nil {
		return res, err
	}
	return res, nil
}
