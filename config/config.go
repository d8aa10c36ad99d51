// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads benchsuite configuration files.
//
// A configuration file is YAML:
//
//	java: /usr/lib/jvm/jvmci/bin/java
//	timeout: 30m
//	scratch-dir: /tmp/bench
//	env:
//	  SPECJVM2008: /opt/SPECjvm2008
//	libraries:
//	  DACAPO: /opt/jars/dacapo-9.12-bach.jar
//	profiles:
//	  - name: server
//	    config: g1
//	    flags: [-server, -XX:+UseG1GC]
//
// Every field is optional.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"golang.org/x/benchsuite/profile"
	"golang.org/x/benchsuite/suite"
)

// Config is the contents of a configuration file.
type Config struct {
	// Java is the java launcher. The default is "java".
	Java string `yaml:"java,omitempty"`

	// Timeout bounds each benchmark process. Zero means no limit.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// ScratchDir is the parent of suite scratch directories. The
	// default is the system temporary directory.
	ScratchDir string `yaml:"scratch-dir,omitempty"`

	// Env sets harness environment variables, such as DACAPO_CP,
	// taking precedence over the process environment.
	Env map[string]string `yaml:"env,omitempty"`

	// Libraries maps library names, such as DACAPO, to jar paths.
	Libraries map[string]string `yaml:"libraries,omitempty"`

	// Profiles are additional execution profiles.
	Profiles []profile.Profile `yaml:"profiles,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Java: "java"}
}

// Load reads the configuration file at path. Unknown fields are an
// error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse parses a configuration file.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if c.Java == "" {
		c.Java = "java"
	}
	if c.Timeout < 0 {
		return nil, fmt.Errorf("negative timeout %v", c.Timeout)
	}
	return c, nil
}

// Registry returns the built-in execution profiles plus those of c.
func (c *Config) Registry() (*profile.Registry, error) {
	r := profile.DefaultRegistry()
	for i := range c.Profiles {
		p := c.Profiles[i]
		if err := r.Add(&p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Environment returns the suite environment described by c.
func (c *Config) Environment() suite.Environment {
	return &environment{OSEnvironment: suite.OSEnvironment{Libraries: c.Libraries}, env: c.Env}
}

type environment struct {
	suite.OSEnvironment
	env map[string]string
}

func (e *environment) Getenv(key string) string {
	if v, ok := e.env[key]; ok {
		return v
	}
	return e.OSEnvironment.Getenv(key)
}
