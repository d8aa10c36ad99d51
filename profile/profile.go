// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile records the execution profiles a benchmark can be
// run under.
//
// An execution profile is one way of running the target virtual
// machine, such as "server/graal-core": a fixed list of flags that is
// prepended to every command line built under that profile. Profiles
// are identified by a name and a configuration name.
package profile

import (
	"fmt"
	"sort"
	"strings"
)

// A Profile is a named, fixed set of VM invocation flags.
type Profile struct {
	Name   string   `yaml:"name" json:"name"`
	Config string   `yaml:"config" json:"config"`
	Flags  []string `yaml:"flags" json:"flags"`
}

// ID returns the "name/config" identifier of p.
func (p *Profile) ID() string {
	return p.Name + "/" + p.Config
}

// CommandLine returns args with p's flags prepended. The profile is
// the outermost layer of composition, so its flags always come first.
func (p *Profile) CommandLine(args []string) []string {
	out := make([]string, 0, len(p.Flags)+len(args))
	out = append(out, p.Flags...)
	return append(out, args...)
}

// Dimensions returns the tags p contributes to every metric record.
func (p *Profile) Dimensions() map[string]string {
	return map[string]string{
		"host-vm":         p.Name,
		"host-vm-config":  p.Config,
		"guest-vm":        "none",
		"guest-vm-config": "none",
	}
}

// A ConfigurationError reports an invalid, unknown, or ambiguous
// profile request.
type ConfigurationError struct {
	Name, Config string
	Msg          string
}

func (e *ConfigurationError) Error() string {
	id := e.Name
	if e.Config != "" {
		id += "/" + e.Config
	}
	return fmt.Sprintf("profile %s: %s", id, e.Msg)
}

// A Registry holds profiles keyed by (name, config).
//
// The zero Registry is empty and ready to use.
type Registry struct {
	profiles map[key]*Profile
}

type key struct{ name, config string }

// Add registers p. It is an error to register the same (name, config)
// pair twice.
func (r *Registry) Add(p *Profile) error {
	if p.Name == "" || p.Config == "" {
		return &ConfigurationError{p.Name, p.Config, "name and config must be non-empty"}
	}
	if strings.Contains(p.Name, "/") {
		return &ConfigurationError{p.Name, p.Config, "name must not contain '/'"}
	}
	if r.profiles == nil {
		r.profiles = make(map[key]*Profile)
	}
	k := key{p.Name, p.Config}
	if _, ok := r.profiles[k]; ok {
		return &ConfigurationError{p.Name, p.Config, "already registered"}
	}
	r.profiles[k] = p
	return nil
}

// Resolve returns the profile for (name, config). If config is empty
// and exactly one profile has the given name, Resolve returns it.
func (r *Registry) Resolve(name, config string) (*Profile, error) {
	if config != "" {
		if p, ok := r.profiles[key{name, config}]; ok {
			return p, nil
		}
		return nil, &ConfigurationError{name, config, "unknown profile"}
	}
	var found []*Profile
	for k, p := range r.profiles {
		if k.name == name {
			found = append(found, p)
		}
	}
	switch len(found) {
	case 0:
		return nil, &ConfigurationError{name, "", "unknown profile"}
	case 1:
		return found[0], nil
	}
	var cfgs []string
	for _, p := range found {
		cfgs = append(cfgs, p.Config)
	}
	sort.Strings(cfgs)
	return nil, &ConfigurationError{name, "", "ambiguous, specify one of configs " + strings.Join(cfgs, ", ")}
}

// Parse resolves an identifier of the form "name" or "name/config".
func (r *Registry) Parse(id string) (*Profile, error) {
	name, config, _ := strings.Cut(id, "/")
	return r.Resolve(name, config)
}

// All returns every registered profile sorted by ID.
func (r *Registry) All() []*Profile {
	all := make([]*Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].Config < all[j].Config
	})
	return all
}

// Register adds the standard JVMCI profiles to r.
func Register(r *Registry) error {
	for _, p := range []*Profile{
		{"server", "default", []string{"-server", "-XX:-EnableJVMCI"}},
		{"server", "hosted", []string{"-server", "-XX:+EnableJVMCI"}},
		{"server", "graal-core", []string{"-server", "-XX:+EnableJVMCI", "-XX:+UseJVMCICompiler", "-Djvmci.Compiler=graal"}},
		{"server", "graal-core-tracera", []string{"-server", "-XX:+EnableJVMCI", "-XX:+UseJVMCICompiler", "-Djvmci.Compiler=graal", "-Dgraal.TraceRA=true"}},
		// -client is not available on 64-bit VMs, so stopping
		// tiered compilation at C1 is the closest equivalent.
		{"client", "default", []string{"-server", "-XX:-EnableJVMCI", "-XX:TieredStopAtLevel=1"}},
		{"client", "hosted", []string{"-server", "-XX:+EnableJVMCI", "-XX:TieredStopAtLevel=1"}},
	} {
		if err := r.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// DefaultRegistry returns a new registry holding the standard
// profiles.
func DefaultRegistry() *Registry {
	r := new(Registry)
	if err := Register(r); err != nil {
		panic(err)
	}
	return r
}
