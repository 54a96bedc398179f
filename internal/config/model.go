package config

import (
	"errors"
	"fmt"
	"slices"
)

// Model is the unified representation of all loaded profiles, in load order.
type Model struct {
	Profiles []*Profile
}

// Profile is the format-agnostic representation of a `profile` block.
type Profile struct {
	Name        string
	Description string
	// SourceFile is the file that declared the profile.
	SourceFile string

	// StandardMin is the minimum standard year; zero disables the check.
	StandardMin int

	// Compiler, when set, is probed for its predefined symbols.
	Compiler string
	Flags    []string
	// Dump, when set, is a macro dump file. Relative paths are already
	// resolved against the directory of SourceFile.
	Dump string

	// Defines overlay the base marker set; Undefines are removed last.
	Defines   map[string]string
	Undefines []string
}

// Lookup returns the profile with the given name.
func (m *Model) Lookup(name string) (*Profile, bool) {
	i := slices.IndexFunc(m.Profiles, func(p *Profile) bool { return p.Name == name })
	if i < 0 {
		return nil, false
	}
	return m.Profiles[i], true
}

// Names returns the profile names in load order.
func (m *Model) Names() []string {
	names := make([]string, 0, len(m.Profiles))
	for _, p := range m.Profiles {
		names = append(names, p.Name)
	}
	return names
}

// Add appends p, rejecting a name that is already taken.
func (m *Model) Add(p *Profile) error {
	if existing, ok := m.Lookup(p.Name); ok {
		return fmt.Errorf("duplicate profile %q: declared in %s and %s", p.Name, existing.SourceFile, p.SourceFile)
	}
	m.Profiles = append(m.Profiles, p)
	return nil
}

// Validate checks a profile for contradictory sources.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("profile name must not be empty")
	}
	if p.Dump == "-" {
		return fmt.Errorf("profile %q: dump cannot be standard input; pass it with -macros -", p.Name)
	}
	if p.Compiler != "" && p.Dump != "" {
		return fmt.Errorf("profile %q: compiler and dump are mutually exclusive", p.Name)
	}
	if len(p.Flags) > 0 && p.Compiler == "" {
		return fmt.Errorf("profile %q: flags require a compiler", p.Name)
	}
	if p.StandardMin < 0 {
		return fmt.Errorf("profile %q: standard_min must not be negative", p.Name)
	}
	if p.Compiler == "" && p.Dump == "" && len(p.Defines) == 0 {
		return fmt.Errorf("profile %q: needs a compiler, a dump or defines", p.Name)
	}
	return nil
}
