package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/platformid/internal/markers"
)

// DefaultUnit names the single build unit resolved when no profiles are used.
const DefaultUnit = "default"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ProfilePaths are .hcl files or directories of profiles.
	ProfilePaths []string
	// Only restricts resolution to the named profiles.
	Only []string

	// Unit names the ad-hoc build unit when no profiles are used.
	Unit string
	// MacrosPath is a predefined-macro dump; "-" reads standard input.
	MacrosPath string
	// Compiler and CompilerFlags probe a host compiler.
	Compiler      string
	CompilerFlags []string

	// Defines (NAME[=VALUE]) and Undefines are applied to every unit last.
	Defines   []string
	Undefines []string
	// StandardMin overrides the minimum standard level of every unit.
	StandardMin int

	Format     string
	Prefix     string
	Package    string
	OutputPath string

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	adHoc := cfg.MacrosPath != "" || cfg.Compiler != ""
	if len(cfg.ProfilePaths) == 0 && !adHoc && len(cfg.Defines) == 0 {
		return nil, errors.New("nothing to resolve: give a profile path, -macros, -cc or -D")
	}
	if len(cfg.ProfilePaths) > 0 && adHoc {
		return nil, errors.New("profiles cannot be combined with -macros or -cc")
	}
	if cfg.MacrosPath != "" && cfg.Compiler != "" {
		return nil, errors.New("-macros and -cc are mutually exclusive")
	}
	if len(cfg.CompilerFlags) > 0 && cfg.Compiler == "" {
		return nil, errors.New("-cflags requires -cc")
	}
	if len(cfg.Only) > 0 && len(cfg.ProfilePaths) == 0 {
		return nil, errors.New("-only requires a profile path")
	}
	if cfg.StandardMin < 0 {
		return nil, fmt.Errorf("invalid minimum standard level %d", cfg.StandardMin)
	}
	if cfg.Prefix != "" && !markers.IsIdent(cfg.Prefix) {
		return nil, fmt.Errorf("invalid prefix %q: must be a C identifier", cfg.Prefix)
	}
	if cfg.Unit == "" {
		cfg.Unit = DefaultUnit
	}
	if cfg.Format == "" {
		cfg.Format = "header"
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 1
	}
	return &cfg, nil
}
