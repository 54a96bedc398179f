package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/platformid/internal/app"
	"github.com/specialistvlad/platformid/internal/markers"
)

// Process exit codes.
const (
	ExitFailure     = 1
	ExitUsage       = 2
	ExitUnsupported = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("platformid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
platformid - Resolves toolchain and target identity from predefined compiler symbols.

Usage:
  platformid [options] [PROFILE_PATH...]
  cc -dM -E -x c /dev/null | platformid -macros - -format json

Arguments:
  PROFILE_PATH
    Path to a single .hcl profile file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	var defines, undefines stringList
	profilesFlag := flagSet.String("profiles", "", "Comma separated .hcl profile files or directories.")
	onlyFlag := flagSet.String("only", "", "Comma separated profile names to resolve. Default: all.")
	unitFlag := flagSet.String("unit", app.DefaultUnit, "Build unit name when no profiles are used.")
	macrosFlag := flagSet.String("macros", "", "Predefined macro dump to read ('-' for stdin).")
	ccFlag := flagSet.String("cc", "", "Compiler to probe for its predefined macros.")
	cflagsFlag := flagSet.String("cflags", "", "Space separated flags passed to the probed compiler.")
	flagSet.Var(&defines, "D", "Define a marker, NAME or NAME=VALUE. Repeatable.")
	flagSet.Var(&undefines, "U", "Undefine a marker. Repeatable.")
	stdMinFlag := flagSet.Int("std-min", 0, "Minimum standard level (year). 0 disables the check.")
	formatFlag := flagSet.String("format", "header", "Output format: header, go, json, yaml, hcl, env or text.")
	prefixFlag := flagSet.String("prefix", "", "Prefix for every constant name.")
	packageFlag := flagSet.String("package", "", "Package name for the go format.")
	outFlag := flagSet.String("o", "", "Output file, or directory for one file per unit. Default: stdout.")
	workersFlag := flagSet.Int("workers", 4, "Number of build units resolved concurrently.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	profiles := append(splitList(*profilesFlag), flagSet.Args()...)
	if len(profiles) == 0 && *macrosFlag == "" && *ccFlag == "" && len(defines) == 0 {
		slog.Debug("Nothing to resolve, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	for _, d := range defines {
		if _, _, err := markers.ParseDefinition(d); err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("invalid -D %q: %v", d, err)}
		}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ProfilePaths:  profiles,
		Only:          splitList(*onlyFlag),
		Unit:          *unitFlag,
		MacrosPath:    *macrosFlag,
		Compiler:      *ccFlag,
		CompilerFlags: strings.Fields(*cflagsFlag),
		Defines:       defines,
		Undefines:     undefines,
		StandardMin:   *stdMinFlag,
		Format:        strings.ToLower(*formatFlag),
		Prefix:        *prefixFlag,
		Package:       *packageFlag,
		OutputPath:    *outFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		WorkerCount:   *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
