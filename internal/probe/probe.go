// Package probe asks a host C compiler for its predefined identification
// symbols by running its preprocessor in macro-dump mode.
package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/markers"
)

// DefaultCompiler is used when no compiler is named. CC from the environment
// takes precedence over it.
const DefaultCompiler = "cc"

// Compiler describes how to invoke the host compiler.
type Compiler struct {
	// Path is the compiler executable; empty means $CC or DefaultCompiler.
	Path string
	// Flags are passed before the dump arguments, e.g. "-std=c11" or "-m32".
	Flags []string
}

// Command returns the executable and argument list that Run will execute.
func (c Compiler) Command() (string, []string) {
	path := c.Path
	if path == "" {
		path = os.Getenv("CC")
	}
	if path == "" {
		path = DefaultCompiler
	}
	args := make([]string, 0, len(c.Flags)+5)
	args = append(args, c.Flags...)
	args = append(args, "-dM", "-E", "-x", "c", os.DevNull)
	return path, args
}

// Run executes the compiler and parses its macro dump.
func (c Compiler) Run(ctx context.Context) (markers.Set, error) {
	logger := ctxlog.FromContext(ctx)
	path, args := c.Command()
	logger.Debug("Probing host compiler.", "compiler", path, "args", args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && msg != "" {
			return markers.Set{}, fmt.Errorf("compiler %s failed: %w: %s", path, err, msg)
		}
		return markers.Set{}, fmt.Errorf("compiler %s failed: %w", path, err)
	}

	set, err := markers.Parse(&stdout)
	if err != nil {
		return markers.Set{}, fmt.Errorf("failed to parse macro dump from %s: %w", path, err)
	}
	logger.Debug("Host compiler probed.", "compiler", path, "symbols", set.Len())
	return set, nil
}
