// Package env renders a resolved build unit as a dotenv file, for build
// scripts that consume the record through the environment.
package env

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/platform"
	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/internal/unitstore"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the "env" emitter.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEmitter("env", &registry.RegisteredEmitter{Ext: ".env", Separator: "\n", Fn: Emit})
}

// Emit writes one NAME=value line per constant. Booleans are written as 1 or 0
// so shell tests stay simple.
func Emit(ctx context.Context, w io.Writer, entry unitstore.Entry, opts registry.Options) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# unit: %s\n", entry.Unit)

	count := 0
	for _, c := range entry.Record.Constants(entry.ID) {
		var value string
		switch c.Kind {
		case platform.KindBool:
			value = "0"
			if c.Bool {
				value = "1"
			}
		case platform.KindInt:
			value = strconv.FormatInt(c.Int, 10)
		default:
			value = Quote(c.Str)
		}
		fmt.Fprintf(bw, "%s=%s\n", opts.Name(c.Name), value)
		count++
	}

	ctxlog.FromContext(ctx).Debug("Wrote environment variables.", "unit", entry.Unit, "count", count)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %s as env: %w", entry.Unit, err)
	}
	return nil
}

// Quote returns s unchanged when it is safe unquoted in a dotenv file and
// shell, and double-quoted otherwise.
func Quote(s string) string {
	if s == "" {
		return `""`
	}
	safe := strings.IndexFunc(s, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		case strings.ContainsRune("._-/+:@", r):
			return false
		}
		return true
	}) < 0
	if safe {
		return s
	}
	return strconv.Quote(s)
}
