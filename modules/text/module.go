// Package text renders a resolved build unit as a short human-readable
// summary.
package text

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/internal/unitstore"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the "text" emitter.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEmitter("text", &registry.RegisteredEmitter{Ext: ".txt", Separator: "\n", Fn: Emit})
}

// Emit writes an aligned two-column summary of entry.
func Emit(ctx context.Context, w io.Writer, entry unitstore.Entry, _ registry.Options) error {
	rec := entry.Record
	ctxlog.FromContext(ctx).Debug("Printing summary.", "unit", entry.Unit)

	standard := strconv.Itoa(rec.StandardLevel)
	if rec.StandardLevelMin > 0 {
		standard += fmt.Sprintf(" (minimum %d)", rec.StandardLevelMin)
	}
	compiler := fmt.Sprintf("%s %d", rec.Compiler.Name, rec.Compiler.Version)
	if rec.Compiler.Mimics != 0 {
		compiler += fmt.Sprintf(" (mimics %s)", rec.Compiler.Mimics)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"unit", entry.Unit},
		{"record", entry.ID},
		{"standard", standard},
		{"compiler", compiler},
		{"cpu", fmt.Sprintf("%s, %d-bit, %s-endian", rec.CPU.Family, rec.CPU.BitWidth, rec.CPU.Endianness)},
		{"os", fmt.Sprintf("%s (%s)", rec.OS.Name, rec.OS.Capabilities)},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to print summary of %s: %w", entry.Unit, err)
	}
	return nil
}
