package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/internal/unitstore"
)

// ErrOutputCollision is returned when two units map to the same output file.
var ErrOutputCollision = errors.New("output file collision")

// emit renders entries to standard output, to a single file, or to one file
// per unit inside a directory.
func (a *App) emit(ctx context.Context, emitter *registry.RegisteredEmitter, entries []unitstore.Entry) error {
	logger := ctxlog.FromContext(ctx)
	opts := registry.Options{Prefix: a.config.Prefix, Package: a.config.Package}
	out := a.config.OutputPath

	if out == "" {
		for i, e := range entries {
			if i > 0 && emitter.Separator != "" {
				if _, err := fmt.Fprint(a.outW, emitter.Separator); err != nil {
					return err
				}
			}
			if err := emitter.Fn(ctx, a.outW, e, opts); err != nil {
				return err
			}
		}
		return nil
	}

	if len(entries) == 1 && !isDir(out) {
		logger.Info("Writing output file.", "path", out)
		return a.writeFile(ctx, emitter, entries[0], opts, out)
	}

	paths, err := outputPaths(out, emitter.Ext, entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for i, e := range entries {
		logger.Info("Writing output file.", "unit", e.Unit, "path", paths[i])
		if err := a.writeFile(ctx, emitter, e, opts, paths[i]); err != nil {
			return err
		}
	}
	return nil
}

// outputPaths names one file per entry inside dir. Names are compared
// case-insensitively so the result is the same on every file system.
func outputPaths(dir, ext string, entries []unitstore.Entry) ([]string, error) {
	paths := make([]string, len(entries))
	owners := make(map[string]string, len(entries))
	for i, e := range entries {
		name := FileName(e.Unit) + ext
		key := strings.ToLower(name)
		if prev, ok := owners[key]; ok {
			return nil, fmt.Errorf("%w: units %q and %q both write %s", ErrOutputCollision, prev, e.Unit, name)
		}
		owners[key] = e.Unit
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// writeFile renders into memory first so a failed emitter leaves no partial
// file behind.
func (a *App) writeFile(ctx context.Context, emitter *registry.RegisteredEmitter, e unitstore.Entry, opts registry.Options, path string) error {
	var buf bytes.Buffer
	if err := emitter.Fn(ctx, &buf, e, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileName maps a unit name to a safe file name stem.
func FileName(unit string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		}
		return '_'
	}, unit)
}
