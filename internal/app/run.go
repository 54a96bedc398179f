package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/specialistvlad/platformid/internal/cidutil"
	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/platform"
	"github.com/specialistvlad/platformid/internal/resolve"
	"github.com/specialistvlad/platformid/internal/unitstore"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownFormat is returned when no emitter is registered for the
// configured format.
var ErrUnknownFormat = errors.New("unknown output format")

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Run resolves every build unit and emits the records in the configured
// format.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	emitter, ok := a.registry.Lookup(a.config.Format)
	if !ok {
		return fmt.Errorf("%w %q (available: %s)", ErrUnknownFormat, a.config.Format, strings.Join(a.registry.Names(), ", "))
	}

	o, err := a.overrides()
	if err != nil {
		return err
	}
	units, err := a.units(ctx)
	if err != nil {
		return err
	}

	names := make([]string, len(units))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount)
	for i, u := range units {
		names[i] = u.name
		g.Go(func() error {
			if _, err := a.resolveUnit(gctx, u, o); err != nil {
				return fmt.Errorf("unit %q: %w", u.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	entries, err := a.entries(names)
	if err != nil {
		return err
	}
	if err := a.emit(ctx, emitter, entries); err != nil {
		return err
	}
	a.logger.Debug("App.Run method finished.", "units", len(entries), "stored", a.store.Units())
	return nil
}

// entries reads the resolved units back from the store, in unit order.
func (a *App) entries(names []string) ([]unitstore.Entry, error) {
	entries := make([]unitstore.Entry, 0, len(names))
	for _, name := range names {
		e, err := a.store.Get(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// resolveUnit resolves u at most once per App and fingerprints the record.
func (a *App) resolveUnit(ctx context.Context, u unit, o overrides) (unitstore.Entry, error) {
	ctx = ctxlog.With(ctx, "unit", u.name)
	logger := ctxlog.FromContext(ctx)

	entry, err := a.store.Once(u.name, func() (platform.Record, string, error) {
		set, err := u.markerSet(ctx, o)
		if err != nil {
			return platform.Record{}, "", err
		}

		opts := resolve.Options{StandardMin: u.standardMin}
		if a.config.StandardMin > 0 {
			opts.StandardMin = a.config.StandardMin
		}
		rec, err := resolve.Resolve(set, opts)
		if err != nil {
			return platform.Record{}, "", err
		}

		id, err := cidutil.RecordID(rec)
		if err != nil {
			return platform.Record{}, "", err
		}
		return rec, id, nil
	})
	if err != nil {
		if errors.Is(err, resolve.ErrUnsupported) {
			logger.Error("Unsupported build environment.", "category", resolve.CategoryOf(err), "error", err)
		}
		return unitstore.Entry{}, err
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("Resolved record.", "record", dumpConfig.Sdump(entry.Record))
	}
	logger.Info("Resolved build unit.",
		"standard", entry.Record.StandardLevel,
		"compiler", entry.Record.Compiler.Name,
		"compiler_version", entry.Record.Compiler.Version,
		"cpu", entry.Record.CPU.Family,
		"os", entry.Record.OS.Name,
		"record_id", entry.ID,
	)
	return entry, nil
}
