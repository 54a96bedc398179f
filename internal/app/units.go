package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/specialistvlad/platformid/internal/config"
	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/markers"
	"github.com/specialistvlad/platformid/internal/probe"
)

// unit is one build unit awaiting resolution.
type unit struct {
	name        string
	standardMin int
	// base loads the marker set before defines and undefines are applied.
	base      func(ctx context.Context) (markers.Set, error)
	defines   map[string]string
	undefines []string
}

// overrides are the -D and -U flags, applied to every unit last.
type overrides struct {
	defines   markers.Set
	undefines []string
}

func (a *App) overrides() (overrides, error) {
	var defs markers.Set
	for _, d := range a.config.Defines {
		name, value, err := markers.ParseDefinition(d)
		if err != nil {
			return overrides{}, fmt.Errorf("invalid -D %q: %w", d, err)
		}
		defs = defs.With(name, value)
	}
	return overrides{defines: defs, undefines: a.config.Undefines}, nil
}

// units gathers the build units: the selected profiles, or one ad-hoc unit
// described by the command line.
func (a *App) units(ctx context.Context) ([]unit, error) {
	if len(a.config.ProfilePaths) == 0 {
		return []unit{a.adHocUnit()}, nil
	}

	model, err := a.loader.Load(ctx, a.config.ProfilePaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	if len(model.Profiles) == 0 {
		return nil, fmt.Errorf("no profiles found in %s", strings.Join(a.config.ProfilePaths, ", "))
	}

	for _, name := range a.config.Only {
		if _, ok := model.Lookup(name); !ok {
			return nil, fmt.Errorf("unknown profile %q (available: %s)", name, strings.Join(model.Names(), ", "))
		}
	}

	var units []unit
	for _, p := range model.Profiles {
		if len(a.config.Only) > 0 && !slices.Contains(a.config.Only, p.Name) {
			continue
		}
		units = append(units, a.profileUnit(p))
	}
	ctxlog.FromContext(ctx).Debug("Selected profiles.", "count", len(units))
	return units, nil
}

func (a *App) profileUnit(p *config.Profile) unit {
	u := unit{
		name:        p.Name,
		standardMin: p.StandardMin,
		defines:     p.Defines,
		undefines:   p.Undefines,
		base:        emptySet,
	}
	switch {
	case p.Dump != "":
		u.base = func(context.Context) (markers.Set, error) { return a.readDump(p.Dump) }
	case p.Compiler != "":
		cc := probe.Compiler{Path: p.Compiler, Flags: p.Flags}
		u.base = cc.Run
	}
	return u
}

func (a *App) adHocUnit() unit {
	u := unit{name: a.config.Unit, base: emptySet}
	switch {
	case a.config.MacrosPath != "":
		path := a.config.MacrosPath
		u.base = func(context.Context) (markers.Set, error) { return a.readDump(path) }
	case a.config.Compiler != "":
		cc := probe.Compiler{Path: a.config.Compiler, Flags: a.config.CompilerFlags}
		u.base = cc.Run
	}
	return u
}

func emptySet(context.Context) (markers.Set, error) {
	return markers.Set{}, nil
}

// readDump parses a macro dump file, or standard input for "-".
func (a *App) readDump(path string) (markers.Set, error) {
	if path == "-" {
		if a.inR == nil {
			return markers.Set{}, errors.New("no standard input available")
		}
		set, err := markers.Parse(a.inR)
		if err != nil {
			return markers.Set{}, fmt.Errorf("failed to parse standard input: %w", err)
		}
		return set, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return markers.Set{}, fmt.Errorf("failed to open macro dump: %w", err)
	}
	defer f.Close()

	set, err := markers.Parse(f)
	if err != nil {
		return markers.Set{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return set, nil
}

// markerSet builds the final marker set of u: the base set, then the unit's
// own defines and undefines, then the command-line overrides.
func (u unit) markerSet(ctx context.Context, o overrides) (markers.Set, error) {
	set, err := u.base(ctx)
	if err != nil {
		return markers.Set{}, err
	}
	set = set.Merge(markers.New(u.defines)).Without(u.undefines...)
	set = set.Merge(o.defines).Without(o.undefines...)
	logger := ctxlog.FromContext(ctx)
	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("Marker set assembled.", "count", set.Len(), "names", set.Names())
	}
	return set, nil
}
