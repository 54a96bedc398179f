package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/platformid/internal/config"
	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/internal/unitstore"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	inR      io.Reader
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	registry *registry.Registry
	store    *unitstore.Store
}

// NewApp is the constructor for the main application. Generated output goes
// to outW and logs go to logW. When no modules are given, the core output
// formats are registered.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	ctxlog.FromContext(ctx).Debug("All output modules registered.", "count", len(modules), "formats", reg.Names())

	return &App{
		outW:     outW,
		inR:      os.Stdin,
		logger:   logger,
		config:   appConfig,
		loader:   loader,
		registry: reg,
		store:    unitstore.New(),
	}
}

// SetInput replaces standard input, which is read when the macro dump path
// is "-".
func (a *App) SetInput(r io.Reader) {
	a.inR = r
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Store returns the resolved units. This is primarily for testing.
func (a *App) Store() *unitstore.Store {
	return a.store
}
