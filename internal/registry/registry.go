package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/specialistvlad/platformid/internal/unitstore"
)

// Module is the interface that all output modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Options carry the naming choices shared by every emitter.
type Options struct {
	// Prefix is prepended to every constant name, e.g. "PLATFORM_".
	Prefix string
	// Package is the package clause for Go output.
	Package string
}

// Name returns the constant name with the configured prefix.
func (o Options) Name(name string) string {
	return o.Prefix + name
}

// EmitFunc renders one resolved build unit to w.
type EmitFunc func(ctx context.Context, w io.Writer, entry unitstore.Entry, opts Options) error

// RegisteredEmitter holds an emitter and the file extension used when each
// unit is written to its own file.
type RegisteredEmitter struct {
	Ext string
	// Separator is written between units that share one output stream.
	Separator string
	Fn        EmitFunc
}

// Registry holds all the registered emitters for a single application instance.
type Registry struct {
	emitters map[string]*RegisteredEmitter
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		emitters: make(map[string]*RegisteredEmitter),
	}
}

// RegisterEmitter registers an emitter under a format name.
func (r *Registry) RegisterEmitter(format string, emitter *RegisteredEmitter) {
	if _, exists := r.emitters[format]; exists {
		panic(fmt.Sprintf("emitter with name '%s' already registered", format))
	}
	if emitter == nil || emitter.Fn == nil {
		panic(fmt.Sprintf("emitter '%s' has no function", format))
	}
	if !strings.HasPrefix(emitter.Ext, ".") {
		panic(fmt.Sprintf("emitter '%s' has invalid extension '%s'", format, emitter.Ext))
	}
	slog.Debug("Registering emitter.", "format", format, "ext", emitter.Ext)
	r.emitters[format] = emitter
}

// Lookup returns the emitter registered for format.
func (r *Registry) Lookup(format string) (*RegisteredEmitter, bool) {
	e, ok := r.emitters[format]
	return e, ok
}

// Names returns the registered format names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.emitters))
	for name := range r.emitters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
