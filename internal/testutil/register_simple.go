package testutil

import "github.com/specialistvlad/platformid/internal/registry"

// SimpleModule is a test helper for easily creating a mock module that
// registers a single emitter.
type SimpleModule struct {
	Format  string
	Emitter *registry.RegisteredEmitter
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.Format != "" && m.Emitter != nil {
		r.RegisterEmitter(m.Format, m.Emitter)
	}
}
