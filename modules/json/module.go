// Package json renders a resolved build unit as a JSON document.
package json

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/internal/unitstore"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the "json" emitter.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEmitter("json", &registry.RegisteredEmitter{Ext: ".json", Fn: Emit})
}

// Document is the JSON shape of one unit.
type Document struct {
	Unit      string     `json:"unit"`
	RecordID  string     `json:"record_id"`
	Constants []Constant `json:"constants"`
}

// Constant keeps vocabulary order, which a JSON object would not.
type Constant struct {
	Name  string `json:"name"`
	Group string `json:"group"`
	Value any    `json:"value"`
}

// Emit writes entry as an indented JSON document.
func Emit(ctx context.Context, w io.Writer, entry unitstore.Entry, opts registry.Options) error {
	doc := Document{Unit: entry.Unit, RecordID: entry.ID}
	for _, c := range entry.Record.Constants(entry.ID) {
		doc.Constants = append(doc.Constants, Constant{
			Name:  opts.Name(c.Name),
			Group: c.Group,
			Value: c.Value(),
		})
	}

	ctxlog.FromContext(ctx).Debug("Encoding JSON document.", "unit", entry.Unit, "constants", len(doc.Constants))
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode %s as JSON: %w", entry.Unit, err)
	}
	return nil
}
