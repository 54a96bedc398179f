// Package yaml renders a resolved build unit as a YAML document.
package yaml

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/specialistvlad/platformid/internal/ctxlog"
	"github.com/specialistvlad/platformid/internal/platform"
	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/internal/unitstore"
	"gopkg.in/yaml.v3"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the "yaml" emitter.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEmitter("yaml", &registry.RegisteredEmitter{Ext: ".yaml", Separator: "---\n", Fn: Emit})
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func str(value string) *yaml.Node {
	return scalar("!!str", value)
}

// Emit writes entry as a YAML document. Constants form a mapping in
// vocabulary order, each group preceded by a comment.
func Emit(ctx context.Context, w io.Writer, entry unitstore.Entry, opts registry.Options) error {
	consts := &yaml.Node{Kind: yaml.MappingNode}
	group := ""
	for _, c := range entry.Record.Constants(entry.ID) {
		var value *yaml.Node
		switch c.Kind {
		case platform.KindBool:
			value = scalar("!!bool", strconv.FormatBool(c.Bool))
		case platform.KindInt:
			value = scalar("!!int", strconv.FormatInt(c.Int, 10))
		default:
			value = str(c.Str)
		}
		key := str(opts.Name(c.Name))
		if c.Group != group {
			group = c.Group
			key.HeadComment = group
		}
		consts.Content = append(consts.Content, key, value)
	}

	doc := &yaml.Node{
		Kind: yaml.DocumentNode,
		Content: []*yaml.Node{{
			Kind: yaml.MappingNode,
			Content: []*yaml.Node{
				str("unit"), str(entry.Unit),
				str("record_id"), str(entry.ID),
				str("constants"), consts,
			},
		}},
	}

	ctxlog.FromContext(ctx).Debug("Encoding YAML document.", "unit", entry.Unit, "constants", len(consts.Content)/2)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode %s as YAML: %w", entry.Unit, err)
	}
	return enc.Close()
}
